package stock

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/alexken/stockroom/internal/apperror"
	"github.com/alexken/stockroom/internal/pgerr"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL stock repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const stockColumns = `id, store_id, item_id, quantity, sold, price, created_at, updated_at`

func scanStock(scan func(...interface{}) error) (*Stock, error) {
	s := &Stock{}
	err := scan(&s.ID, &s.StoreID, &s.ItemID, &s.Quantity, &s.Sold, &s.Price,
		&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, pgerr.Translate(err)
	}
	return s, nil
}

func (r *postgresRepo) Create(ctx context.Context, s *Stock) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO stock (id, store_id, item_id, quantity, sold, price)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		s.ID, s.StoreID, s.ItemID, s.Quantity, s.Sold, s.Price).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	return pgerr.Translate(err)
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Stock, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+stockColumns+` FROM stock WHERE id = $1`, id)
	return scanStock(row.Scan)
}

func (r *postgresRepo) ListReport(ctx context.Context, f Filter) ([]*Report, error) {
	query := `
		SELECT items.name AS item, stores.name AS store,
		       stock.id, stock.store_id, stock.item_id,
		       stock.quantity, stock.sold, stock.price,
		       stock.created_at, stock.updated_at
		FROM stock
		JOIN items ON items.id = stock.item_id
		JOIN stores ON stores.id = stock.store_id`
	args := []interface{}{}
	n := 1
	if f.StoreID != nil {
		query += fmt.Sprintf(` WHERE stock.store_id = $%d`, n)
		args = append(args, *f.StoreID)
		n++
	}
	if f.ItemID != nil {
		if n == 1 {
			query += ` WHERE`
		} else {
			query += ` AND`
		}
		query += fmt.Sprintf(` stock.item_id = $%d`, n)
		args = append(args, *f.ItemID)
		n++
	}
	query += fmt.Sprintf(` ORDER BY items.name, stores.name LIMIT $%d OFFSET $%d`, n, n+1)
	args = append(args, f.Limit, f.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, pgerr.Translate(err)
	}
	defer rows.Close()
	var report []*Report
	for rows.Next() {
		rec := &Report{}
		if err := rows.Scan(&rec.Item, &rec.Store,
			&rec.ID, &rec.StoreID, &rec.ItemID,
			&rec.Quantity, &rec.Sold, &rec.Price,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		report = append(report, rec)
	}
	return report, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id uuid.UUID, upd Update) (*Stock, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE stock SET
			quantity = COALESCE($2, quantity),
			sold = COALESCE($3, sold),
			price = COALESCE($4, price),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+stockColumns,
		id, upd.Quantity, upd.Sold, upd.Price)
	return scanStock(row.Scan)
}

// Adjust is a single atomic statement, so concurrent adjustments to the
// same (store, item) pair serialize on the row without an explicit
// transaction. Results are clamped at zero as in the original schema.
func (r *postgresRepo) Adjust(ctx context.Context, a Adjustment) (*Stock, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO stock AS s (id, store_id, item_id, quantity, sold, price)
		VALUES ($1, $2, $3,
			GREATEST(COALESCE($4, 0), 0),
			GREATEST(COALESCE($5, 0), 0),
			GREATEST(COALESCE($6, 0), 0))
		ON CONFLICT (store_id, item_id) DO UPDATE SET
			quantity = GREATEST(s.quantity + COALESCE($4, 0), 0),
			sold = GREATEST(s.sold + COALESCE($5, 0), 0),
			price = GREATEST(COALESCE($6, s.price), 0),
			updated_at = NOW()
		RETURNING `+stockColumns,
		uuid.New(), a.StoreID, a.ItemID, a.Quantity, a.Sold, a.Price)
	return scanStock(row.Scan)
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stock WHERE id = $1`, id)
	if err != nil {
		return pgerr.Translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound("stock record %s not found", id)
	}
	return nil
}
