package item

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/alexken/stockroom/internal/apperror"
	"github.com/alexken/stockroom/internal/pgerr"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL item repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const itemColumns = `id, name, description, created_at, updated_at`

func scanItem(scan func(...interface{}) error) (*Item, error) {
	i := &Item{}
	err := scan(&i.ID, &i.Name, &i.Description, &i.CreatedAt, &i.UpdatedAt)
	if err != nil {
		return nil, pgerr.Translate(err)
	}
	return i, nil
}

func (r *postgresRepo) Create(ctx context.Context, i *Item) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO items (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at`,
		i.ID, i.Name, i.Description).
		Scan(&i.CreatedAt, &i.UpdatedAt)
	return pgerr.Translate(err)
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	return scanItem(row.Scan)
}

func (r *postgresRepo) GetByName(ctx context.Context, name string) (*Item, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM items WHERE name = $1`, name)
	return scanItem(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context, limit, offset int) ([]*Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+itemColumns+` FROM items
		ORDER BY name
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, pgerr.Translate(err)
	}
	defer rows.Close()
	var items []*Item
	for rows.Next() {
		i, err := scanItem(rows.Scan)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id uuid.UUID, upd Update) (*Item, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE items SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+itemColumns,
		id, upd.Name, upd.Description)
	return scanItem(row.Scan)
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return pgerr.Translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound("item %s not found", id)
	}
	return nil
}
