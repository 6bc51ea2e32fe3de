package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"

	"github.com/alexken/stockroom/internal/apperror"
	"github.com/alexken/stockroom/internal/pgerr"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates a PostgreSQL store repository.
func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const storeColumns = `id, name, description, address, created_at, updated_at`

func scanStore(scan func(...interface{}) error) (*Store, error) {
	s := &Store{}
	err := scan(&s.ID, &s.Name, &s.Description, &s.Address, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, pgerr.Translate(err)
	}
	return s, nil
}

func (r *postgresRepo) Create(ctx context.Context, s *Store) error {
	err := r.db.QueryRowContext(ctx, `
		INSERT INTO stores (id, name, description, address)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at`,
		s.ID, s.Name, s.Description, s.Address).
		Scan(&s.CreatedAt, &s.UpdatedAt)
	return pgerr.Translate(err)
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Store, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE id = $1`, id)
	return scanStore(row.Scan)
}

func (r *postgresRepo) GetByName(ctx context.Context, name string) (*Store, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+storeColumns+` FROM stores WHERE name = $1`, name)
	return scanStore(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context, limit, offset int) ([]*Store, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+storeColumns+` FROM stores
		ORDER BY name
		LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, pgerr.Translate(err)
	}
	defer rows.Close()
	var stores []*Store
	for rows.Next() {
		s, err := scanStore(rows.Scan)
		if err != nil {
			return nil, err
		}
		stores = append(stores, s)
	}
	return stores, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id uuid.UUID, upd Update) (*Store, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE stores SET
			name = COALESCE($2, name),
			description = COALESCE($3, description),
			address = COALESCE($4, address),
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+storeColumns,
		id, upd.Name, upd.Description, upd.Address)
	return scanStore(row.Scan)
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stores WHERE id = $1`, id)
	if err != nil {
		return pgerr.Translate(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperror.NotFound("store %s not found", id)
	}
	return nil
}
