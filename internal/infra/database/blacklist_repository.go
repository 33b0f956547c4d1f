package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type BlacklistRepository struct {
	DB *sql.DB
}

func NewBlacklistRepository(db *sql.DB) *BlacklistRepository {
	return &BlacklistRepository{DB: db}
}

// Add insere o endereço se ausente e, na mesma transação, força o lead
// correspondente para used=true. Um endereço blacklistado nunca pode
// continuar elegível para envio.
func (r *BlacklistRepository) Add(ctx context.Context, email, reason string) (bool, error) {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO blacklist (email, reason, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (email) DO NOTHING
	`, email, reason)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE leads SET used = TRUE WHERE email = $1`, email,
	); err != nil {
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("erro ao commitar blacklist: %w", err)
	}

	return rows > 0, nil
}

func (r *BlacklistRepository) Remove(ctx context.Context, email string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM blacklist WHERE email = $1`, email,
	)
	if err != nil {
		return false, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *BlacklistRepository) Contains(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM blacklist WHERE email = $1)`, email,
	).Scan(&exists)
	return exists, err
}

func (r *BlacklistRepository) List(ctx context.Context) ([]entity.BlacklistEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT email, reason, created_at FROM blacklist ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []entity.BlacklistEntry
	for rows.Next() {
		var e entity.BlacklistEntry
		if err := rows.Scan(&e.Email, &e.Reason, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
