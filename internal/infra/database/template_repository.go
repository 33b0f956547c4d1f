package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type TemplateRepository struct {
	DB *sql.DB
}

func NewTemplateRepository(db *sql.DB) *TemplateRepository {
	return &TemplateRepository{DB: db}
}

// Upsert cria ou substitui o template da niche tag. Sem histórico.
func (r *TemplateRepository) Upsert(ctx context.Context, tmpl *entity.Template) error {
	query := `
		INSERT INTO templates (niche_tag, subject, body, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (niche_tag)
		DO UPDATE SET
			subject = EXCLUDED.subject,
			body = EXCLUDED.body,
			created_at = NOW()
	`

	_, err := r.DB.ExecContext(ctx, query,
		tmpl.NicheTag,
		strings.TrimSpace(tmpl.Subject),
		strings.TrimSpace(tmpl.Body),
	)
	return err
}

func (r *TemplateRepository) FindByTag(ctx context.Context, nicheTag string) (*entity.Template, error) {
	query := `
		SELECT niche_tag, subject, body, created_at
		FROM templates
		WHERE niche_tag = $1
	`

	var tmpl entity.Template
	err := r.DB.QueryRowContext(ctx, query, nicheTag).Scan(
		&tmpl.NicheTag, &tmpl.Subject, &tmpl.Body, &tmpl.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &tmpl, nil
}

func (r *TemplateRepository) Remove(ctx context.Context, nicheTag string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM templates WHERE niche_tag = $1`, nicheTag,
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

func (r *TemplateRepository) List(ctx context.Context) ([]entity.TemplateSummary, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT niche_tag, subject FROM templates ORDER BY niche_tag`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var templates []entity.TemplateSummary
	for rows.Next() {
		var t entity.TemplateSummary
		if err := rows.Scan(&t.NicheTag, &t.Subject); err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, rows.Err()
}
