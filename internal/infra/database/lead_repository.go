package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Insert grava o lead somente se o email ainda não existe. O unique em
// email faz o insert-se-ausente ser atômico: quem chegar depois recebe
// created=false, nunca um segundo registro.
func (r *LeadRepository) Insert(ctx context.Context, lead *entity.Lead) (bool, error) {
	query := `
		INSERT INTO leads (id, name, email, niche_tag, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (email) DO NOTHING
	`

	res, err := r.DB.ExecContext(ctx, query,
		lead.ID, lead.Name, lead.Email, lead.NicheTag, lead.CreatedAt,
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

func (r *LeadRepository) Remove(ctx context.Context, emails []string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		`DELETE FROM leads WHERE email = ANY($1)`,
		pq.Array(emails),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *LeadRepository) ListEligible(ctx context.Context, nicheTag string) ([]entity.Lead, error) {
	query := selectLead + `
		WHERE niche_tag = $1
		  AND used = FALSE
		  AND replied = FALSE
		  AND failed = FALSE
		ORDER BY created_at
	`
	return r.queryLeads(ctx, query, nicheTag)
}

func (r *LeadRepository) ListRetryable(ctx context.Context, nicheTag string, maxRetries int) ([]entity.Lead, error) {
	query := selectLead + `
		WHERE niche_tag = $1
		  AND failed = TRUE
		  AND fail_count < $2
		  AND used = FALSE
		ORDER BY created_at
	`
	return r.queryLeads(ctx, query, nicheTag, maxRetries)
}

func (r *LeadRepository) ClearFailed(ctx context.Context, emails []string) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE leads SET failed = FALSE WHERE email = ANY($1)`,
		pq.Array(emails),
	)
	return err
}

func (r *LeadRepository) MarkSent(ctx context.Context, email, templateUsed string) error {
	query := `
		UPDATE leads
		SET used = TRUE,
		    failed = FALSE,
		    fail_count = 0,
		    template_used = $2,
		    sent_at = NOW()
		WHERE email = $1
	`
	_, err := r.DB.ExecContext(ctx, query, email, templateUsed)
	return err
}

func (r *LeadRepository) MarkFailed(ctx context.Context, email string) error {
	query := `
		UPDATE leads
		SET failed = TRUE,
		    fail_count = fail_count + 1
		WHERE email = $1
	`
	_, err := r.DB.ExecContext(ctx, query, email)
	return err
}

// MarkReplied seta replied=true e devolve o lead (para a notificação usar
// o nome guardado). Endereço desconhecido devolve nil sem erro.
func (r *LeadRepository) MarkReplied(ctx context.Context, email string) (*entity.Lead, error) {
	query := `
		UPDATE leads
		SET replied = TRUE
		WHERE email = $1
		RETURNING id, name, email, niche_tag, used, replied, failed,
		          fail_count, template_used, sent_at, created_at
	`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *LeadRepository) Stats(ctx context.Context) (*entity.LeadStats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE used),
			COUNT(*) FILTER (WHERE replied),
			COUNT(*) FILTER (WHERE NOT used AND NOT replied AND NOT failed),
			COUNT(*) FILTER (WHERE failed)
		FROM leads
	`

	stats := &entity.LeadStats{}
	err := r.DB.QueryRowContext(ctx, query).Scan(
		&stats.Total, &stats.Sent, &stats.Replied, &stats.Remaining, &stats.Failed,
	)
	if err != nil {
		return nil, err
	}

	stats.ReplyRate = entity.ReplyRate(stats.Replied, stats.Sent)
	return stats, nil
}

// DailySentCount conta envios desde a meia-noite UTC de hoje. Sempre
// recalculado na hora, nunca cacheado.
func (r *LeadRepository) DailySentCount(ctx context.Context) (int, error) {
	todayStart := time.Now().UTC().Truncate(24 * time.Hour)

	var count int
	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM leads WHERE sent_at >= $1`,
		todayStart,
	).Scan(&count)
	return count, err
}

func (r *LeadRepository) ListForExport(ctx context.Context, nicheTag string) ([]entity.Lead, error) {
	if nicheTag == "" {
		return r.queryLeads(ctx, selectLead+` ORDER BY created_at`)
	}
	return r.queryLeads(ctx, selectLead+` WHERE niche_tag = $1 ORDER BY created_at`, nicheTag)
}

const selectLead = `
	SELECT id, name, email, niche_tag, used, replied, failed,
	       fail_count, template_used, sent_at, created_at
	FROM leads
`

func (r *LeadRepository) queryLeads(ctx context.Context, query string, args ...any) ([]entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var templateUsed sql.NullString
	var sentAt sql.NullTime

	err := row.Scan(
		&lead.ID, &lead.Name, &lead.Email, &lead.NicheTag,
		&lead.Used, &lead.Replied, &lead.Failed, &lead.FailCount,
		&templateUsed, &sentAt, &lead.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.TemplateUsed = templateUsed.String
	if sentAt.Valid {
		lead.SentAt = &sentAt.Time
	}
	return &lead, nil
}
