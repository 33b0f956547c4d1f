package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

// Entidade: Lead (prospecto de cold email)
type Lead struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	NicheTag     string     `json:"niche_tag"`
	Used         bool       `json:"used"`
	Replied      bool       `json:"replied"`
	Failed       bool       `json:"failed"`
	FailCount    int        `json:"fail_count"`
	TemplateUsed string     `json:"template_used,omitempty"`
	SentAt       *time.Time `json:"sent_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

// Factory
func NewLead(name, email, nicheTag string) *Lead {
	return &Lead{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		NicheTag:  nicheTag,
		CreatedAt: time.Now().UTC(),
	}
}

type LeadStats struct {
	Total     int     `json:"total"`
	Sent      int     `json:"sent"`
	Replied   int     `json:"replied"`
	Remaining int     `json:"remaining"`
	Failed    int     `json:"failed"`
	ReplyRate float64 `json:"reply_rate"`
}

// ReplyRate calcula o percentual de respostas com 1 casa decimal.
// Retorna 0 quando nada foi enviado ainda.
func ReplyRate(replied, sent int) float64 {
	if sent == 0 {
		return 0
	}
	rate := float64(replied) / float64(sent) * 100
	return float64(int(rate*10+0.5)) / 10
}

type LeadRepositoryInterface interface {
	Insert(ctx context.Context, lead *Lead) (bool, error)
	Remove(ctx context.Context, emails []string) (int64, error)
	ListEligible(ctx context.Context, nicheTag string) ([]Lead, error)
	ListRetryable(ctx context.Context, nicheTag string, maxRetries int) ([]Lead, error)
	ClearFailed(ctx context.Context, emails []string) error
	MarkSent(ctx context.Context, email, templateUsed string) error
	MarkFailed(ctx context.Context, email string) error
	MarkReplied(ctx context.Context, email string) (*Lead, error)
	Stats(ctx context.Context) (*LeadStats, error)
	DailySentCount(ctx context.Context) (int, error)
	ListForExport(ctx context.Context, nicheTag string) ([]Lead, error)
}
