package entity

import (
	"context"
	"time"
)

// Entidade: BlacklistEntry (supressão permanente de endereço)
type BlacklistEntry struct {
	Email     string    `json:"email"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type BlacklistRepositoryInterface interface {
	// Add insere se ausente. Como efeito colateral o lead correspondente
	// (se existir) vira used=true e nunca mais entra num lote de envio.
	Add(ctx context.Context, email, reason string) (bool, error)
	Remove(ctx context.Context, email string) (bool, error)
	Contains(ctx context.Context, email string) (bool, error)
	List(ctx context.Context) ([]BlacklistEntry, error)
}
