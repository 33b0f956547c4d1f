package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-outreach/internal/entity"
)

// AddLeadsUseCase insere leads em lote. Cada entrada é independente:
// inválidos, duplicados e blacklistados são contados e o resto entra.
type AddLeadsUseCase struct {
	Leads     entity.LeadRepositoryInterface
	Blacklist entity.BlacklistRepositoryInterface
}

func NewAddLeadsUseCase(
	leads entity.LeadRepositoryInterface,
	blacklist entity.BlacklistRepositoryInterface,
) *AddLeadsUseCase {
	return &AddLeadsUseCase{Leads: leads, Blacklist: blacklist}
}

func (uc *AddLeadsUseCase) Execute(ctx context.Context, input AddLeadsInput) (*AddLeadsOutput, error) {
	tag := NormalizeTag(input.NicheTag)
	if tag == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "niche tag is required"}
	}
	if len(input.Leads) == 0 {
		return nil, &DomainError{Code: CodeValidation, Message: "at least one lead is required"}
	}

	out := &AddLeadsOutput{}

	for _, in := range input.Leads {
		email, err := NormalizeEmail(in.Email)
		if err != nil {
			out.Invalid++
			out.Errors = append(out.Errors, in.Email+": invalid address")
			continue
		}

		// Blacklist primeiro: endereço suprimido nunca vira lead novo
		listed, err := uc.Blacklist.Contains(ctx, email)
		if err != nil {
			return nil, &TechnicalError{Code: "DB_ERROR", Message: "blacklist check: " + err.Error()}
		}
		if listed {
			out.Blacklisted++
			out.Errors = append(out.Errors, email+": blacklisted")
			continue
		}

		created, err := uc.Leads.Insert(ctx, entity.NewLead(in.Name, email, tag))
		if err != nil {
			return nil, &TechnicalError{Code: "DB_ERROR", Message: "insert lead: " + err.Error()}
		}
		if created {
			out.Added++
		} else {
			out.Duplicates++
		}
	}

	log.Printf("👥 [LEADS] Tag %q: %d novos, %d duplicados, %d blacklistados, %d inválidos",
		tag, out.Added, out.Duplicates, out.Blacklisted, out.Invalid)

	return out, nil
}
