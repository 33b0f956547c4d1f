package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

type DispatchConfig struct {
	DailyLimit  int           // teto de envios por dia UTC
	MaxRetries  int           // fail_count >= MaxRetries exclui o lead do retry
	DelayMin    time.Duration // jitter entre envios consecutivos
	DelayMax    time.Duration
	SendTimeout time.Duration // timeout por chamada ao provedor
}

// DispatchUseCase é o motor de envio: seleciona leads elegíveis de uma
// niche tag, renderiza o template e envia um por um, respeitando a cota
// diária e gravando o resultado de cada lead antes de passar pro próximo.
type DispatchUseCase struct {
	Leads     entity.LeadRepositoryInterface
	Templates entity.TemplateRepositoryInterface
	Mailer    MailSenderInterface
	Producer  NotificationProducerInterface // opcional
	Config    DispatchConfig

	// Sleep é trocável nos testes para não dormir de verdade
	Sleep func(time.Duration)

	// Um lote por vez. Serializa /dispatch e /retry entre si para a
	// checagem de cota não ser disputada por dois lotes concorrentes.
	mu sync.Mutex
}

func NewDispatchUseCase(
	leads entity.LeadRepositoryInterface,
	templates entity.TemplateRepositoryInterface,
	mailer MailSenderInterface,
	producer NotificationProducerInterface,
	config DispatchConfig,
) *DispatchUseCase {
	return &DispatchUseCase{
		Leads:     leads,
		Templates: templates,
		Mailer:    mailer,
		Producer:  producer,
		Config:    config,
		Sleep:     time.Sleep,
	}
}

// Execute roda um lote de envio para a niche tag.
// Recusas limpas (cota, template, leads) saem como DomainError antes de
// qualquer efeito colateral. Falha de envio individual nunca aborta o lote.
func (uc *DispatchUseCase) Execute(ctx context.Context, rawTag string) (*DispatchOutput, error) {
	tag := NormalizeTag(rawTag)
	if tag == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "niche tag is required"}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	// 1. Cota diária
	dailyCount, err := uc.Leads.DailySentCount(ctx)
	if err != nil {
		return nil, &TechnicalError{Code: "DB_ERROR", Message: "daily count: " + err.Error()}
	}
	if dailyCount >= uc.Config.DailyLimit {
		return nil, &DomainError{
			Code:    CodeQuotaExceeded,
			Message: fmt.Sprintf("daily limit of %d emails reached", uc.Config.DailyLimit),
		}
	}

	// 2. Template
	tmpl, err := uc.Templates.FindByTag(ctx, tag)
	if err != nil {
		return nil, &TechnicalError{Code: "DB_ERROR", Message: "find template: " + err.Error()}
	}
	if tmpl == nil {
		return nil, &DomainError{Code: CodeNoTemplate, Message: "no template for niche tag " + tag}
	}

	// 3. Leads elegíveis
	leads, err := uc.Leads.ListEligible(ctx, tag)
	if err != nil {
		return nil, &TechnicalError{Code: "DB_ERROR", Message: "list eligible: " + err.Error()}
	}
	if len(leads) == 0 {
		return nil, &DomainError{Code: CodeNoLeads, Message: "no unsent leads for niche tag " + tag}
	}

	// 4. Nunca tenta mais do que sobra na cota de hoje
	if remaining := uc.Config.DailyLimit - dailyCount; len(leads) > remaining {
		leads = leads[:remaining]
	}

	log.Printf("📤 [DISPATCH] Enviando %d email(s) para a tag %q", len(leads), tag)

	sent, failed := uc.sendBatch(ctx, tag, tmpl, leads)

	log.Printf("✅ [DISPATCH] Lote %q concluído: %d enviados, %d falhas", tag, sent, failed)

	return &DispatchOutput{NicheTag: tag, Attempted: len(leads), Sent: sent, Failed: failed}, nil
}

// Retry reenvia leads que falharam e ainda não estouraram MaxRetries.
// A flag failed é limpa antes do loop para um dispatch concorrente não
// pegar os mesmos leads no meio do retry.
func (uc *DispatchUseCase) Retry(ctx context.Context, rawTag string) (*DispatchOutput, error) {
	tag := NormalizeTag(rawTag)
	if tag == "" {
		return nil, &DomainError{Code: CodeValidation, Message: "niche tag is required"}
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	tmpl, err := uc.Templates.FindByTag(ctx, tag)
	if err != nil {
		return nil, &TechnicalError{Code: "DB_ERROR", Message: "find template: " + err.Error()}
	}
	if tmpl == nil {
		return nil, &DomainError{Code: CodeNoTemplate, Message: "no template for niche tag " + tag}
	}

	leads, err := uc.Leads.ListRetryable(ctx, tag, uc.Config.MaxRetries)
	if err != nil {
		return nil, &TechnicalError{Code: "DB_ERROR", Message: "list retryable: " + err.Error()}
	}
	if len(leads) == 0 {
		return nil, &DomainError{Code: CodeNoLeads, Message: "no failed leads to retry for niche tag " + tag}
	}

	emails := make([]string, len(leads))
	for i, lead := range leads {
		emails[i] = lead.Email
	}
	if err := uc.Leads.ClearFailed(ctx, emails); err != nil {
		return nil, &TechnicalError{Code: "DB_ERROR", Message: "clear failed: " + err.Error()}
	}

	log.Printf("🔁 [RETRY] Reenviando %d email(s) para a tag %q", len(leads), tag)

	sent, failed := uc.sendBatch(ctx, tag, tmpl, leads)

	return &DispatchOutput{NicheTag: tag, Attempted: len(leads), Sent: sent, Failed: failed}, nil
}

// sendBatch processa os leads estritamente em sequência. O resultado de
// cada lead é gravado antes da próxima tentativa começar, e o jitter só
// roda entre envios consecutivos (não depois do último).
func (uc *DispatchUseCase) sendBatch(ctx context.Context, tag string, tmpl *entity.Template, leads []entity.Lead) (sent, failed int) {
	total := len(leads)

	for i, lead := range leads {
		if i > 0 {
			uc.Sleep(uc.jitter())
		}

		// Re-checa a cota viva antes de cada envio: dois lotes passando
		// juntos pela checagem inicial estouram o teto em no máximo uma
		// mensagem em voo.
		if i > 0 {
			count, err := uc.Leads.DailySentCount(ctx)
			if err == nil && count >= uc.Config.DailyLimit {
				log.Printf("⛔ [DISPATCH] Cota diária atingida no meio do lote %q (%d/%d processados)", tag, i, total)
				break
			}
		}

		subject, body := tmpl.Render(lead.Name)

		sendCtx, cancel := context.WithTimeout(ctx, uc.Config.SendTimeout)
		ok, diag := uc.Mailer.Send(sendCtx, lead.Email, lead.Name, subject, body)
		cancel()

		if ok {
			if err := uc.Leads.MarkSent(ctx, lead.Email, tag); err != nil {
				log.Printf("❌ [DISPATCH] Erro ao marcar %s como enviado: %v", lead.Email, err)
			}
			sent++
		} else {
			if err := uc.Leads.MarkFailed(ctx, lead.Email); err != nil {
				log.Printf("❌ [DISPATCH] Erro ao marcar %s como falho: %v", lead.Email, err)
			}
			failed++
			log.Printf("⚠️ [DISPATCH] Falha ao enviar para %s: %s", lead.Email, diag)
		}

		// Progresso a cada 5 envios ou no último
		if uc.Producer != nil && ((i+1)%5 == 0 || i+1 == total) {
			payload := queue.NotificationPayload{
				Kind:     queue.NotificationProgress,
				NicheTag: tag,
				Done:     i + 1,
				Total:    total,
				Sent:     sent,
				Failed:   failed,
			}
			if err := uc.Producer.PublishNotification(ctx, payload); err != nil {
				log.Printf("⚠️ [DISPATCH] Erro ao publicar progresso: %v", err)
			}
		}
	}

	return sent, failed
}

func (uc *DispatchUseCase) jitter() time.Duration {
	min, max := uc.Config.DelayMin, uc.Config.DelayMax
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)))
}
