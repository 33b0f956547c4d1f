package usecase

import (
	"context"
	"log"

	"github.com/xavierca1/ligue-outreach/internal/entity"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

// ReconcileReplyUseCase aplica um sinal de resposta (webhook ou polling)
// no lead correspondente. Idempotente: responder duas vezes só re-seta
// replied=true e emite outra notificação.
type ReconcileReplyUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Producer NotificationProducerInterface // opcional
}

func NewReconcileReplyUseCase(
	leads entity.LeadRepositoryInterface,
	producer NotificationProducerInterface,
) *ReconcileReplyUseCase {
	return &ReconcileReplyUseCase{Leads: leads, Producer: producer}
}

func (uc *ReconcileReplyUseCase) Execute(ctx context.Context, input ReplyInput) (*ReplyNotification, error) {
	email, err := NormalizeEmail(input.Email)
	if err != nil {
		return nil, err
	}

	lead, err := uc.Leads.MarkReplied(ctx, email)
	if err != nil {
		return nil, &TechnicalError{Code: "DB_ERROR", Message: "mark replied: " + err.Error()}
	}

	// Nome do lead na base > nome informado pelo remetente > o endereço
	name := input.Name
	if lead != nil {
		name = lead.Name
	}
	if name == "" {
		name = email
	}

	notification := &ReplyNotification{
		Name:    name,
		Email:   email,
		Subject: input.Subject,
		Preview: input.Preview,
		Known:   lead != nil,
	}

	log.Printf("📬 [REPLY] Resposta de %s <%s> (lead conhecido: %v)", name, email, lead != nil)

	if uc.Producer != nil {
		payload := queue.NotificationPayload{
			Kind:    queue.NotificationReply,
			Name:    notification.Name,
			Email:   notification.Email,
			Subject: notification.Subject,
			Preview: notification.Preview,
		}
		if err := uc.Producer.PublishNotification(ctx, payload); err != nil {
			log.Printf("⚠️ [REPLY] Erro ao publicar notificação: %v", err)
		}
	}

	return notification, nil
}

// Reconcile adapta o payload da fila para o Execute. É o que o worker
// de replies consome.
func (uc *ReconcileReplyUseCase) Reconcile(ctx context.Context, event queue.ReplyEventPayload) error {
	_, err := uc.Execute(ctx, ReplyInput{
		Email:   event.Email,
		Name:    event.Name,
		Subject: event.Subject,
		Preview: event.Preview,
	})
	return err
}

// MarkManually é o caminho do comando do operador: marca o lead como
// respondido ou devolve NOT_FOUND se o endereço não existe na base.
func (uc *ReconcileReplyUseCase) MarkManually(ctx context.Context, rawEmail string) error {
	email, err := NormalizeEmail(rawEmail)
	if err != nil {
		return err
	}

	lead, err := uc.Leads.MarkReplied(ctx, email)
	if err != nil {
		return &TechnicalError{Code: "DB_ERROR", Message: "mark replied: " + err.Error()}
	}
	if lead == nil {
		return &DomainError{Code: CodeNotFound, Message: "lead not found: " + email}
	}
	return nil
}
