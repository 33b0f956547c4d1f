package usecase

import (
	"context"

	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

// MailSenderInterface é a fronteira com o provedor transacional.
// Falha de rede ou status não-2xx vira (false, diagnóstico curto);
// nada estoura para cima dessa camada.
type MailSenderInterface interface {
	Send(ctx context.Context, toEmail, toName, subject, bodyText string) (bool, string)
}

// NotificationProducerInterface publica notificações para o operador
// (progresso de lote, reply recebido). Efeito colateral, não contrato.
type NotificationProducerInterface interface {
	PublishNotification(ctx context.Context, payload queue.NotificationPayload) error
}
