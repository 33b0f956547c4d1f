package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReplyEventPayload é o evento único de resposta. Webhook e polling são
// produtores intercambiáveis da mesma mensagem.
type ReplyEventPayload struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Subject string `json:"subject"`
	Preview string `json:"preview"`
	Source  string `json:"source"` // WEBHOOK ou POLL
}

const (
	NotificationProgress = "PROGRESS"
	NotificationReply    = "REPLY"
)

// NotificationPayload vai para a fila do operador.
type NotificationPayload struct {
	Kind     string `json:"kind"`
	NicheTag string `json:"niche_tag,omitempty"`

	// Progresso de lote
	Done   int `json:"done,omitempty"`
	Total  int `json:"total,omitempty"`
	Sent   int `json:"sent,omitempty"`
	Failed int `json:"failed,omitempty"`

	// Reply recebido
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Subject string `json:"subject,omitempty"`
	Preview string `json:"preview,omitempty"`
}

type ReplyProducerInterface interface {
	PublishReplyEvent(ctx context.Context, payload ReplyEventPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishReplyEvent(ctx context.Context, payload ReplyEventPayload) error {
	return p.publish(ctx, ReplyRoutingKey, payload)
}

func (p *RabbitMQProducer) PublishNotification(ctx context.Context, payload NotificationPayload) error {
	return p.publish(ctx, NotifyRoutingKey, payload)
}

func (p *RabbitMQProducer) publish(ctx context.Context, routingKey string, payload any) error {

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		routingKey,
		false, // Mandatory
		false, // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco
		},
	)
	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
