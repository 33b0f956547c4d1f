package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	ExchangeName = "ex.outreach"
	DLXName      = "ex.dlx" // Dead Letter Exchange

	// Eventos de resposta (webhook e polling publicam, o worker consome)
	ReplyQueueName  = "q.replies"
	ReplyDLQName    = "q.replies.dlq"
	ReplyRoutingKey = "k.reply"

	// Notificações para o operador (progresso de lote, reply recebido)
	NotifyQueueName  = "q.notifications"
	NotifyRoutingKey = "k.notify"
)

type RabbitMQ struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewRabbitMQ(user, pass, host, port string) (*RabbitMQ, error) {
	dsn := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, pass, host, port)

	conn, err := amqp.Dial(dsn)
	if err != nil {
		return nil, fmt.Errorf("falha ao conectar no RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir canal: %w", err)
	}

	if err := setupTopology(ch); err != nil {
		return nil, err
	}

	return &RabbitMQ{Conn: conn, Ch: ch}, nil
}

func setupTopology(ch *amqp.Channel) error {

	err := ch.ExchangeDeclare(DLXName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(ReplyDLQName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = ch.QueueBind(ReplyDLQName, ReplyRoutingKey, DLXName, false, nil)
	if err != nil {
		return err
	}

	err = ch.ExchangeDeclare(ExchangeName, "direct", true, false, false, false, nil)
	if err != nil {
		return err
	}

	args := amqp.Table{
		"x-dead-letter-exchange":    DLXName, // Se der Nack, manda pra DLX
		"x-dead-letter-routing-key": ReplyRoutingKey,
	}

	_, err = ch.QueueDeclare(ReplyQueueName, true, false, false, false, args)
	if err != nil {
		return err
	}

	err = ch.QueueBind(ReplyQueueName, ReplyRoutingKey, ExchangeName, false, nil)
	if err != nil {
		return err
	}

	_, err = ch.QueueDeclare(NotifyQueueName, true, false, false, false, nil)
	if err != nil {
		return err
	}

	err = ch.QueueBind(NotifyQueueName, NotifyRoutingKey, ExchangeName, false, nil)
	if err != nil {
		return err
	}

	return nil
}
