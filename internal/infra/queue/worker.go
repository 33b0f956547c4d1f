package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReplyReconciler define o contrato do núcleo que aplica o evento de
// resposta no lead. O Worker é 100% desacoplado do banco.
type ReplyReconciler interface {
	Reconcile(ctx context.Context, event ReplyEventPayload) error
}

type Worker struct {
	Channel    *amqp.Channel
	Reconciler ReplyReconciler
}

func NewWorker(ch *amqp.Channel, reconciler ReplyReconciler) *Worker {
	return &Worker{
		Channel:    ch,
		Reconciler: reconciler,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			w.Handle(d)
		}
	}()

	log.Printf(" [*] Reply worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) Handle(d amqp.Delivery) {
	log.Printf("📥 [WORKER] Evento de resposta recebido do RabbitMQ")

	var payload ReplyEventPayload
	if err := json.Unmarshal(d.Body, &payload); err != nil {
		log.Printf("❌ [WORKER] JSON Inválido: %s", err)
		// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
		d.Nack(false, false)
		return
	}

	log.Printf("⚙️ [WORKER] Reconciliando resposta de %s (origem: %s)", payload.Email, payload.Source)

	if err := w.Reconciler.Reconcile(context.Background(), payload); err != nil {
		log.Printf("❌ [WORKER] Erro ao reconciliar: %s", err)
		// Endereço inválido ou erro de banco: vai pra DLQ, sem requeue.
		d.Nack(false, false)
		return
	}

	log.Printf("✅ [WORKER] Resposta de %s aplicada no lead", payload.Email)
	d.Ack(false)
}
