package worker

import (
	"context"
	"log"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/infra/integration/brevo"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

// InboxClientInterface é o probe de respostas do provedor.
type InboxClientInterface interface {
	ReplyEvents(ctx context.Context, limit int) ([]brevo.ReplyEvent, error)
}

// ReplyPollWorker varre periodicamente os eventos de resposta do provedor
// e publica cada um na mesma fila que o webhook alimenta. Os dois caminhos
// são produtores intercambiáveis do mesmo evento.
type ReplyPollWorker struct {
	inbox        InboxClientInterface
	producer     queue.ReplyProducerInterface
	tickInterval time.Duration
	batchLimit   int
}

func NewReplyPollWorker(inbox InboxClientInterface, producer queue.ReplyProducerInterface, tickInterval time.Duration) *ReplyPollWorker {
	return &ReplyPollWorker{
		inbox:        inbox,
		producer:     producer,
		tickInterval: tickInterval,
		batchLimit:   20,
	}
}

func (w *ReplyPollWorker) Start(ctx context.Context) {
	log.Printf("🕒 Reply Poll Worker iniciado (intervalo %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.pollOnce(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Reply Poll Worker encerrado")
			return
		case <-ticker.C:
			w.pollOnce(ctx)
		}
	}
}

func (w *ReplyPollWorker) pollOnce(ctx context.Context) {
	events, err := w.inbox.ReplyEvents(ctx, w.batchLimit)
	if err != nil {
		log.Printf("❌ Erro ao consultar inbox: %v", err)
		return
	}
	if len(events) == 0 {
		return
	}

	published := 0
	for _, event := range events {
		payload := queue.ReplyEventPayload{
			Email:   event.Email,
			Subject: event.Subject,
			Source:  "POLL",
		}
		if err := w.producer.PublishReplyEvent(ctx, payload); err != nil {
			log.Printf("⚠️ Erro ao publicar evento de reply: %v", err)
			continue
		}
		published++
	}

	if published > 0 {
		log.Printf("📥 %d evento(s) de resposta publicados via polling", published)
	}
}
