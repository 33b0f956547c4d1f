package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

// WebhookHandler recebe o POST inbound do Brevo quando chega resposta no
// domínio de inbound. Só publica o evento na fila; quem reconcilia é o
// worker.
type WebhookHandler struct {
	Producer    queue.ReplyProducerInterface
	rateLimiter *RateLimiter
}

func NewWebhookHandler(producer queue.ReplyProducerInterface) *WebhookHandler {
	return &WebhookHandler{
		Producer:    producer,
		rateLimiter: NewRateLimiter(60, time.Minute), // 60 req/min por IP
	}
}

// Handle: POST /webhook/reply
// Payload vem como JSON ou multipart/form-data, dependendo da configuração
// do inbound no Brevo. Os dois formatos são aceitos.
func (h *WebhookHandler) Handle(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeJSON(w, http.StatusTooManyRequests, errorResponse{
			Code:    "RATE_LIMITED",
			Message: "Too many requests. Please try again later.",
		})
		return
	}

	data, err := parseWebhookBody(r)
	if err != nil {
		log.Printf("❌ [WEBHOOK] Payload inválido: %v", err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Code: "BAD_PAYLOAD", Message: "bad payload"})
		return
	}

	rawSender := firstOf(data, "sender", "From")
	senderName, senderEmail := ParseSender(rawSender)

	subject := firstOf(data, "subject", "Subject")
	if subject == "" {
		subject = "(no subject)"
	}
	preview := firstOf(data, "text", "plain")
	if len(preview) > 400 {
		preview = preview[:400]
	}

	if senderEmail == "" {
		// Sem remetente não tem o que reconciliar; aceita e ignora.
		writeJSON(w, http.StatusOK, map[string]string{"status": "ignored"})
		return
	}

	log.Printf("📬 [WEBHOOK] Resposta inbound de %s <%s>", senderName, senderEmail)
	middleware.RecordReplyReceived()

	payload := queue.ReplyEventPayload{
		Email:   senderEmail,
		Name:    senderName,
		Subject: subject,
		Preview: preview,
		Source:  "WEBHOOK",
	}
	if err := h.Producer.PublishReplyEvent(r.Context(), payload); err != nil {
		log.Printf("❌ [WEBHOOK] Erro fila: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Code: "QUEUE_ERROR", Message: "failed to enqueue reply"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "received"})
}

func parseWebhookBody(r *http.Request) (map[string]string, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.Contains(contentType, "application/json") {
		var raw map[string]any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			return nil, err
		}
		data := make(map[string]string, len(raw))
		for k, v := range raw {
			if s, ok := v.(string); ok {
				data[k] = s
			}
		}
		return data, nil
	}

	// Brevo manda multipart para inbound
	if err := r.ParseMultipartForm(1 << 20); err != nil {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
	}
	data := make(map[string]string)
	for k, v := range r.Form {
		if len(v) > 0 {
			data[k] = v[0]
		}
	}
	return data, nil
}

func firstOf(data map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := data[k]; ok && v != "" {
			return v
		}
	}
	return ""
}

var senderAddrRegex = regexp.MustCompile(`<([^>]+)>`)

// ParseSender quebra "Name <email@domain.com>" em (name, email).
func ParseSender(raw string) (name, email string) {
	m := senderAddrRegex.FindStringSubmatchIndex(raw)
	if m != nil {
		email = strings.ToLower(strings.TrimSpace(raw[m[2]:m[3]]))
		name = strings.Trim(strings.TrimSpace(raw[:m[0]]), `"'`)
		return name, email
	}
	return "", strings.ToLower(strings.TrimSpace(raw))
}
