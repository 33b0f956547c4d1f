package brevo

import "time"

// ReplyEvent é o que o probe de inbox devolve para o núcleo.
type ReplyEvent struct {
	Email   string
	Subject string
	Date    time.Time
}

// --- Payload interno: o que mandamos pro Brevo ---

type emailAddress struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
}

type sendEmailRequest struct {
	Sender      emailAddress      `json:"sender"`
	To          []emailAddress    `json:"to"`
	ReplyTo     emailAddress      `json:"replyTo"`
	Subject     string            `json:"subject"`
	HTMLContent string            `json:"htmlContent"`
	TextContent string            `json:"textContent"`
	Headers     map[string]string `json:"headers,omitempty"`
}

// --- Response: o que o Brevo devolve ---

type sendEmailResponse struct {
	MessageID string `json:"messageId"`
}

type eventsResponse struct {
	Events []eventDTO `json:"events"`
}

type eventDTO struct {
	Email   string `json:"email"`
	Event   string `json:"event"`
	Subject string `json:"subject"`
	Date    string `json:"date"`
}
