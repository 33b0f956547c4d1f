package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/xavierca1/ligue-outreach/internal/infra/mail"
)

type Client struct {
	baseURL     string
	apiKey      string
	senderName  string
	senderEmail string
	http        *http.Client
}

func NewClient(apiKey, baseURL, senderName, senderEmail string) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		http:        &http.Client{Timeout: 15 * time.Second},
	}
}

// Send entrega um email transacional pelo Brevo.
// Status não-2xx ou erro de rede vira (false, diagnóstico curto).
func (c *Client) Send(ctx context.Context, toEmail, toName, subject, bodyText string) (bool, string) {
	url := fmt.Sprintf("%s/smtp/email", c.baseURL)

	payload := sendEmailRequest{
		Sender:      emailAddress{Name: c.senderName, Email: c.senderEmail},
		To:          []emailAddress{{Name: toName, Email: toEmail}},
		ReplyTo:     emailAddress{Name: c.senderName, Email: c.senderEmail},
		Subject:     subject,
		HTMLContent: mail.BuildHTML(bodyText),
		TextContent: bodyText,
		Headers: map[string]string{
			"X-Mailer": "LigueOutreach/1.0",
		},
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return false, "marshal error: " + err.Error()
	}

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return false, "request error: " + err.Error()
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false, "network error: " + err.Error()
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 300))
		log.Printf("❌ Brevo recusou envio para %s (status %d): %s", toEmail, resp.StatusCode, string(body))
		return false, fmt.Sprintf("brevo %d: %s", resp.StatusCode, string(body))
	}

	log.Printf("📧 Email enviado → %s (%s)", toEmail, toName)
	return true, "OK"
}

// ReplyEvents consulta os eventos transacionais com event=reply.
// É o caminho de polling; o webhook inbound é o caminho em tempo real.
func (c *Client) ReplyEvents(ctx context.Context, limit int) ([]ReplyEvent, error) {
	url := fmt.Sprintf("%s/smtp/statistics/events?event=reply&limit=%s",
		c.baseURL, strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request brevo: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		return nil, fmt.Errorf("brevo events rejeitou (status %d): %s", resp.StatusCode, string(body))
	}

	var response eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode brevo: %w", err)
	}

	events := make([]ReplyEvent, 0, len(response.Events))
	for _, e := range response.Events {
		date, _ := time.Parse(time.RFC3339, e.Date)
		events = append(events, ReplyEvent{
			Email:   e.Email,
			Subject: e.Subject,
			Date:    date,
		})
	}
	return events, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
