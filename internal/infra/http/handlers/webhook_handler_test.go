package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-outreach/internal/infra/http/handlers"
	"github.com/xavierca1/ligue-outreach/internal/infra/queue"
)

type MockReplyProducer struct {
	mock.Mock
}

func (m *MockReplyProducer) PublishReplyEvent(ctx context.Context, payload queue.ReplyEventPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func TestParseSender(t *testing.T) {
	cases := []struct {
		raw       string
		wantName  string
		wantEmail string
	}{
		{"Jane Doe <Jane@X.com>", "Jane Doe", "jane@x.com"},
		{`"Clínica Sorriso" <contato@sorriso.com.br>`, "Clínica Sorriso", "contato@sorriso.com.br"},
		{"<bare@x.com>", "", "bare@x.com"},
		{"plain@x.com", "", "plain@x.com"},
		{"  SPACED@X.COM  ", "", "spaced@x.com"},
	}

	for _, c := range cases {
		name, email := handlers.ParseSender(c.raw)
		assert.Equal(t, c.wantName, name, c.raw)
		assert.Equal(t, c.wantEmail, email, c.raw)
	}
}

func TestWebhookHandleJSON(t *testing.T) {
	producer := new(MockReplyProducer)
	producer.On("PublishReplyEvent", mock.Anything, mock.MatchedBy(func(p queue.ReplyEventPayload) bool {
		return p.Email == "jane@x.com" && p.Name == "Jane" &&
			p.Subject == "Re: Hello" && p.Source == "WEBHOOK"
	})).Return(nil)

	h := handlers.NewWebhookHandler(producer)

	body := `{"sender":"Jane <jane@x.com>","subject":"Re: Hello","text":"Sounds good!"}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/reply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "received")
	producer.AssertExpectations(t)
}

func TestWebhookHandleForm(t *testing.T) {
	producer := new(MockReplyProducer)
	producer.On("PublishReplyEvent", mock.Anything, mock.MatchedBy(func(p queue.ReplyEventPayload) bool {
		return p.Email == "jane@x.com" && p.Subject == "(no subject)"
	})).Return(nil)

	h := handlers.NewWebhookHandler(producer)

	form := url.Values{}
	form.Set("From", "Jane <jane@x.com>")
	form.Set("plain", "oi")
	req := httptest.NewRequest(http.MethodPost, "/webhook/reply", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	producer.AssertExpectations(t)
}

func TestWebhookHandleIgnoresMissingSender(t *testing.T) {
	producer := new(MockReplyProducer)

	h := handlers.NewWebhookHandler(producer)

	req := httptest.NewRequest(http.MethodPost, "/webhook/reply", strings.NewReader(`{"subject":"Re: oi"}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ignored")
	producer.AssertNotCalled(t, "PublishReplyEvent", mock.Anything, mock.Anything)
}

func TestWebhookHandleTruncatesPreview(t *testing.T) {
	producer := new(MockReplyProducer)
	producer.On("PublishReplyEvent", mock.Anything, mock.MatchedBy(func(p queue.ReplyEventPayload) bool {
		return len(p.Preview) == 400
	})).Return(nil)

	h := handlers.NewWebhookHandler(producer)

	body := `{"sender":"<jane@x.com>","text":"` + strings.Repeat("a", 600) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/webhook/reply", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	producer.AssertExpectations(t)
}
