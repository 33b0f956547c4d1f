package entity

import (
	"context"
	"strings"
	"time"
)

// Placeholder substituído pelo nome do lead na hora do envio
const NamePlaceholder = "{NAME}"

// Entidade: Template (um por niche tag)
type Template struct {
	NicheTag  string    `json:"niche_tag"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// Render substitui o {NAME} pelo nome do lead, sem escapar nada.
// Escape de HTML é responsabilidade da camada de email.
func (t *Template) Render(leadName string) (subject, body string) {
	subject = strings.ReplaceAll(t.Subject, NamePlaceholder, leadName)
	body = strings.ReplaceAll(t.Body, NamePlaceholder, leadName)
	return subject, body
}

type TemplateSummary struct {
	NicheTag string `json:"niche_tag"`
	Subject  string `json:"subject"`
}

type TemplateRepositoryInterface interface {
	Upsert(ctx context.Context, tmpl *Template) error
	FindByTag(ctx context.Context, nicheTag string) (*Template, error)
	Remove(ctx context.Context, nicheTag string) (bool, error)
	List(ctx context.Context) ([]TemplateSummary, error)
}
