package usecase

import (
	"regexp"
	"strings"
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9_.+\-]+@[a-zA-Z0-9\-]+\.[a-zA-Z0-9.\-]+$`)

// NormalizeEmail aplica trim + lowercase e valida a sintaxe.
// A normalização é idempotente: normalizar duas vezes dá o mesmo resultado.
func NormalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if !emailRegex.MatchString(email) {
		return "", &DomainError{
			Code:    CodeInvalidAddress,
			Message: "invalid email address: " + raw,
		}
	}
	return email, nil
}

// NormalizeTag normaliza a niche tag (trim + lowercase).
func NormalizeTag(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
