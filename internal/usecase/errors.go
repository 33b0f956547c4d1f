package usecase

import "errors"

// Códigos de erro de domínio (recusas limpas, sem efeito colateral)
const (
	CodeInvalidAddress = "INVALID_ADDRESS"
	CodeBlacklisted    = "BLACKLISTED"
	CodeQuotaExceeded  = "QUOTA_EXCEEDED"
	CodeNoTemplate     = "NO_TEMPLATE"
	CodeNoLeads        = "NO_LEADS"
	CodeNotFound       = "NOT_FOUND"
	CodeValidation     = "VALIDATION_ERROR"
)

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}

// HasCode verifica se o erro é um DomainError com o código informado.
func HasCode(err error, code string) bool {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code == code
	}
	return false
}

type TechnicalError struct {
	Code    string
	Message string
}

func (e *TechnicalError) Error() string {
	return e.Message
}

func IsTechnicalError(err error) bool {
	var te *TechnicalError
	return errors.As(err, &te)
}
