package mail

import (
	"context"
	"log"

	"gopkg.in/gomail.v2"
)

type SMTPSender struct {
	Host      string
	Port      int
	User      string
	Password  string
	FromName  string
	FromEmail string
}

func NewSMTPSender(host string, port int, user, password, fromName, fromEmail string) *SMTPSender {
	return &SMTPSender{
		Host:      host,
		Port:      port,
		User:      user,
		Password:  password,
		FromName:  fromName,
		FromEmail: fromEmail,
	}
}

// Send entrega um email via SMTP. Qualquer erro vira (false, diagnóstico);
// nada sobe como erro para o motor de envio.
func (s *SMTPSender) Send(ctx context.Context, toEmail, toName, subject, bodyText string) (bool, string) {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.FromEmail, s.FromName))
	m.SetHeader("To", m.FormatAddress(toEmail, toName))
	m.SetHeader("Reply-To", m.FormatAddress(s.FromEmail, s.FromName))
	m.SetHeader("Subject", subject)
	m.SetHeader("X-Mailer", "LigueOutreach/1.0")
	m.SetBody("text/plain", bodyText)
	m.AddAlternative("text/html", BuildHTML(bodyText))

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	// gomail não conhece context; o DialAndSend roda numa goroutine e o
	// timeout do ctx limita a espera por envio.
	done := make(chan error, 1)
	go func() {
		done <- d.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			log.Printf("❌ Erro SMTP para %s: %v", toEmail, err)
			return false, "smtp error: " + err.Error()
		}
		log.Printf("📧 Email enviado → %s (%s)", toEmail, toName)
		return true, "OK"
	case <-ctx.Done():
		log.Printf("⏱️ Timeout SMTP para %s", toEmail)
		return false, "smtp timeout: " + ctx.Err().Error()
	}
}
