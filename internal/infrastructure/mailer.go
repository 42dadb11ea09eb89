package infrastructure

import (
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// Mailer sends transactional mail through SendGrid. With an empty API key it
// becomes a no-op, which is the expected mode in tests and local development.
type Mailer struct {
	apiKey string
	sender string
}

func NewMailer(apiKey, sender string) *Mailer {
	return &Mailer{apiKey: apiKey, sender: sender}
}

// SendWelcome mails a new user their account name. Best effort; callers
// treat a failure as non-fatal.
func (m *Mailer) SendWelcome(recipientEmail, firstName, username string) error {
	if m.apiKey == "" {
		return nil
	}

	from := mail.NewEmail("EcoToken", m.sender)
	to := mail.NewEmail(firstName, recipientEmail)
	subject := "Welcome to EcoToken"

	plain := fmt.Sprintf("Hi %s, your EcoToken account %q has been created.", firstName, username)
	html := fmt.Sprintf("Hi %s,<br><br>your EcoToken account <strong>%s</strong> has been created.", firstName, username)

	message := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(m.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d", response.StatusCode)
	}
	return nil
}
