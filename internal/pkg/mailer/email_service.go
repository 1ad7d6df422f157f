// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendRegistrationConfirmation(toEmail, username string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
	clientURL   string
}

func NewEmailService(host string, port int, username, password, senderName, clientURL string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
		clientURL:   clientURL,
	}
}

// RegistrationConfirmationBody renders the HTML body of the confirmation mail.
func RegistrationConfirmationBody(username, clientURL string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>You're registered, %s!</h2>
			<p>Your registration for the tournament has been received.</p>
			<p>Map pools are published per stage on <a href="%s/mappool">%s/mappool</a>.</p>
			<p>If you didn't register, please ignore this email.</p>
		</div>
	`, username, clientURL, clientURL)
}

func (s *emailService) SendRegistrationConfirmation(toEmail, username string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Tournament registration confirmed")
	m.SetBody("text/html", RegistrationConfirmationBody(username, s.clientURL))

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send registration confirmation to %s: %w", toEmail, err)
	}
	return nil
}
