package mail

import (
	"fmt"
	"net"
	"net/smtp"

	"microblog/config"
	"microblog/models"
)

// Mailer sends a plain text email.
type Mailer interface {
	Send(to, subject, body string) error
}

// SMTPMailer sends mail through a plain-auth SMTP relay.
type SMTPMailer struct {
	Server   string // host:port
	User     string
	Password string
	Sender   string
}

func NewSMTPMailer(conf config.Configuration) *SMTPMailer {
	return &SMTPMailer{
		Server:   conf.Smtp.Server,
		User:     conf.Smtp.User,
		Password: conf.Smtp.Password,
		Sender:   conf.Smtp.Sender,
	}
}

func (m *SMTPMailer) Send(to, subject, body string) error {
	if m.Server == "" || m.User == "" || m.Password == "" {
		return fmt.Errorf("smtp settings are not configured")
	}

	host, _, err := net.SplitHostPort(m.Server)
	if err != nil {
		return fmt.Errorf("invalid smtp server %q (expected host:port): %w", m.Server, err)
	}

	auth := smtp.PlainAuth("", m.User, m.Password, host)

	msg := []byte("From: " + m.Sender + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n\r\n" +
		body + "\r\n")

	if err := smtp.SendMail(m.Server, auth, m.Sender, []string{to}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// SendPasswordResetEmail mails user a link embedding the signed reset token.
// Delivery failures are returned to the caller, which decides on messaging.
func SendPasswordResetEmail(mailer Mailer, user *models.User, token, baseURL string) error {
	link := fmt.Sprintf("%s/reset_password/%s", baseURL, token)
	body := fmt.Sprintf(
		"Dear %s,\n\nTo reset your password click on the following link:\n\n%s\n\n"+
			"If you have not requested a password reset simply ignore this message.",
		user.Username, link)
	return mailer.Send(user.Email, "Reset Your Password", body)
}
