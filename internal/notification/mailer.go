// Package notification delivers activation codes over SMTP.
package notification

import (
	"context"
	"fmt"

	"github.com/Aranruth94/book-social-network/internal/auth/domain"
	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// Sender abstracts gomail's DialAndSend for testing.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Mailer struct {
	sender        Sender
	from          string
	activationURL string
}

func NewMailer(host string, port int, username, password, from, activationURL string) *Mailer {
	return &Mailer{
		sender:        gomail.NewDialer(host, port, username, password),
		from:          from,
		activationURL: activationURL,
	}
}

// NewMailerWithSender is used by tests to inject a fake sender.
func NewMailerWithSender(sender Sender, from, activationURL string) *Mailer {
	return &Mailer{sender: sender, from: from, activationURL: activationURL}
}

func (m *Mailer) SendActivationCode(ctx context.Context, user *domain.User, code string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", user.Email)
	msg.SetHeader("Subject", "Account activation")
	msg.SetHeader("Message-ID", fmt.Sprintf("<%s@book-network>", uuid.NewString()))
	msg.SetBody("text/plain", fmt.Sprintf(
		"Hello %s,\n\nYour activation code is %s.\nActivate your account at %s\n\nThe code is valid for a short time; activating with an expired code sends you a fresh one.\n",
		user.FullName(), code, m.activationURL,
	))

	if err := m.sender.DialAndSend(msg); err != nil {
		return fmt.Errorf("send activation mail to %s: %w", user.Email, err)
	}
	return nil
}
