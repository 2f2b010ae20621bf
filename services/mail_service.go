package services

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"eats-backend/utils"
)

// Mailer sends transactional mail. Sending is fire-and-forget: callers
// must never block on or fail because of the mail transport.
type Mailer interface {
	SendVerificationEmail(email, code string)
}

type MailService struct {
	mg   *mailgun.MailgunImpl
	from string
}

func NewMailService(domain, apiKey, fromEmail string) *MailService {
	if fromEmail == "" {
		fromEmail = fmt.Sprintf("Eats <mailgun@%s>", domain)
	}
	return &MailService{
		mg:   mailgun.NewMailgun(domain, apiKey),
		from: fromEmail,
	}
}

func (s *MailService) SendVerificationEmail(email, code string) {
	go func() {
		m := s.mg.NewMessage(s.from, "Verify Your Email", "", email)
		m.SetTemplate("verify-email")
		if err := m.AddTemplateVariable("code", code); err != nil {
			utils.ErrorLogger.Printf("mail: template variable: %v", err)
			return
		}
		if err := m.AddTemplateVariable("username", email); err != nil {
			utils.ErrorLogger.Printf("mail: template variable: %v", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if _, _, err := s.mg.Send(ctx, m); err != nil {
			utils.ErrorLogger.Printf("mail: could not send verification email to %s: %v", email, err)
		}
	}()
}
