package services

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/Rightupnext/South-mirror-backend/config"
	"github.com/Rightupnext/South-mirror-backend/utils"
)

const senderName = "South Mirrors News"

// Mailer sends one message to one or more recipients. Implementations are
// fire-and-forget: no retry, no delivery confirmation.
type Mailer interface {
	Send(to []string, subject, htmlBody string) error
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg *config.Config) *SMTPMailer {
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		port = 465
	}
	// gomail enables implicit TLS automatically for port 465.
	d := gomail.NewDialer(cfg.SMTPHost, port, cfg.SMTPUser, cfg.SMTPPass)
	return &SMTPMailer{dialer: d, from: cfg.SMTPUser}
}

// Send addresses all recipients on a single message rather than dialing once
// per recipient.
func (m *SMTPMailer) Send(to []string, subject, htmlBody string) error {
	if len(to) == 0 {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, senderName)
	msg.SetHeader("To", to...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", utils.HTMLToText(htmlBody))
	msg.AddAlternative("text/html", htmlBody)
	return m.dialer.DialAndSend(msg)
}
