package services

import (
	"fmt"
	"html"

	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/models"
)

// Notifier fans a publish announcement out to the subscriber list.
type Notifier struct {
	db     *gorm.DB
	mailer Mailer
}

func NewNotifier(db *gorm.DB, mailer Mailer) *Notifier {
	return &Notifier{db: db, mailer: mailer}
}

// NotifySubscribers sends one email, addressed to every subscriber, linking
// the new post. A failure here never affects the post itself; callers run
// this after the write has committed.
func (n *Notifier) NotifySubscribers(title, link string) error {
	var emails []string
	if err := n.db.Model(&models.Subscriber{}).Pluck("email", &emails).Error; err != nil {
		return err
	}
	if len(emails) == 0 {
		return nil
	}

	subject := "📰 New Blog Published!"
	body := fmt.Sprintf(`
		<h2>%s</h2>
		<p>A new blog has been published on our site. Click below to read it:</p>
		<p><a href="%s" target="_blank">%s</a></p>
		<p>Thanks for subscribing!</p>
	`, html.EscapeString(title), link, link)

	return n.mailer.Send(emails, subject, body)
}
