// Package notify sends the admin notification and guest confirmation emails
// triggered by a stored RSVP. Dispatch is fire-and-forget: it never blocks
// the submission response and failures are only logged.
package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/elsmrh/sami-yaya/internal/models"
	"github.com/elsmrh/sami-yaya/pkg/logger"
	"github.com/elsmrh/sami-yaya/pkg/mail"
	"github.com/elsmrh/sami-yaya/pkg/metrics"
)

const sendTimeout = 15 * time.Second

// Config carries the addresses used when composing notifications.
type Config struct {
	From       string
	AdminEmail string
}

// Notifier dispatches RSVP emails through a Mailer. A nil Notifier or a nil
// mailer silently skips every send, matching the behaviour when no email
// provider is configured.
type Notifier struct {
	mailer mail.Mailer
	cfg    Config
	log    *zap.Logger

	wg sync.WaitGroup
}

// NewNotifier builds a notifier over the given mailer.
func NewNotifier(mailer mail.Mailer, cfg Config) *Notifier {
	return &Notifier{
		mailer: mailer,
		cfg:    cfg,
		log:    logger.WithModule("notify"),
	}
}

// Dispatch queues the admin notification and guest confirmation for the
// record in a detached goroutine and returns immediately.
func (n *Notifier) Dispatch(record models.Rsvp) {
	if n == nil || n.mailer == nil {
		return
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		defer cancel()

		n.send(ctx, "admin", n.adminMessage(record))
		n.send(ctx, "guest", n.guestMessage(record))
	}()
}

// Wait blocks until every queued send has finished. Used on shutdown and in
// tests; regular request handling never calls it.
func (n *Notifier) Wait() {
	if n == nil {
		return
	}
	n.wg.Wait()
}

func (n *Notifier) send(ctx context.Context, kind string, msg *mail.Message) {
	if msg == nil {
		return
	}

	if err := n.mailer.Send(ctx, *msg); err != nil {
		metrics.NotificationSends.WithLabelValues(kind, "failure").Inc()
		n.log.Warn("notification send failed",
			zap.String("kind", kind),
			zap.Error(err),
		)
		return
	}

	metrics.NotificationSends.WithLabelValues(kind, "success").Inc()
	n.log.Info("notification sent", zap.String("kind", kind))
}

func (n *Notifier) adminMessage(record models.Rsvp) *mail.Message {
	if strings.TrimSpace(n.cfg.AdminEmail) == "" {
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Nouvelle réponse RSVP\n\n")
	fmt.Fprintf(&body, "Nom : %s\n", record.Name)
	fmt.Fprintf(&body, "Email : %s\n", record.Email)
	if record.Attending() {
		fmt.Fprintf(&body, "Présence : Oui, sera présent(e)\n")
		fmt.Fprintf(&body, "Adultes : %d\n", record.Guests)
		fmt.Fprintf(&body, "Enfants : %d\n", record.Children)
		if record.DietaryRestrictions != "" {
			fmt.Fprintf(&body, "Régimes : %s\n", record.DietaryRestrictions)
		}
	} else {
		fmt.Fprintf(&body, "Présence : Ne pourra pas venir\n")
	}
	if record.Message != "" {
		fmt.Fprintf(&body, "\nMessage : %q\n", record.Message)
	}
	fmt.Fprintf(&body, "\nRéponse reçue le %s\n", record.CreatedAt.Format("02/01/2006 15:04"))

	return &mail.Message{
		From:    n.cfg.From,
		To:      []string{n.cfg.AdminEmail},
		Subject: fmt.Sprintf("Nouvelle réponse RSVP — %s", record.Name),
		Body:    body.String(),
	}
}

func (n *Notifier) guestMessage(record models.Rsvp) *mail.Message {
	if strings.TrimSpace(record.Email) == "" {
		return nil
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Cher(e) %s,\n\n", record.Name)
	if record.Attending() {
		fmt.Fprintf(&body, "Merci ! Nous sommes ravis de vous compter parmi nous.\n")
		fmt.Fprintf(&body, "%d adulte(s)", record.Guests)
		if record.Children > 0 {
			fmt.Fprintf(&body, " et %d enfant(s)", record.Children)
		}
		fmt.Fprintf(&body, " — noté !\n")
	} else {
		fmt.Fprintf(&body, "Nous avons bien noté votre absence. Vous nous manquerez !\n")
	}
	fmt.Fprintf(&body, "\nAvec tout notre amour,\nSami & Prescillia\n")

	return &mail.Message{
		From:    n.cfg.From,
		To:      []string{record.Email},
		Subject: "Confirmation — Mariage de Sami & Prescillia",
		Body:    body.String(),
	}
}
