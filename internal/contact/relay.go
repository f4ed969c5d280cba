package contact

import (
	"context"
	"errors"

	"github.com/brightlane-studio/portfolio-backend/internal/metrics"
	"github.com/brightlane-studio/portfolio-backend/internal/platform/logger"
)

// Sender delivers a rendered email.
type Sender interface {
	Configured() bool
	Send(ctx context.Context, email Email) error
}

// Relay validates submissions and forwards them to a fixed recipient.
type Relay struct {
	sender Sender
	from   string
	to     string
}

func NewRelay(sender Sender, from, to string) *Relay {
	return &Relay{sender: sender, from: from, to: to}
}

// Send validates msg before any external call, then forwards it.
func (r *Relay) Send(ctx context.Context, msg Message) error {
	log := logger.For(ctx, "contact.send")
	msg = msg.Normalize()

	if err := msg.Validate(); err != nil {
		metrics.ContactMessagesTotal.WithLabelValues("invalid").Inc()
		return err
	}
	if r.sender == nil || !r.sender.Configured() {
		metrics.ContactMessagesTotal.WithLabelValues("not_configured").Inc()
		log.Error().Msg("email api key missing")
		return ErrNotConfigured
	}

	err := r.sender.Send(ctx, Email{
		From:    r.from,
		To:      []string{r.to},
		ReplyTo: msg.Email,
		Subject: msg.Subject(),
		HTML:    msg.HTML(),
		Text:    msg.Text(),
	})
	if err != nil {
		var uerr *UpstreamError
		if errors.As(err, &uerr) {
			metrics.ContactMessagesTotal.WithLabelValues("rejected").Inc()
			log.Warn().Int("upstream_status", uerr.Status).Str("upstream_body", uerr.Body).Msg("email api rejected message")
		} else {
			metrics.ContactMessagesTotal.WithLabelValues("error").Inc()
			log.Error().Err(err).Msg("email send failed")
		}
		return err
	}

	metrics.ContactMessagesTotal.WithLabelValues("sent").Inc()
	log.Info().Str("from", msg.Email).Msg("contact message relayed")
	return nil
}
