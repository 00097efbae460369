// Package notify composes and delivers the reminder, digest and event emails
// built from the fitness records, and tracks every run as a job.
package notify

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sanaresoma/sanaresoma-backend/internal/config"
)

type Email struct {
	From    string
	To      string
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, e Email) error
}

// LogMailer writes each email to the logger instead of delivering it.
type LogMailer struct {
	log logrus.FieldLogger
}

func NewLogMailer(log logrus.FieldLogger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) Send(_ context.Context, e Email) error {
	m.log.WithFields(logrus.Fields{
		"from":    e.From,
		"to":      e.To,
		"subject": e.Subject,
	}).Info(e.Body)
	return nil
}

// NewMailer picks the driver named by cfg.Driver.
func NewMailer(ctx context.Context, cfg config.Config, log logrus.FieldLogger) (Mailer, error) {
	switch cfg.Mail.Driver {
	case "", "log":
		return NewLogMailer(log), nil
	case "ses":
		return NewSESMailer(ctx, cfg.AWS.Region)
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Mail.Driver)
	}
}
