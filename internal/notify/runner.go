package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// Runner composes a task from a fresh snapshot and mails the result.
type Runner struct {
	sources Sources
	mailer  Mailer
	from    string
	loc     *time.Location
	archive Archive
	now     func() time.Time
	log     logrus.FieldLogger
}

func NewRunner(sources Sources, mailer Mailer, from string, loc *time.Location, log logrus.FieldLogger) *Runner {
	if loc == nil {
		loc = time.UTC
	}
	return &Runner{sources: sources, mailer: mailer, from: from, loc: loc, now: time.Now, log: log}
}

// WithArchive sets where task files such as database backups are written.
func (r *Runner) WithArchive(a Archive) *Runner {
	r.archive = a
	return r
}

// Run returns the job result text. One failed recipient does not fail the
// run; it is logged and counted in the result.
func (r *Runner) Run(ctx context.Context, t Task, args json.RawMessage) (string, error) {
	snap, err := r.sources.Load(ctx)
	if err != nil {
		return "", err
	}
	out, err := t.Compose(Input{Snap: snap, Now: r.now().In(r.loc), Args: args})
	if err != nil {
		return "", err
	}
	if len(out.Files) > 0 {
		if r.archive == nil {
			return "", ErrNoArchive
		}
		for _, f := range out.Files {
			if err := r.archive.Write(ctx, f.Name, f.Data); err != nil {
				return "", fmt.Errorf("store %s: %w", f.Name, err)
			}
			r.log.WithFields(logrus.Fields{"task": t.Name, "file": f.Name}).Info("file archived")
		}
	}
	if len(out.Messages) == 0 && out.Note != "" {
		return out.Note, nil
	}

	sent, failed := 0, 0
	for _, m := range out.Messages {
		entry := r.log.WithFields(logrus.Fields{"task": t.Name, "recipient": m.To})
		if err := r.mailer.Send(ctx, Email{From: r.from, To: m.To, Subject: m.Subject, Body: m.Body}); err != nil {
			failed++
			entry.WithError(err).Warn("send failed")
			continue
		}
		sent++
		entry.Debug("email sent")
	}
	if failed > 0 {
		return fmt.Sprintf("sent %d emails, %d failed", sent, failed), nil
	}
	return fmt.Sprintf("sent %d emails", sent), nil
}
