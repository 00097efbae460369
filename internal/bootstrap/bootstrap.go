// Package bootstrap holds the start-up wiring shared by the API and the
// worker binaries.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sanaresoma/sanaresoma-backend/internal/config"
	"github.com/sanaresoma/sanaresoma-backend/internal/database"
	"github.com/sanaresoma/sanaresoma-backend/internal/logging"
	"github.com/sanaresoma/sanaresoma-backend/internal/notify"
	"github.com/sanaresoma/sanaresoma-backend/internal/store"
)

type Runtime struct {
	Config   config.Config
	Log      *logrus.Logger
	Repos    store.Repositories
	Location *time.Location
	db       *sql.DB
}

// Start loads configuration, builds the logger and opens storage. An empty
// database URL selects in-memory repositories.
func Start(ctx context.Context, service string) (*Runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logging.New(cfg.Log, service)

	loc, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		return nil, fmt.Errorf("scheduler timezone: %w", err)
	}

	rt := &Runtime{Config: cfg, Log: log, Location: loc}
	if cfg.Database.URL == "" {
		log.Warn("DATABASE_URL is not set, using in-memory storage")
		rt.Repos = store.InMemory()
		return rt, nil
	}

	db, err := database.Open(ctx, cfg.Database.URL)
	if err != nil {
		return nil, err
	}
	if err := database.EnsureSchema(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	rt.db = db
	rt.Repos = store.New(db)
	return rt, nil
}

func (r *Runtime) Close() {
	if r.db != nil {
		_ = r.db.Close()
	}
}

// Notifier bundles the notification pieces a binary needs.
type Notifier struct {
	Registry *notify.Registry
	Executor *notify.Executor
	Service  *notify.Service
	// Conn is nil when tasks run in-process.
	Conn  *notify.Connection
	local *notify.LocalDispatcher
}

func (r *Runtime) Notifier(ctx context.Context) (*Notifier, error) {
	mailer, err := notify.NewMailer(ctx, r.Config, r.Log)
	if err != nil {
		return nil, err
	}
	registry := notify.DefaultRegistry()
	runner := notify.NewRunner(r.Repos.Sources(), mailer, r.Config.Mail.From, r.Location, r.Log).
		WithArchive(notify.NewDirArchive(r.Config.Backup.Dir))
	n := &Notifier{
		Registry: registry,
		Executor: notify.NewExecutor(registry, runner, r.Repos.Jobs, r.Log),
	}

	var dispatcher notify.Dispatcher
	if url := r.Config.RabbitMQ.URL; url != "" {
		conn := notify.NewConnection(url, r.Config.RabbitMQ.Queue, r.Log)
		if err := conn.Connect(); err != nil {
			return nil, err
		}
		if err := conn.BindQueue(); err != nil {
			conn.Close()
			return nil, err
		}
		n.Conn = conn
		dispatcher = notify.NewQueueDispatcher(conn, r.Log)
	} else {
		r.Log.Info("RABBITMQ_URL is not set, running notification tasks in-process")
		n.local = notify.NewLocalDispatcher(n.Executor)
		dispatcher = n.local
	}
	n.Service = notify.NewService(registry, r.Repos.Jobs, dispatcher)
	return n, nil
}

// Close waits for in-process tasks and closes the queue connection.
func (n *Notifier) Close() {
	if n.local != nil {
		n.local.Wait()
	}
	if n.Conn != nil {
		_ = n.Conn.Close()
	}
}
