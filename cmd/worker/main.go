package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/sanaresoma/sanaresoma-backend/internal/bootstrap"
	"github.com/sanaresoma/sanaresoma-backend/internal/notify"
)

// The worker consumes queued notification tasks and fires the periodic ones.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rt, err := bootstrap.Start(ctx, "sanaresoma-worker")
	if err != nil {
		logrus.WithError(err).Fatal("startup failed")
	}
	defer rt.Close()

	notifier, err := rt.Notifier(ctx)
	if err != nil {
		rt.Log.WithError(err).Fatal("notification setup failed")
	}
	defer notifier.Close()

	g, ctx := errgroup.WithContext(ctx)
	if notifier.Conn != nil {
		consumer := notify.NewConsumer(notifier.Executor, rt.Log)
		g.Go(func() error { return consumer.Run(ctx, notifier.Conn) })
	}
	if rt.Config.Scheduler.Enabled {
		scheduler := notify.NewScheduler(notifier.Registry.Periodic(), notifier.Service, rt.Location, rt.Log)
		g.Go(func() error { return scheduler.Run(ctx) })
	}

	rt.Log.WithFields(logrus.Fields{
		"queue":     notifier.Conn != nil,
		"scheduler": rt.Config.Scheduler.Enabled,
	}).Info("worker started")
	if err := g.Wait(); err != nil {
		rt.Log.WithError(err).Error("worker stopped")
	}
}
