package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

type Dispatcher interface {
	Dispatch(ctx context.Context, env Envelope) error
}

// LocalDispatcher runs each task in its own goroutine inside this process.
type LocalDispatcher struct {
	exec *Executor
	wg   sync.WaitGroup
}

func NewLocalDispatcher(exec *Executor) *LocalDispatcher {
	return &LocalDispatcher{exec: exec}
}

func (d *LocalDispatcher) Dispatch(ctx context.Context, env Envelope) error {
	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		_ = d.exec.Execute(ctx, env)
	}()
	return nil
}

// Wait blocks until every dispatched task has finished.
func (d *LocalDispatcher) Wait() {
	d.wg.Wait()
}

type Publisher interface {
	Publish(ctx context.Context, body []byte) error
}

// QueueDispatcher hands tasks to the worker through the message queue.
type QueueDispatcher struct {
	pub Publisher
	log logrus.FieldLogger
}

func NewQueueDispatcher(pub Publisher, log logrus.FieldLogger) *QueueDispatcher {
	return &QueueDispatcher{pub: pub, log: log}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, env Envelope) error {
	body, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	if err := d.pub.Publish(ctx, body); err != nil {
		return fmt.Errorf("publish %s: %w", env.Task, err)
	}
	d.log.WithFields(logrus.Fields{"task": env.Task, "taskId": env.TaskID}).Debug("task queued")
	return nil
}
