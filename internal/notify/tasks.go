package notify

import (
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"
)

var ErrUnknownTask = errors.New("unknown task")

// Input is what a task composes its emails from.
type Input struct {
	Snap *Snapshot
	Now  time.Time
	Args json.RawMessage
}

// Message is an email before the sender address is applied.
type Message struct {
	To      string
	Subject string
	Body    string
}

// File is a document a task asks the runner to store in the archive.
type File struct {
	Name string
	Data []byte
}

// Output carries the composed emails. Note is reported as the job result for
// tasks that send nothing.
type Output struct {
	Messages []Message
	Files    []File
	Note     string
}

type Task struct {
	Name string
	// Schedule is nil for tasks that only run on demand.
	Schedule *Schedule
	compose  func(in Input) (Output, error)
}

func (t Task) Compose(in Input) (Output, error) {
	return t.compose(in)
}

type Registry struct {
	tasks map[string]Task
}

func NewRegistry(tasks ...Task) *Registry {
	r := &Registry{tasks: make(map[string]Task, len(tasks))}
	for _, t := range tasks {
		r.tasks[t.Name] = t
	}
	return r
}

// DefaultRegistry holds every periodic and on-demand task.
func DefaultRegistry() *Registry {
	return NewRegistry(append(periodicTasks(), onDemandTasks()...)...)
}

func (r *Registry) Lookup(name string) (Task, bool) {
	t, ok := r.tasks[name]
	return t, ok
}

// All returns the tasks sorted by name.
func (r *Registry) All() []Task {
	out := make([]Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Task) int { return strings.Compare(a.Name, b.Name) })
	return out
}

func (r *Registry) Periodic() []Task {
	var out []Task
	for _, t := range r.All() {
		if t.Schedule != nil {
			out = append(out, t)
		}
	}
	return out
}
