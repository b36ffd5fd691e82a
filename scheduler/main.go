package scheduler

import (
	"context"
	"fmt"
	"sort"

	"github.com/galaplate/creational/logger"
	"github.com/robfig/cron/v3"
)

// Handler returns the cron spec and the task to run on it.
type Handler interface {
	Handle() (string, func())
}

type Scheduler struct {
	cron     *cron.Cron
	registry map[string]Handler
}

func New() *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		registry: make(map[string]Handler),
	}
}

func (s *Scheduler) Register(name string, handler Handler) {
	s.registry[name] = handler
}

// RunTasks adds every registered handler to the cron table
func (s *Scheduler) RunTasks() error {
	names := make([]string, 0, len(s.registry))
	for name := range s.registry {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		spec, task := s.registry[name].Handle()
		if _, err := s.AddTask(spec, task); err != nil {
			return fmt.Errorf("failed to register scheduler %s: %w", name, err)
		}
		logger.Info("scheduler registered", map[string]any{"name": name, "spec": spec})
	}
	return nil
}

func (s *Scheduler) AddTask(spec string, task func()) (cron.EntryID, error) {
	return s.cron.AddFunc(spec, task)
}

func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

func (s *Scheduler) Stop() context.Context {
	return s.cron.Stop()
}
