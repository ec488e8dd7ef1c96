// Package scheduler drives the optional watch mode: the configured
// tickers are re-analyzed on a cron schedule, each run independent.
package scheduler

import (
	"fmt"
	"log"

	"github.com/robfig/cron/v3"
)

// RunFunc executes one per-ticker analysis run.
type RunFunc func(ticker string) error

// Scheduler manages the watch-mode cron task.
type Scheduler struct {
	Cron    *cron.Cron
	Tickers []string
	Run     RunFunc
}

// NewScheduler creates a new Scheduler.
func NewScheduler(tickers []string, run RunFunc) *Scheduler {
	return &Scheduler{
		Cron:    cron.New(cron.WithSeconds()),
		Tickers: tickers,
		Run:     run,
	}
}

// Register adds the watch task under the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.task); err != nil {
		return fmt.Errorf("register watch task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the watch task immediately.
func (s *Scheduler) RunNow() {
	s.task()
}

// task runs every ticker; one ticker's failure never touches its siblings.
func (s *Scheduler) task() {
	log.Printf("[INFO] running scheduled analysis for %d tickers", len(s.Tickers))
	for _, ticker := range s.Tickers {
		if err := s.Run(ticker); err != nil {
			log.Printf("[ERROR] scheduled run for %s: %v", ticker, err)
		}
	}
}
