package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/model"
	"MarketBoard/internal/recorder"
)

// Scheduler drives watch mode: on each cron tick it collects a fresh
// snapshot, hands it to the render callback, and archives the headline
// rows. A failing tick logs and waits for the next one.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Recorder  recorder.Recorder
	Render    func(*model.Snapshot)
	Symbols   []string
	Ctx       context.Context
}

func NewScheduler(ctx context.Context, col *collector.Collector, rec recorder.Recorder, symbols []string, render func(*model.Snapshot)) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Recorder:  rec,
		Render:    render,
		Symbols:   symbols,
		Ctx:       ctx,
	}
}

// RegisterRefresh registers the refresh task under the given cron spec.
func (s *Scheduler) RegisterRefresh(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
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

// RunNow executes the refresh task immediately (first paint on startup).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] refreshing board")
	snap := s.Collector.Collect(s.Ctx)
	s.Render(snap)

	if err := s.Recorder.RecordRefresh(recorder.FromSnapshot(snap, s.Symbols)); err != nil {
		log.Printf("[ERROR] record refresh: %v", err)
	}
}
