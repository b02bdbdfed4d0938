package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/subcommands"

	"MarketBoard/internal/dashboard"
	"MarketBoard/internal/model"
	"MarketBoard/internal/recorder"
	"MarketBoard/internal/scheduler"
)

type watchCmd struct {
	period string
	cron   string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "re-render the full board on a cron schedule" }
func (*watchCmd) Usage() string {
	return `board watch [-period 1M|3M|6M|ALL] [-cron <spec>]

  Runs until interrupted, refreshing the snapshot and re-rendering the full
  board on each tick. Headline rows are archived when database.sqlite_path
  is configured.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	addPeriodFlag(f, &c.period)
	f.StringVar(&c.cron, "cron", "", "refresh cron spec with seconds (default from config)")
}

func (c *watchCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var rec recorder.Recorder
	if a.cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(a.cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	opts := a.boardOptions(c.period)
	render := func(snap *model.Snapshot) {
		fmt.Print("\033[2J\033[H")
		fmt.Println(dashboard.New(snap, opts).Full())
	}

	cronSpec := a.cfg.Watch.RefreshCron
	if c.cron != "" {
		cronSpec = c.cron
	}

	sched := scheduler.NewScheduler(ctx, a.collector, rec, a.allSymbols(), render)
	if err := sched.RegisterRefresh(cronSpec); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	sched.Start()
	defer sched.Stop()

	// First paint before the first tick.
	sched.RunNow()

	log.Println("[INFO] watch mode running. Press Ctrl+C to stop.")

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	return subcommands.ExitSuccess
}
