package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/config"
	"MarketBoard/internal/dashboard"
	"MarketBoard/internal/feed"
	"MarketBoard/internal/model"
)

// app wires config, feed source and collector for one command invocation.
type app struct {
	cfg       *config.Config
	collector *collector.Collector
}

func configPath() string {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		return v
	}
	return "configs/config.yaml"
}

func newApp() (*app, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	// A local data directory takes precedence over the file host.
	var src feed.Source
	if cfg.Feed.DataDir != "" {
		src = feed.NewFileSource(cfg.Feed.DataDir)
	} else {
		src = feed.NewHTTPSource(cfg.Feed.BaseURL, cfg.Proxy, time.Duration(cfg.Feed.TimeoutSeconds)*time.Second)
	}
	gw := feed.NewGateway(src)
	log.Printf("[INFO] data source: %s", gw.SourceName())

	return &app{cfg: cfg, collector: collector.NewCollector(gw)}, nil
}

// boardOptions resolves the rendering options, with the -period flag
// overriding the configured default.
func (a *app) boardOptions(periodFlag string) dashboard.Options {
	period := a.cfg.Period()
	if periodFlag != "" {
		period = model.ParsePeriod(periodFlag)
	}
	return dashboard.Options{
		Indices:  a.cfg.Board.Indices,
		Thematic: a.cfg.Board.Thematic,
		Sectors:  a.cfg.Board.Sectors,
		Funds:    a.cfg.Board.Funds,
		Period:   period,
		Width:    a.cfg.Board.Width,
	}
}

// allSymbols is the full configured universe, for watch-mode archiving.
func (a *app) allSymbols() []string {
	var symbols []string
	symbols = append(symbols, a.cfg.Board.Indices...)
	symbols = append(symbols, a.cfg.Board.Thematic...)
	symbols = append(symbols, a.cfg.Board.Sectors...)
	symbols = append(symbols, a.cfg.Board.Funds...)
	return symbols
}

// runPage is the shared body of the single-page commands: collect once,
// render one page, print it.
func runPage(ctx context.Context, periodFlag string, render func(*dashboard.Board) string) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	snap := a.collector.Collect(ctx)
	board := dashboard.New(snap, a.boardOptions(periodFlag))
	fmt.Println(render(board))
	return subcommands.ExitSuccess
}

func addPeriodFlag(f *flag.FlagSet, target *string) {
	f.StringVar(target, "period", "", "trailing window: 1M, 3M, 6M or ALL (default from config)")
}
