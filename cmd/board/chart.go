package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"MarketBoard/internal/dashboard"
)

type chartCmd struct {
	period string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "plot cumulative change for one or more symbols" }
func (*chartCmd) Usage() string {
	return `board chart [-period 1M|3M|6M|ALL] <symbol> [<symbol>...]

  Plots each symbol's windowed cumulative-change series as a line chart.
  Without symbols, plots the configured indices.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	addPeriodFlag(f, &c.period)
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	symbols := f.Args()
	if len(symbols) == 0 {
		symbols = a.cfg.Board.Indices
	}

	snap := a.collector.Collect(ctx)
	board := dashboard.New(snap, a.boardOptions(c.period))
	fmt.Println(board.Chart(symbols))
	return subcommands.ExitSuccess
}
