package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"MarketBoard/internal/dashboard"
)

type overviewCmd struct {
	period string
}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display the headline indices board" }
func (*overviewCmd) Usage() string {
	return `board overview [-period 1M|3M|6M|ALL]

  Displays the index cards, market breadth and sentiment summary.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {
	addPeriodFlag(f, &c.period)
}

func (c *overviewCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runPage(ctx, c.period, (*dashboard.Board).Overview)
}
