package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"MarketBoard/internal/dashboard"
)

type sectorsCmd struct {
	period string
}

func (*sectorsCmd) Name() string     { return "sectors" }
func (*sectorsCmd) Synopsis() string { return "display the sector fund-flow board" }
func (*sectorsCmd) Usage() string {
	return `board sectors [-period 1M|3M|6M|ALL]

  Displays daily signed change bars and windowed cumulative change per sector ETF.
`
}

func (c *sectorsCmd) SetFlags(f *flag.FlagSet) {
	addPeriodFlag(f, &c.period)
}

func (c *sectorsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runPage(ctx, c.period, (*dashboard.Board).Sectors)
}
