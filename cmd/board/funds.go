package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"MarketBoard/internal/dashboard"
)

type fundsCmd struct {
	period string
}

func (*fundsCmd) Name() string     { return "funds" }
func (*fundsCmd) Synopsis() string { return "display the money-market fund quote board" }
func (*fundsCmd) Usage() string {
	return `board funds [-period 1M|3M|6M|ALL]

  Displays quotes for the configured money-market funds.
`
}

func (c *fundsCmd) SetFlags(f *flag.FlagSet) {
	addPeriodFlag(f, &c.period)
}

func (c *fundsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runPage(ctx, c.period, (*dashboard.Board).Funds)
}
