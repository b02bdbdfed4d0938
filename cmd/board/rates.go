package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"MarketBoard/internal/dashboard"
)

type ratesCmd struct{}

func (*ratesCmd) Name() string     { return "rates" }
func (*ratesCmd) Synopsis() string { return "display the HIBOR rates card" }
func (*ratesCmd) Usage() string {
	return `board rates

  Displays the latest HIBOR tenor rates.
`
}

func (*ratesCmd) SetFlags(_ *flag.FlagSet) {}

func (c *ratesCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runPage(ctx, "", (*dashboard.Board).Rates)
}
