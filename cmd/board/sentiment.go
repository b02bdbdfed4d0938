package main

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"MarketBoard/internal/dashboard"
)

type sentimentCmd struct {
	period string
}

func (*sentimentCmd) Name() string     { return "sentiment" }
func (*sentimentCmd) Synopsis() string { return "display the fear/greed gauge and history" }
func (*sentimentCmd) Usage() string {
	return `board sentiment [-period 1M|3M|6M|ALL]

  Displays the fear/greed gauge and the windowed sentiment history sparkline.
`
}

func (c *sentimentCmd) SetFlags(f *flag.FlagSet) {
	addPeriodFlag(f, &c.period)
}

func (c *sentimentCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runPage(ctx, c.period, (*dashboard.Board).Sentiment)
}
