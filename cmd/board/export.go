package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"MarketBoard/internal/dashboard"
)

type exportCmd struct {
	period string
	symbol string
	out    string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "emit a windowed cumulative series as chart-point JSON" }
func (*exportCmd) Usage() string {
	return `board export -symbol <symbol> [-period 1M|3M|6M|ALL] [-o <file>]

  Writes the symbol's windowed cumulative-change series as a JSON array of
  {x, y} points (epoch milliseconds, percent). Gap points carry a null y.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	addPeriodFlag(f, &c.period)
	f.StringVar(&c.symbol, "symbol", "", "symbol to export (required)")
	f.StringVar(&c.out, "o", "", "output file (defaults to stdout)")
}

// exportPoint is the wire form: a gap y marshals as null so chart
// consumers draw a hole rather than a zero.
type exportPoint struct {
	X int64    `json:"x"`
	Y *float64 `json:"y"`
}

func (c *exportCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.symbol == "" {
		fmt.Fprintln(os.Stderr, "Error: -symbol is required")
		return subcommands.ExitUsageError
	}
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	snap := a.collector.Collect(ctx)
	board := dashboard.New(snap, a.boardOptions(c.period))
	series := board.CumulativeSeries(c.symbol)
	if len(series) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no data for %s\n", c.symbol)
		return subcommands.ExitFailure
	}

	points := make([]exportPoint, len(series))
	for i, pt := range series {
		points[i] = exportPoint{X: pt.TS}
		if pt.IsPlottable() {
			v := pt.Value
			points[i].Y = &v
		}
	}

	data, err := json.MarshalIndent(points, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: encode series: %v\n", err)
		return subcommands.ExitFailure
	}
	data = append(data, '\n')

	if c.out == "" {
		os.Stdout.Write(data)
		return subcommands.ExitSuccess
	}
	if err := os.WriteFile(c.out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", c.out, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
