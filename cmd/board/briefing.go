package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"MarketBoard/internal/briefing"
)

type briefingCmd struct {
	theme string
}

func (*briefingCmd) Name() string     { return "briefing" }
func (*briefingCmd) Synopsis() string { return "render the markdown morning briefing" }
func (*briefingCmd) Usage() string {
	return `board briefing [-theme dark|light]

  Builds the morning briefing from the latest snapshot and renders it with
  the selected terminal theme.
`
}

func (c *briefingCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.theme, "theme", "", "terminal theme: dark or light (default from config)")
}

func (c *briefingCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	a, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	theme := a.cfg.Board.Theme
	if c.theme != "" {
		if c.theme != "dark" && c.theme != "light" {
			fmt.Fprintf(os.Stderr, "Error: theme must be dark or light, got %q\n", c.theme)
			return subcommands.ExitUsageError
		}
		theme = c.theme
	}

	snap := a.collector.Collect(ctx)
	md := briefing.Markdown(snap, a.cfg.Board.Indices)
	fmt.Print(briefing.Render(md, theme))
	return subcommands.ExitSuccess
}
