package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	commander.Register(&overviewCmd{}, "boards")
	commander.Register(&sectorsCmd{}, "boards")
	commander.Register(&fundsCmd{}, "boards")
	commander.Register(&ratesCmd{}, "boards")
	commander.Register(&sentimentCmd{}, "boards")
	commander.Register(&chartCmd{}, "charts")
	commander.Register(&exportCmd{}, "charts")
	commander.Register(&briefingCmd{}, "reports")
	commander.Register(&watchCmd{}, "daemon")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
