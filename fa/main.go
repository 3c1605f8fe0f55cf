package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/nicolai5965/finassist"
	"github.com/nicolai5965/finassist/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Complete returns
// immediately when not invoked by a shell completion hook.
func completion() {
	tickerFlags := map[string]complete.Predictor{"t": predict.Something}
	c := &complete.Command{
		Sub: map[string]*complete.Command{
			"dashboard": {Flags: tickerFlags},
			"analyze":   {Flags: tickerFlags},
			"company":   {Flags: tickerFlags},
			"hours":     {Flags: tickerFlags},
			"watch":     {Flags: tickerFlags},
			"trade":     {Flags: tickerFlags},
			"trades":    {},
			"stats":     {},
			"kpi": {Flags: map[string]complete.Predictor{
				"view":   predict.Set(finassist.ViewNames()),
				"add":    predict.Set(finassist.KnownGroups()),
				"remove": predict.Set(finassist.KnownGroups()),
			}},
			"health": {},
			"assist": {Flags: tickerFlags},
			"topic":  {},
		},
	}
	c.Complete("fa")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "misc")
	commander.Register(commander.FlagsCommand(), "misc")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
