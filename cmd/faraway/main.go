package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/faraway/internal/cli"
	"github.com/idilsaglam/faraway/internal/config"
	"github.com/idilsaglam/faraway/internal/confirm"
	"github.com/idilsaglam/faraway/internal/debug"
	"github.com/idilsaglam/faraway/internal/model"
	"github.com/idilsaglam/faraway/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(1)
	}

	// Root flags (apply to every subcommand); defaults come from config.
	seedPath := flag.String("seed", cfg.Seed, "start from a JSON or YAML item list")
	empty := flag.Bool("empty", !cfg.Starter, "start with an empty list")
	sortBy := flag.String("sort", string(cfg.Sort), "initial sort mode: input, description, packed")
	format := flag.String("format", "", "ls output format: json or yaml")
	yes := flag.Bool("yes", false, "do not ask before clearing the list")
	theme := flag.String("theme", cfg.Theme, "color theme: classic, neon, mono")
	noColor := flag.Bool("no-color", false, "disable colors")
	debugFlag := flag.Bool("debug", false, "debug logging to stderr")
	flag.Parse()

	if *debugFlag {
		debug.SetEnabled(true)
	}
	if err := ui.SetTheme(*theme); err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}
	if *noColor {
		ui.SetColorMode(ui.ColorNever)
	}

	mode, err := model.ParseSortMode(*sortBy)
	if err != nil {
		ui.Fail(err.Error())
		os.Exit(2)
	}

	// Hand the remaining args to the CLI runner.
	args := flag.Args()
	if len(args) == 0 {
		cli.PrintHelp(os.Stderr)
		os.Exit(2)
	}

	opt := cli.Options{
		Seed:        *seedPath,
		Starter:     !*empty,
		Sort:        mode,
		MaxQuantity: cfg.MaxQuantity,
		Format:      *format,
	}
	if *yes {
		opt.Confirm = confirm.Always(true)
	}
	debug.Log("main: args=%v seed=%q sort=%s", args, opt.Seed, opt.Sort)

	code := cli.Run(args, opt)
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	os.Exit(code)
}
