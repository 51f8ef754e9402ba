// Command ltlcheck runs one of the built-in demo scenarios through
// the model checker and prints the verdict.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/openltl/ltlcheck/explain"
	"github.com/openltl/ltlcheck/modelcheck"
	"github.com/openltl/ltlcheck/models"
)

// fileConfig holds defaults loadable from a TOML file via --config,
// overridden by any flag the user sets explicitly on the command line.
type fileConfig struct {
	Model   string `toml:"model"`
	Report  string `toml:"report"`
	Verbose bool   `toml:"verbose"`
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	var out = os.Stderr
	var writer zerolog.ConsoleWriter
	if isatty.IsTerminal(out.Fd()) {
		writer = zerolog.ConsoleWriter{Out: colorable.NewColorable(out), TimeFormat: time.Kitchen}
	} else {
		writer = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen, NoColor: true}
	}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func main() {
	var (
		configPath  = pflag.String("config", "", "optional TOML file supplying defaults for the flags below")
		modelName   = pflag.String("model", "three-cycle", "built-in demo model to check (see --list)")
		reportPath  = pflag.String("report", "", "write a YAML counterexample report to this path when the formula is violated")
		doExplain   = pflag.Bool("explain", false, "narrate any found counterexample via OPENAI_API_KEY")
		verbose     = pflag.Bool("verbose", false, "enable debug logging")
		listModels  = pflag.Bool("list", false, "list built-in demo models and exit")
	)
	pflag.Parse()

	cfg := fileConfig{Model: *modelName, Report: *reportPath, Verbose: *verbose}
	if *configPath != "" {
		if _, err := toml.DecodeFile(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "ltlcheck: reading config %s: %v\n", *configPath, err)
			os.Exit(1)
		}
	}
	if pflag.CommandLine.Changed("model") {
		cfg.Model = *modelName
	}
	if pflag.CommandLine.Changed("report") {
		cfg.Report = *reportPath
	}
	if pflag.CommandLine.Changed("verbose") {
		cfg.Verbose = *verbose
	}

	log := newLogger(cfg.Verbose)

	if *listModels {
		for _, d := range models.All() {
			fmt.Printf("%-18s %s\n", d.Name, d.Description)
		}
		return
	}

	demo, ok := models.Lookup(cfg.Model)
	if !ok {
		fmt.Fprintf(os.Stderr, "ltlcheck: unknown model %q (use --list)\n", cfg.Model)
		os.Exit(1)
	}

	lasso, violated := modelcheck.Check(demo.Reg, demo.Structure, demo.Formula, modelcheck.WithLogger(log))

	if !violated {
		fmt.Printf("%s: K ⊨ %s\n", demo.Name, demo.Formula.String())
		return
	}

	fmt.Printf("%s: K ⊭ %s\n", demo.Name, demo.Formula.String())
	fmt.Printf("  stem: %s\n", formatStates(lasso.Stem))
	fmt.Printf("  loop: %s (repeats)\n", formatStates(lasso.Loop))

	if cfg.Report != "" {
		data, err := lasso.Report()
		if err != nil {
			log.Error().Err(err).Msg("rendering counterexample report")
		} else if err := os.WriteFile(cfg.Report, data, 0o644); err != nil {
			log.Error().Err(err).Str("path", cfg.Report).Msg("writing counterexample report")
		}
	}

	if *doExplain {
		client, err := explain.NewClient()
		if err != nil {
			log.Warn().Err(err).Msg("skipping narration")
			return
		}
		narration, err := client.Narrate(context.Background(), demo.Formula.String(), formatSlice(lasso.Stem), formatSlice(lasso.Loop))
		if err != nil {
			log.Warn().Err(err).Msg("narration failed")
			return
		}
		fmt.Println()
		fmt.Println(narration)
	}
}

func formatStates(states []int) string {
	out := ""
	for i, s := range states {
		if i > 0 {
			out += " -> "
		}
		out += strconv.Itoa(s)
	}
	return out
}

func formatSlice(states []int) []string {
	out := make([]string, len(states))
	for i, s := range states {
		out[i] = strconv.Itoa(s)
	}
	return out
}
