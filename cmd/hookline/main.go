// Hookline is a typing-duel fishing game: hook a fish, then type the romaji
// of the words it shows before your line runs out.
// Usage: hookline [--version] [--plain] [--script <file>] [--trace] [--lint]
//
//	[--words <csv>] [--content <dir>] [--seed <n>]
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/nathoo/hookline/cli"
	"github.com/nathoo/hookline/config"
	"github.com/nathoo/hookline/engine"
	"github.com/nathoo/hookline/engine/reading"
	"github.com/nathoo/hookline/engine/romaji"
	"github.com/nathoo/hookline/engine/wordbank"
	"github.com/nathoo/hookline/loader"
	"github.com/nathoo/hookline/tui"
	"github.com/nathoo/hookline/types"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const usage = "Usage: hookline [--version] [--plain] [--script <file>] [--trace] [--lint] [--words <csv>] [--content <dir>] [--seed <n>]"

type flags struct {
	plain, trace, lint bool
	script             string
	words, content     string
	seed               string
}

func main() {
	var f flags

	args := os.Args[1:]
	value := func(i *int, name string) string {
		if *i+1 >= len(args) {
			fmt.Fprintf(os.Stderr, "%s requires a value\n", name)
			os.Exit(1)
		}
		*i++
		return args[*i]
	}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--version":
			fmt.Printf("hookline %s (commit %s, built %s)\n", version, commit, date)
			return
		case "--plain":
			f.plain = true
		case "--trace":
			f.trace = true
		case "--lint":
			f.lint = true
		case "--script":
			f.script = value(&i, "--script")
		case "--words":
			f.words = value(&i, "--words")
		case "--content":
			f.content = value(&i, "--content")
		case "--seed":
			f.seed = value(&i, "--seed")
		default:
			fmt.Fprintf(os.Stderr, "unknown argument %q\n%s\n", args[i], usage)
			os.Exit(1)
		}
	}

	os.Exit(run(f))
}

func run(f flags) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in configuration: %v\n", err)
		return 1
	}
	if f.words != "" {
		cfg.WordsPath = f.words
	}
	if f.content != "" {
		cfg.ContentDir = f.content
	}
	if f.seed != "" {
		if cfg.Seed, err = strconv.ParseInt(f.seed, 10, 64); err != nil {
			fmt.Fprintf(os.Stderr, "--seed: %v\n", err)
			return 1
		}
	}

	plain := f.plain || f.script != "" || f.lint || !isTerminal()
	log, closer, err := cfg.Logger(plain, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	bank := loadBank(cfg.WordsPath, log)

	table := romaji.Default()
	var species []types.FishDef
	title, intro := "Hookline", ""

	if cfg.ContentDir != "" {
		content, err := loader.Load(cfg.ContentDir)
		if err != nil {
			log.Error().Err(err).Str("dir", cfg.ContentDir).Msg("failed to load content pack")
			return 1
		}
		for _, w := range content.Warnings {
			log.Warn().Str("dir", cfg.ContentDir).Msg(w)
		}
		if err := content.AddWords(bank); err != nil {
			log.Error().Err(err).Msg("content pack word rejected")
			return 1
		}
		table = content.Table(table)
		species = content.Fish
		if content.Name != "" {
			title = content.Name
		}
		intro = content.Intro
	}

	if bank.Len() == 0 {
		log.Warn().Msg("word bank is empty; every cast will slip the hook")
	}

	linter, err := reading.New(table)
	if err != nil {
		log.Warn().Err(err).Msg("reading linter unavailable")
	}

	if f.lint {
		return lint(linter, bank, log)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	eng := engine.New(bank, table,
		engine.WithRNG(engine.NewRNG(seed)),
		engine.WithLogger(log),
		engine.WithMissPolicy(cfg.MissPolicy),
		engine.WithDamage(cfg.Damage),
		engine.WithMissPenalty(cfg.MissPenalty),
	)
	pond := engine.NewPond(species)
	tally := engine.NewTally()
	eng.Subscribe(tally)

	log.Info().
		Int("words", bank.Len()).
		Ints("levels", bank.Levels()).
		Int("species", len(pond.Species())).
		Int64("seed", seed).
		Msg("session started")

	if plain {
		c := cli.New(eng, pond, tally)
		c.Linter = linter
		c.Variants = table
		c.Intro = intro
		c.Trace = f.trace
		if f.script != "" {
			// Script mode: read the file and echo commands.
			sf, err := os.Open(f.script)
			if err != nil {
				log.Error().Err(err).Msg("opening script")
				return 1
			}
			defer sf.Close()
			c.In = sf
			c.EchoInput = true
		}
		fmt.Printf("%s\n\n", title)
		c.Run()
		return 0
	}

	if err := tui.Run(eng, pond, tally, tui.Options{Title: title, Intro: intro, Linter: linter, Variants: table}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// loadBank reads the CSV word bank. Read errors are logged and play
// continues with whatever words were read.
func loadBank(path string, log zerolog.Logger) *wordbank.Bank {
	bank, err := wordbank.Load(path)
	switch {
	case errors.Is(err, wordbank.ErrMissingSource):
		log.Warn().Err(err).Msg("word bank missing, continuing with no CSV words")
	case err != nil:
		log.Error().Err(err).Str("path", path).Msg("failed to read word bank, continuing with what was read")
	}
	return bank
}

// lint prints every word whose romanization does not spell its reading.
// Returns the process exit code.
func lint(linter *reading.Linter, bank *wordbank.Bank, log zerolog.Logger) int {
	if linter == nil {
		return 1
	}
	words := bank.All()
	issues := linter.Lint(words)
	for _, is := range issues {
		fmt.Println(is.String())
	}
	log.Info().Int("words", len(words)).Int("issues", len(issues)).Msg("lint finished")
	if len(issues) > 0 {
		return 1
	}
	return 0
}

// isTerminal returns true if stdout is a terminal (not piped/redirected).
func isTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
