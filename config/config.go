// Package config reads runtime settings from the environment, optionally
// seeded from a .env file, and builds the process logger.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/nathoo/hookline/engine"
	"github.com/nathoo/hookline/engine/matcher"
)

// Config holds every environment-driven setting.
type Config struct {
	WordsPath   string
	ContentDir  string
	Seed        int64
	Damage      int
	MissPenalty int
	MissPolicy  matcher.MissPolicy
	LogLevel    zerolog.Level
	LogFile     string
}

// Load reads .env (if present) and then the environment. A .env file never
// overrides variables already set.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function.
func FromEnv(getenv func(string) string) (Config, error) {
	get := func(k, def string) string {
		if v := strings.TrimSpace(getenv(k)); v != "" {
			return v
		}
		return def
	}

	cfg := Config{
		WordsPath:  get("HOOKLINE_WORDS", "words.csv"),
		ContentDir: get("HOOKLINE_CONTENT", ""),
		LogFile:    get("HOOKLINE_LOG_FILE", ""),
	}

	var err error
	if cfg.Seed, err = strconv.ParseInt(get("HOOKLINE_SEED", "0"), 10, 64); err != nil {
		return cfg, fmt.Errorf("HOOKLINE_SEED: %w", err)
	}
	if cfg.Damage, err = positive(get("HOOKLINE_DAMAGE", strconv.Itoa(engine.DefaultDamage))); err != nil {
		return cfg, fmt.Errorf("HOOKLINE_DAMAGE: %w", err)
	}
	if cfg.MissPenalty, err = positive(get("HOOKLINE_MISS_PENALTY", strconv.Itoa(engine.DefaultMissPenalty))); err != nil {
		return cfg, fmt.Errorf("HOOKLINE_MISS_PENALTY: %w", err)
	}

	switch p := strings.ToLower(get("HOOKLINE_MISS_POLICY", "keep")); p {
	case "keep":
		cfg.MissPolicy = matcher.KeepOnMiss
	case "reset":
		cfg.MissPolicy = matcher.ResetOnMiss
	default:
		return cfg, fmt.Errorf("HOOKLINE_MISS_POLICY: unknown policy %q (want keep or reset)", p)
	}

	if cfg.LogLevel, err = zerolog.ParseLevel(strings.ToLower(get("LOG_LEVEL", "info"))); err != nil {
		return cfg, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

func positive(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if n < 1 {
		return 0, fmt.Errorf("%d must be at least 1", n)
	}
	return n, nil
}

// Logger builds the process logger. With a log file configured it appends
// JSON lines there. Otherwise plain mode writes to stderr through a console
// writer and the full-screen UI discards logs so they never corrupt the
// screen. The returned closer releases the file, if any.
func (c Config) Logger(plain bool, stderr io.Writer) (zerolog.Logger, io.Closer, error) {
	var w io.Writer
	var closer io.Closer = io.NopCloser(nil)

	switch {
	case c.LogFile != "":
		f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, fmt.Errorf("opening log file: %w", err)
		}
		w, closer = f, f
	case plain:
		w = zerolog.ConsoleWriter{Out: stderr, NoColor: true}
	default:
		w = io.Discard
	}

	log := zerolog.New(w).Level(c.LogLevel).With().Timestamp().Logger()
	return log, closer, nil
}
