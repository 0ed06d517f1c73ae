package config

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Usage is printed for --help
const Usage = "Usage: minisql [--help] [--quiet]"

// Environment variables consulted when the matching flag is not given
const (
	EnvLogLevel = "MINISQL_LOG_LEVEL"
	EnvSeqURL   = "MINISQL_SEQ_URL"
)

// Config holds the command line configuration of one run
type Config struct {
	Quiet    bool       // suppress headers and rows of PRINT and JOIN
	Help     bool       // print usage and exit
	LogLevel slog.Level // minimum level written to stderr and Seq
	SeqURL   string     // Seq ingestion endpoint, empty to disable
}

// Load parses args (without the program name). getenv may be nil.
func Load(args []string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}

	cfg := &Config{}
	var level string

	fs := flag.NewFlagSet("minisql", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&cfg.Quiet, "quiet", false, "Only print summary lines for PRINT and JOIN")
	fs.BoolVar(&cfg.Quiet, "q", false, "Shorthand for --quiet")
	fs.BoolVar(&cfg.Help, "help", false, "Print usage and exit")
	fs.BoolVar(&cfg.Help, "h", false, "Shorthand for --help")
	fs.StringVar(&level, "log-level", "", "Log level: debug, info, warn or error")
	fs.StringVar(&cfg.SeqURL, "seq-url", "", "Seq server URL for structured logs")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected argument %q", fs.Arg(0))
	}

	if level == "" {
		level = getenv(EnvLogLevel)
	}
	if cfg.SeqURL == "" {
		cfg.SeqURL = getenv(EnvSeqURL)
	}

	cfg.LogLevel = slog.LevelWarn
	if level != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}
	return cfg, nil
}
