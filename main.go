package main

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/GiGurra/boa/pkg/boa"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"salestrack/internal"
)

type Params struct {
	Config     string `descr:"Path to config file (default ~/.salestrack/config.yaml)"`
	DataFile   string `descr:"Path to the sales data file"`
	ReportsDir string `descr:"Directory for generated report files"`
	Currency   string `descr:"Display currency code for tables, or 'auto' to detect from locale"`
	Formats    string `descr:"Comma-separated extra report formats (json, xlsx)"`
	Verbose    bool   `descr:"Enable debug logging"`
}

func main() {
	boa.NewCmdT[Params]("salestrack").
		WithShort("Record sales and generate summary reports").
		WithLong("Password-protected sales ledger backed by a local JSON data file, with daily totals and summary report generation in text, JSON and xlsx formats.").
		WithRunFunc(func(params *Params) {
			run(params)
		}).
		Run()
}

func run(params *Params) {
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	if params.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	cfg := resolveConfig(params)

	scanner := bufio.NewScanner(os.Stdin)
	if !Authenticate(scanner, os.Stdout, AdminPassword(), MaxLoginAttempts) {
		return
	}

	app := NewApp(internal.NewStore(cfg.DataFile), cfg)
	app.MenuLoop(scanner, os.Stdout)
}

// resolveConfig merges config file values with command line overrides.
// Flags win over the config file, the config file wins over defaults.
func resolveConfig(params *Params) *internal.Config {
	cfg := internal.DefaultConfig()

	path := params.Config
	if path == "" {
		path = internal.DefaultConfigPath()
	}
	if path != "" {
		loaded, err := internal.LoadConfig(path)
		switch {
		case err == nil:
			cfg = loaded
		case errors.Is(err, fs.ErrNotExist):
			log.Debug().Str("path", path).Msg("no config file, using defaults")
		default:
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}
	}

	if params.DataFile != "" {
		cfg.DataFile = params.DataFile
	}
	if params.ReportsDir != "" {
		cfg.ReportsDir = params.ReportsDir
	}
	if params.Currency != "" {
		cfg.Currency = params.Currency
	}
	if params.Formats != "" {
		cfg.ReportFormats = nil
		for _, format := range strings.Split(params.Formats, ",") {
			cfg.ReportFormats = append(cfg.ReportFormats, strings.TrimSpace(format))
		}
	}
	if cfg.Currency == "auto" {
		cfg.Currency = internal.DetectSystemCurrency()
	}

	return cfg
}

// NewApp wires the store and config behind the interactive menu, with the
// real clock.
func NewApp(store *internal.Store, cfg *internal.Config) *App {
	return &App{
		Store:  store,
		Config: cfg,
		Now:    time.Now,
	}
}
