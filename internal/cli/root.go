// Package cli implements the cobra commands of the dyck tool.
//
// Each subcommand (paths, boxes, orientations, check, draw, selftest,
// version) lives in its own file. This file defines the root command, which
// owns the global flags and builds the shared state (configuration, logger,
// box cache, metrics recorder) before any subcommand runs.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/dyck/dyckpath"
	"github.com/katalvlaran/dyck/internal/config"
	"github.com/katalvlaran/dyck/internal/logging"
	"github.com/katalvlaran/dyck/internal/metrics"
)

// Version is the semantic version of the binary, set at build time via
// -ldflags "-X github.com/katalvlaran/dyck/internal/cli.Version=...".
var Version = "dev"

var (
	// ErrTooLong indicates a path length above config.MaxLength.
	ErrTooLong = errors.New("cli: length exceeds max_length")

	// ErrBadDocument indicates a malformed orientation document.
	ErrBadDocument = errors.New("cli: malformed orientation document")

	// ErrRejected indicates that check found the orientation invalid.
	ErrRejected = errors.New("cli: orientation rejected")
)

// rootFlags holds the raw values of the persistent flags. They override the
// configuration file only when set explicitly.
type rootFlags struct {
	configPath string
	format     string
	color      string
	logLevel   string
	metrics    bool
}

// app is the state shared by every subcommand of one invocation.
type app struct {
	flags  rootFlags
	cfg    config.Config
	logger *slog.Logger
	cache  *dyckpath.BoxCache
	rec    *metrics.Recorder
}

// NewRootCommand creates the root cobra command with all subcommands.
func NewRootCommand() *cobra.Command {
	return newApp().rootCommand()
}

func newApp() *app {
	return &app{
		cfg:    config.Default(),
		logger: logging.NewNop(),
	}
}

func (a *app) rootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dyck",
		Short: "Enumerate Dyck paths, their boxes and acyclic orientations",
		Long: `dyck enumerates Dyck paths, lists the boxes beneath a path and the
acyclic orientations of those boxes, validates orientation documents and
draws paths as ascii art.

A path is written as comma separated heights, e.g. "2,1,0" or "(1, 1, 0)".`,

		// Errors are printed once by Execute, in the selected format.
		SilenceUsage:  true,
		SilenceErrors: true,

		Version: Version,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.flags.configPath, "config", "", "Config file (.yaml, .yml, .json, .jsonc)")
	pf.StringVar(&a.flags.format, "format", config.FormatText, "Output format: text, json, yaml")
	pf.StringVar(&a.flags.color, "color", config.ColorAuto, "Color drawings: auto, always, never")
	pf.StringVar(&a.flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	pf.BoolVar(&a.flags.metrics, "metrics", false, "Write prometheus metrics to stderr on exit")

	rootCmd.AddCommand(
		a.pathsCommand(),
		a.boxesCommand(),
		a.orientationsCommand(),
		a.checkCommand(),
		a.drawCommand(),
		a.selftestCommand(),
		a.versionCommand(),
	)

	return rootCmd
}

// setup resolves the configuration and builds the shared state.
//
// Steps:
//  1. Load the config file over the defaults (if --config is set).
//  2. Overlay the flags the user set explicitly.
//  3. Validate, then build logger, cache and recorder.
func (a *app) setup(cmd *cobra.Command) error {
	// 1) file
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}

	// 2) explicit flags win
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.flags.format
	}
	if flags.Changed("color") {
		cfg.Color = a.flags.color
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = a.flags.logLevel
	}
	if flags.Changed("metrics") {
		cfg.Metrics = a.flags.metrics
	}

	// 3) validate and build
	if err := cfg.Validate(); err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logger = logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)
	a.cache = dyckpath.NewBoxCache()
	a.rec = metrics.NewRecorder(a.cache)
	a.logger.Debug("configuration loaded",
		"config", a.flags.configPath,
		"format", cfg.Format,
		"color", cfg.Color,
		"max_length", cfg.MaxLength)

	return nil
}

// checkLength enforces config.MaxLength on a row count.
func (a *app) checkLength(n int) error {
	if n > a.cfg.MaxLength {
		return fmt.Errorf("length %d > max_length %d: %w", n, a.cfg.MaxLength, ErrTooLong)
	}

	return nil
}

// Execute runs the tool with args and returns the process exit code:
// 0 on success, 1 on any error. Errors go to stderr as text, or as a JSON
// object when --format json is in effect. With metrics enabled the
// exposition follows on stderr whether or not the command failed.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	a := newApp()
	rootCmd := a.rootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err != nil {
		a.printError(stderr, err)
	}
	if a.cfg.Metrics {
		if merr := a.rec.WriteText(stderr); merr != nil {
			a.printError(stderr, merr)
			return 1
		}
	}
	if err != nil {
		return 1
	}

	return 0
}

// printError writes err in the configured format.
func (a *app) printError(w io.Writer, err error) {
	if a.cfg.Format == config.FormatJSON {
		errObj := map[string]any{
			"error": map[string]any{
				"message": err.Error(),
			},
		}
		if data, merr := json.MarshalIndent(errObj, "", "  "); merr == nil {
			fmt.Fprintln(w, string(data))
			return
		}
	}
	fmt.Fprintf(w, "Error: %s\n", err)
}

// Main is the entry point used by cmd/dyck.
func Main() {
	os.Exit(Execute(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
