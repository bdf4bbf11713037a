// Command masklint is the entrypoint for the masklint dataset linter.
// It layers config from defaults, a YAML file, the environment and CLI
// flags, validates paths, and either runs the codec check (--check) or lints
// every item of the dataset in parallel.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/backmassage/masklint/internal/check"
	"github.com/backmassage/masklint/internal/config"
	"github.com/backmassage/masklint/internal/display"
	"github.com/backmassage/masklint/internal/logging"
	"github.com/backmassage/masklint/internal/pipeline"
)

// version and commit are set at build time via -ldflags (e.g. Makefile).
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

// run wires the root command to a signal-aware context and maps the outcome
// to an exit status.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := &app{cfg: config.DefaultConfig()}
	if err := newRootCmd(a).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "masklint: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'masklint --help' for usage.")
		return 1
	}
	return a.status
}

// app is the state shared between the root command and its run function.
type app struct {
	cfg    config.Config
	flags  *config.FlagValues
	status int
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "masklint [OPTIONS] <input>",
		Short:         "Check a segmentation mask dataset for missing, corrupt or mis-sized files",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.flags = config.BindFlags(cmd.Flags(), &a.cfg)
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		config.PrintUsage(c.OutOrStdout(), version)
	})

	cmd.RunE = func(c *cobra.Command, args []string) error {
		if a.flags.ShowVersion() {
			fmt.Fprintf(c.OutOrStdout(), "masklint %s (%s)\n", version, commit)
			return nil
		}
		if err := loadConfig(c, a.flags, &a.cfg, args); err != nil {
			return err
		}
		a.status = execute(c.Context(), &a.cfg)
		return nil
	}
	return cmd
}

// loadConfig layers the YAML file, the environment (plus .env) and the
// flags the user actually passed onto cfg, then validates the result.
func loadConfig(c *cobra.Command, fv *config.FlagValues, cfg *config.Config, args []string) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	path := fv.ConfigFile()
	if path == "" {
		path = os.Getenv("MASKLINT_CONFIG")
	}
	if path != "" {
		cfg.ConfigFile = path
		if err := config.LoadFile(path, cfg); err != nil {
			return err
		}
	}

	if err := config.ApplyEnv(cfg); err != nil {
		return err
	}
	fv.Apply(c.Flags(), cfg)

	if err := config.SetPositional(cfg, args); err != nil {
		return err
	}
	return cfg.Validate()
}

// execute runs a fully configured invocation and returns the exit status.
func execute(ctx context.Context, cfg *config.Config) int {
	log, err := logging.NewLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "masklint: %v\n", err)
		return 1
	}
	defer log.Close()

	display.PrintBanner(os.Stdout)

	if cfg.CheckOnly {
		if check.RunCheck(log) {
			return 0
		}
		return 1
	}

	if err := check.CheckPaths(cfg); err != nil {
		log.Error("%v", err)
		return 1
	}
	warnNestedImages(cfg, log)

	log.Info("=== masklint v%s ===", version)
	log.Debug("Build commit: %s", commit)
	log.Info("Dataset: %s", cfg.InputDir)
	if cfg.PairingEnabled() {
		log.Info("Images:  %s", cfg.ImagesDir)
	}
	if cfg.ConfigFile != "" {
		log.Debug("Config file: %s", cfg.ConfigFile)
	}

	stats, err := pipeline.Run(ctx, cfg, log)
	log.Debug("Checked %s of %s item(s) in %s (%s): %s warning(s), %s error(s), %s crashed",
		display.FormatCount(stats.Completed),
		display.FormatCount(stats.Total),
		display.FormatElapsed(stats.Elapsed),
		display.FormatRate(stats.Completed, stats.Elapsed),
		display.FormatCount(stats.Warnings),
		display.FormatCount(stats.Errors),
		display.FormatCount(stats.Crashed))
	if err != nil {
		log.Error("%v", err)
		return 1
	}

	if cfg.Strict && stats.Errors > 0 {
		log.Debug("Strict mode: %s error(s) reported", display.FormatCount(stats.Errors))
		return 1
	}
	return 0
}

// warnNestedImages warns when the image directory sits inside the dataset
// root, since it will then be scanned (and reported) as an item too.
func warnNestedImages(cfg *config.Config, log *logging.Logger) {
	if !cfg.PairingEnabled() {
		return
	}
	inputAbs, err := absPath(cfg.InputDir)
	if err != nil {
		return
	}
	imagesAbs, err := absPath(cfg.ImagesDir)
	if err != nil {
		return
	}
	if cfg.ImagesInsideInput(inputAbs, imagesAbs) {
		log.Warn("Image directory is inside the dataset root and will be checked as an item: %s", cfg.ImagesDir)
	}
}

// absPath returns the absolute path with symlinks resolved, for comparing
// the dataset root against the image directory.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
