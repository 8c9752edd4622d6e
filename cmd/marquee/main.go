package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/marquee/internal/app"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		printError(os.Stderr, "%v", err)
		return 1
	}
	return 0
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath  string
	prefsPath   string
	catalogPath string
}

func (g *globalFlags) options() app.Options {
	return app.Options{
		ConfigPath:  g.configPath,
		PrefsPath:   g.prefsPath,
		CatalogPath: g.catalogPath,
	}
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "marquee",
		Short: "Browse the early Hollywood copyright archive",
		Long: `Browse the early Hollywood copyright archive.

Run without a subcommand to open the terminal interface.

Examples:
  marquee
  marquee list --genre drama --year-from 1930
  marquee flagged
  marquee history export --out ~/Desktop`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), g.options())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "config file (default ~/.config/marquee/config.toml)")
	pf.StringVar(&g.prefsPath, "prefs", "", "prefs file (default ~/.config/marquee/prefs.toml)")
	pf.StringVar(&g.catalogPath, "catalog", "", "YAML catalog to load instead of the built-in one")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(
		newListCmd(g),
		newFlaggedCmd(g),
		newHistoryCmd(g),
		newThemesCmd(g),
	)
	return rootCmd
}

func bootstrap(g *globalFlags, exportDir string) (*app.Env, error) {
	opts := g.options()
	opts.ExportDir = exportDir
	env, err := app.Bootstrap(opts)
	if err != nil {
		return nil, fmt.Errorf("starting marquee: %w", err)
	}
	return env, nil
}
