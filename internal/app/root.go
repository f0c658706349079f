// Package app contains the Cobra command tree for termgrid.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/termgrid/internal/config"
	"github.com/blackwell-systems/termgrid/internal/output"
	"github.com/blackwell-systems/termgrid/internal/ui"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagVerbose bool
	flagConfig  string

	cfg *config.Config

	// colorEnabled gates the ANSI colors passed into table rendering.
	colorEnabled bool

	status *ui.UI
)

var rootCmd = &cobra.Command{
	Use:   "termgrid",
	Short: "Unicode-aware tables, trees, and progress bars for the terminal",
	Long: `termgrid renders tabular data as box-drawn terminal tables with correct
column alignment for emoji, CJK text, combining marks, and ANSI-colored
cells. It also renders connector trees and progress bars.

Input comes from JSON, YAML, or CSV files (or stdin); output is plain
text on stdout, ready to pipe or page.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		colorEnabled = cfg.Output.Color &&
			!flagNoColor &&
			os.Getenv("NO_COLOR") == "" &&
			(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))
		output.SetNoColor(!colorEnabled)

		mode := ui.ColorAuto
		if !colorEnabled {
			mode = ui.ColorNever
		}
		status = ui.New(mode, flagVerbose)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// status is nil when the error happened before PersistentPreRunE
		// (flag parse failures and the like).
		if status != nil {
			status.Error("%v", err)
		} else {
			fmt.Fprintln(os.Stderr, "error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	defaultCfg := filepath.Join(config.ConfigDir(), config.DefaultConfigFile)
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: "+defaultCfg+")")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
