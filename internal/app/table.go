package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/termgrid/internal/input"
	"github.com/blackwell-systems/termgrid/internal/output"
	"github.com/blackwell-systems/termgrid/table"
)

var (
	flagFormat      string
	flagQuery       string
	flagAlign       string
	flagHeaderColor string
	flagRowColors   []string
	flagPadding     int
)

var tableCmd = &cobra.Command{
	Use:   "table [file...]",
	Short: "Render tabular data as a box-drawn table",
	Long: `Render JSON, YAML, or CSV data as a bordered table.

JSON and YAML accept an array of arrays (first row is the header) or an
array of objects (headers from the first object's keys). CSV uses the
first record as the header. With no files, input is read from stdin.

The --query flag applies a jq filter to JSON/YAML input before shaping,
e.g. --query '.items' to tabulate a nested array.`,
	Example: `  termgrid table scores.json
  cat scores.json | termgrid table --align lcr
  termgrid table api.json --query '.data.rows'
  termgrid table east.csv west.csv`,
	RunE: runTable,
}

func runTable(cmd *cobra.Command, args []string) error {
	opts, err := tableOptions()
	if err != nil {
		return err
	}

	if len(args) == 0 {
		rendered, err := renderTableInput(os.Stdin, "", opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
		return nil
	}

	// Decode and render files concurrently; print in argument order.
	results := make([]string, len(args))
	var g errgroup.Group
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()

			rendered, err := renderTableInput(f, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = rendered
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, rendered := range results {
		if len(args) > 1 {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), output.Rule(cfg.Output.Width))
			}
			fmt.Fprintln(cmd.OutOrStdout(), output.StyleHeading.Render(args[i]))
		}
		fmt.Fprintln(cmd.OutOrStdout(), rendered)
	}
	status.Info("rendered %d table(s)", len(args))
	return nil
}

func renderTableInput(r *os.File, path string, opts table.Options) (string, error) {
	format := input.DetectFormat(input.Format(flagFormat), path)
	td, err := input.DecodeTable(r, format, flagQuery)
	if err != nil {
		return "", err
	}

	headers := make([]table.Cell, len(td.Headers))
	for i, h := range td.Headers {
		headers[i] = table.Cell{Value: h}
	}
	rows := make([][]table.Cell, len(td.Rows))
	for i, row := range td.Rows {
		cells := make([]table.Cell, len(row))
		for j, v := range row {
			cells[j] = table.Cell{Value: v}
		}
		rows[i] = cells
	}

	return table.Render(headers, rows, opts)
}

// tableOptions assembles render options from flags and config. Colors
// drop out entirely when color output is disabled.
func tableOptions() (table.Options, error) {
	opts := table.Options{Padding: cfg.Table.Padding}
	if flagPadding > 0 {
		opts.Padding = flagPadding
	}

	if flagAlign != "" {
		align, err := parseAlign(flagAlign)
		if err != nil {
			return table.Options{}, err
		}
		opts.Align = align
	}

	if !colorEnabled {
		if flagHeaderColor != "" || len(flagRowColors) > 0 {
			status.Warning("color output is disabled; ignoring color flags")
		}
		return opts, nil
	}

	headerColor, err := colorFromFlag(flagHeaderColor, cfg.Table.HeaderColor)
	if err != nil {
		return table.Options{}, fmt.Errorf("--header-color: %w", err)
	}
	opts.HeaderColor = headerColor

	borderColor, err := colorFromFlag("", cfg.Table.BorderColor)
	if err != nil {
		return table.Options{}, err
	}
	opts.BorderColor = borderColor

	for _, spec := range flagRowColors {
		seq, err := parseHSL(spec)
		if err != nil {
			return table.Options{}, fmt.Errorf("--row-color: %w", err)
		}
		opts.RowColors = append(opts.RowColors, seq)
	}

	return opts, nil
}

func init() {
	tableCmd.Flags().StringVar(&flagFormat, "format", "auto", "Input format: auto, json, yaml, csv")
	tableCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "jq filter applied to JSON/YAML input before shaping")
	tableCmd.Flags().StringVar(&flagAlign, "align", "", "Per-column alignment letters, e.g. 'lcr'")
	tableCmd.Flags().StringVar(&flagHeaderColor, "header-color", "", "Header color as 'hue,sat,light' (default from config)")
	tableCmd.Flags().StringSliceVar(&flagRowColors, "row-color", nil, "Row colors as 'hue,sat,light', cycled across rows")
	tableCmd.Flags().IntVar(&flagPadding, "padding", 0, "Extra columns per cell (default from config)")
	rootCmd.AddCommand(tableCmd)
}
