package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/termgrid/table"
)

var flagBarWidth int

var barCmd = &cobra.Command{
	Use:   "bar <current> <total>",
	Short: "Render a progress bar",
	Example: `  termgrid bar 3 10
  termgrid bar 45 100 --width 40`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid current value %q", args[0])
		}
		total, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid total value %q", args[1])
		}

		width := cfg.Bar.Width
		if flagBarWidth > 0 {
			width = flagBarWidth
		}

		fmt.Fprintln(cmd.OutOrStdout(), table.ProgressBar(current, total, width))
		return nil
	},
}

func init() {
	barCmd.Flags().IntVar(&flagBarWidth, "width", 0, "Bar width in cells (default from config)")
	rootCmd.AddCommand(barCmd)
}
