package app

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/termgrid/table"
	"github.com/blackwell-systems/termgrid/textwidth"
)

var widthCmd = &cobra.Command{
	Use:   "width <string>...",
	Short: "Show the terminal display width of strings",
	Long: `Measure how many terminal columns each argument occupies. Emoji
sequences, CJK text, combining marks, and embedded ANSI escapes are all
accounted for, which makes this handy for debugging misaligned output.`,
	Example: `  termgrid width "héllo" "日本語" "👨‍👩‍👧"
  termgrid width "$(printf '\033[31mred\033[0m')"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		headers := []table.Cell{
			{Value: "Input"},
			{Value: "Bytes"},
			{Value: "Width"},
		}
		rows := make([][]table.Cell, len(args))
		for i, arg := range args {
			rows[i] = []table.Cell{
				{Value: arg},
				{Value: strconv.Itoa(len(arg)), Align: table.AlignRight},
				{Value: strconv.Itoa(textwidth.String(arg)), Align: table.AlignRight},
			}
		}

		opts, err := tableOptions()
		if err != nil {
			return err
		}
		out, err := table.Render(headers, rows, opts)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(widthCmd)
}
