package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/termgrid/internal/input"
	"github.com/blackwell-systems/termgrid/table"
)

var flagTreeFormat string

var treeCmd = &cobra.Command{
	Use:   "tree [file]",
	Short: "Render a nested document as a connector tree",
	Long: `Render a {name, value, children} document (or an array of them) as a
tree with box-drawing connectors. Input is JSON or YAML, from a file or
stdin.`,
	Example: `  termgrid tree deps.json
  cat layout.yaml | termgrid tree --format yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r := os.Stdin
		path := ""
		if len(args) == 1 {
			path = args[0]
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}

		format := input.DetectFormat(input.Format(flagTreeFormat), path)
		nodes, err := input.DecodeTree(r, format)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), table.RenderTree(nodes))
		return nil
	},
}

func init() {
	treeCmd.Flags().StringVar(&flagTreeFormat, "format", "auto", "Input format: auto, json, yaml")
	rootCmd.AddCommand(treeCmd)
}
