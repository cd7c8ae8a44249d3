package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoshuaPost/TP-Dashboard/internal/mapping"
)

// ColumnsCommand creates the columns command: the fixed short-key to
// display-name column table.
func ColumnsCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "columns",
		Short: "Print the column mapping table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, short := range mapping.Keys() {
				display, err := mapping.Lookup(short)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-10s %s\n", short, display)
			}
			return nil
		},
	}
}
