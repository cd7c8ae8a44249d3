package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JoshuaPost/TP-Dashboard/internal/review"
)

// DeadlinesCommand creates the deadlines command: one line per deadline
// item across all records, tagged with its rough calendar quarter.
func DeadlinesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "deadlines [review.md]",
		Short: "List every deadline with its calendar quarter",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(sourceArg(app, args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rec := range records {
				for _, deadline := range rec.Deadlines {
					fmt.Fprintf(out, "%-12s %-24s %s\n", review.Quarter(deadline), rec.Name, deadline)
				}
			}
			return nil
		},
	}
}
