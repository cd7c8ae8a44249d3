package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JoshuaPost/TP-Dashboard/internal/badge"
)

// BadgesCommand creates the badges command: the derived badge codes per
// jurisdiction, followed by the legend.
func BadgesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "badges [review.md]",
		Short: "Show the status badges derived for each jurisdiction",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(sourceArg(app, args))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, rec := range records {
				codes := badge.For(rec)
				if len(codes) == 0 {
					fmt.Fprintf(out, "%-24s —\n", rec.Name)
					continue
				}
				fmt.Fprintf(out, "%-24s %s\n", rec.Name, strings.Join(codes, " "))
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Legend:")
			for _, code := range badge.Codes() {
				meaning, err := badge.Resolve(code)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-4s %s\n", code, meaning)
			}
			return nil
		},
	}
}
