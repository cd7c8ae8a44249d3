package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JoshuaPost/TP-Dashboard/internal/store"
)

// ParseCommand creates the parse command: review markdown in, record JSON
// out. This is the feed for the downstream generators.
func ParseCommand(app *App) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "parse <review.md>",
		Short: "Parse a review document and emit its records as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(args[0])
			if err != nil {
				return err
			}
			st := store.Load(records)
			app.Log.Info("parsed review document",
				zap.String("path", args[0]),
				zap.Int("records", st.Len()))

			data, err := json.MarshalIndent(st.All(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode records: %w", err)
			}
			data = append(data, '\n')

			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			app.Log.Info("wrote records", zap.String("path", out))
			return nil
		},
	}

	cmd.Flags().StringVar(&out, "out", "", "write JSON to a file instead of stdout")
	return cmd
}
