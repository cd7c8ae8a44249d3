package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JoshuaPost/TP-Dashboard/internal/review"
)

// FmtCommand creates the fmt command: parse a review document and rewrite
// it in the canonical convention (section order, bold labels, one group
// heading per group run). Re-parsing the output yields the same records.
func FmtCommand(app *App) *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "fmt <review.md>",
		Short: "Rewrite a review document in canonical form",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := loadRecords(args[0])
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := review.Write(&buf, records, review.WriteOptions{}); err != nil {
				return err
			}

			if !write {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(args[0], buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("failed to rewrite %s: %w", args[0], err)
			}
			app.Log.Info("rewrote review document",
				zap.String("path", args[0]),
				zap.Int("records", len(records)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "rewrite the file in place instead of printing")
	return cmd
}
