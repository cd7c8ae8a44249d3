package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JoshuaPost/TP-Dashboard/internal/csvimport"
	"github.com/JoshuaPost/TP-Dashboard/internal/review"
)

// ImportCommand creates the import command: workbook CSV export in, review
// markdown out. This regenerates the editable review source the parser and
// the downstream generators consume.
func ImportCommand(app *App) *cobra.Command {
	var (
		countries string
		out       string
	)

	cmd := &cobra.Command{
		Use:   "import <data.csv>",
		Short: "Convert a workbook CSV export into a review document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			selection := app.Config.Countries
			if countries != "" {
				selection = splitCSVFlag(countries)
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open CSV export: %w", err)
			}
			defer f.Close()

			importer := csvimport.New(csvimport.Options{
				Columns:   app.Config.Columns,
				Countries: selection,
			})
			records, err := importer.Import(f)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			if len(records) == 0 {
				return fmt.Errorf("no matching rows in %s", args[0])
			}

			runID := uuid.NewString()
			app.Log.Info("imported workbook export",
				zap.String("path", args[0]),
				zap.Int("records", len(records)),
				zap.String("run_id", runID))

			opts := review.WriteOptions{
				Source: filepath.Base(args[0]),
				RunID:  runID,
			}
			if out == "" {
				return review.Write(cmd.OutOrStdout(), records, opts)
			}

			dst, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			defer dst.Close()
			if err := review.Write(dst, records, opts); err != nil {
				return err
			}
			app.Log.Info("wrote review document", zap.String("path", out))
			return nil
		},
	}

	cmd.Flags().StringVar(&countries, "countries", "", "comma-separated jurisdictions to keep (default: all, or the configured selection)")
	cmd.Flags().StringVar(&out, "out", "", "write the review document to a file instead of stdout")
	return cmd
}

func splitCSVFlag(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
