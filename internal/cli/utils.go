package cli

import (
	"fmt"
	"os"

	"github.com/JoshuaPost/TP-Dashboard/internal/review"
)

// loadRecords parses a review document from disk.
func loadRecords(path string) ([]review.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open review document: %w", err)
	}
	defer f.Close()

	records, err := review.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return records, nil
}

// sourceArg resolves the optional positional review-document argument,
// falling back to the configured source path.
func sourceArg(app *App, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return app.Config.Source
}
