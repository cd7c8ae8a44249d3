package cli

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/JoshuaPost/TP-Dashboard/internal/review"
	"github.com/JoshuaPost/TP-Dashboard/internal/store"
)

// ShowCommand creates the show command: render one jurisdiction's section
// to the terminal.
func ShowCommand(app *App) *cobra.Command {
	var source string

	cmd := &cobra.Command{
		Use:   "show <entity>",
		Short: "Render one jurisdiction's compliance profile in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := source
			if path == "" {
				path = app.Config.Source
			}
			records, err := loadRecords(path)
			if err != nil {
				return err
			}

			rec, err := store.Load(records).ByName(args[0])
			if errors.Is(err, store.ErrNotFound) {
				return fmt.Errorf("entity %q not found in %s", args[0], path)
			}
			if err != nil {
				return err
			}

			var buf bytes.Buffer
			if err := review.WriteRecord(&buf, rec); err != nil {
				return err
			}

			renderer, err := newRenderer(app)
			if err != nil {
				return fmt.Errorf("failed to create renderer: %w", err)
			}
			rendered, err := renderer.Render(buf.String())
			if err != nil {
				return fmt.Errorf("failed to render %q: %w", rec.Name, err)
			}
			fmt.Fprint(cmd.OutOrStdout(), rendered)
			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "review document to read (defaults to the configured source)")
	return cmd
}

func newRenderer(app *App) (*glamour.TermRenderer, error) {
	wrap := app.Config.Render.WordWrap
	if wrap <= 0 {
		wrap = 80
	}
	if style := app.Config.Render.Style; style != "" && style != "auto" {
		return glamour.NewTermRenderer(
			glamour.WithStylePath(style),
			glamour.WithWordWrap(wrap),
		)
	}
	return glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
}
