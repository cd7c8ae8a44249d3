// Package cli wires the tpdash command surface: parsing and rewriting the
// review document, importing the workbook export, and small listings over
// the parsed records.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JoshuaPost/TP-Dashboard/internal/config"
	"github.com/JoshuaPost/TP-Dashboard/internal/logging"
)

// App holds the state shared by all commands, loaded by the root
// PersistentPreRunE before any command runs.
type App struct {
	Config *config.Config
	Log    *zap.Logger
}

// NewRootCommand builds the tpdash command tree.
func NewRootCommand() *cobra.Command {
	app := &App{}

	var (
		cfgPath string
		verbose bool
	)

	root := &cobra.Command{
		Use:   "tpdash",
		Short: "Toolkit for the TP compliance review dataset",
		Long: `tpdash converts the TP compliance review markdown convention to and from
structured jurisdiction records.

It parses review documents into records, rewrites them in canonical form,
imports the requirements workbook's CSV export, and provides small listings
(deadlines, badges, column mapping) over the parsed records. The records it
emits feed the downstream dashboard and slide-deck generators.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if verbose {
				cfg.LogLevel = "debug"
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return err
			}
			app.Config = cfg
			app.Log = logger
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgPath, "config", config.DefaultPath, "path to the tpdash config file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		ParseCommand(app),
		FmtCommand(app),
		ShowCommand(app),
		ImportCommand(app),
		DeadlinesCommand(app),
		BadgesCommand(app),
		ColumnsCommand(app),
	)
	return root
}
