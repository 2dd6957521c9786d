package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"crmd/internal/ui"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema",
	Long: `Connects to the configured database and brings its schema up to date.
Serving does this automatically on startup; migrate exists for running it
ahead of time, e.g. in a deployment step.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := openStore(); err != nil {
			return err
		}

		fmt.Println(ui.Success.Render("Migrated ") +
			cfg.Database.Driver + " database " + ui.Muted.Render(cfg.Database.DSN))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
