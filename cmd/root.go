package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"crmd/internal/config"
	"crmd/internal/store"
)

var (
	cfg     *config.Config
	rootDir string
)

var rootCmd = &cobra.Command{
	Use:   "crmd",
	Short: "A CRM backend with a GraphQL API",
	Long: `Crmd manages customers, products and orders in a relational database
and exposes them over a GraphQL API. Configuration lives in crm.toml in
the working directory (see 'crmd init').`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The init command writes the config file, so don't require one.
		if cmd.Name() == "init" {
			return nil
		}

		var err error
		cfg, err = config.Load(rootDir)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		return nil
	},
}

// openStore connects to the configured database and migrates the schema.
func openStore() (*store.Store, error) {
	return store.Open(cfg.Database.Driver, cfg.Database.DSN)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootDir, "dir", "C", ".", "Directory containing crm.toml")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
