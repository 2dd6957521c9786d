package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"crmd/internal/config"
	"crmd/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default crm.toml",
	Long: `Writes a crm.toml with default settings (sqlite database crm.db,
port 8080) to the working directory. Refuses to overwrite an existing
config.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(rootDir, config.ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}

		if err := config.Default().Save(rootDir); err != nil {
			return fmt.Errorf("failed to create config: %w", err)
		}

		fmt.Println(ui.Success.Render("Created ") + path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
