// ABOUTME: Paths command showing where wordbook keeps its files
// ABOUTME: Useful for backups and for pointing a GUI at the same data directory
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/wordbook/internal/config"
	"github.com/harper/wordbook/internal/store"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show data and config file locations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		configPath := configPathFlag
		if configPath == "" {
			configPath = config.DefaultConfigPath()
		}

		files := store.NewFiles(cfg.DataDir)
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config: %s\n", configPath)
		fmt.Fprintf(out, "Data:   %s\n", files.DataDir())
		fmt.Fprintf(out, "Words:  %s\n", files.Path(store.WordsFile))
		fmt.Fprintf(out, "Dates:  %s\n", files.Path(store.DatesFile))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}
