// ABOUTME: MCP subcommand for running the wordbook MCP server
// ABOUTME: Loads both JSON files before serving, then runs over stdio
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harper/wordbook/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the wordbook MCP server",
	Long:  `Start the Model Context Protocol server for AI assistants to manage your vocabulary over stdio.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		logger.Info("starting MCP server", zap.String("data_dir", a.DataDir()), zap.String("version", mcp.Version))

		server := mcp.NewServer(a)
		return server.Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
