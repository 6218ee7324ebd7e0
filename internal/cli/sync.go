// ABOUTME: Sync subcommand for Charm cloud backup of the JSON files
// ABOUTME: Provides status, push, and pull commands (SSH key auth)
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/wordbook/internal/charm"
	"github.com/harper/wordbook/internal/store"
)

var pullForce bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Back up wordbook data with Charm",
	Long: `Back up words.json and date.json securely to the cloud using Charm.

Authentication is automatic via SSH keys - no login required!

Commands:
  status  - Show sync status and Charm user ID
  push    - Upload the local files
  pull    - Replace the local files with the backed-up copies

Examples:
  wordbook sync status
  wordbook sync push
  wordbook sync pull --force`,
}

var syncStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := charm.NewClient(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !c.IsLinked() {
			fmt.Fprintf(out, "Charm:     not linked (server %s)\n", charm.GetCharmHost())
			return nil
		}
		id, err := c.ID()
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Charm ID:  %s\n", id)
		fmt.Fprintf(out, "Server:    %s\n", charm.GetCharmHost())
		fmt.Fprintf(out, "Auto sync: %t\n", c.AutoSync())
		color.New(color.FgGreen).Fprintln(out, "Status:    Connected")

		statuses, err := c.Status()
		if err != nil {
			return err
		}
		for _, st := range statuses {
			if st.BackedUp {
				fmt.Fprintf(out, "  %-10s backed up (%d bytes)\n", st.Name, st.Size)
			} else {
				color.New(color.FgYellow).Fprintf(out, "  %-10s no backup\n", st.Name)
			}
		}
		return nil
	},
}

var syncPushCmd = &cobra.Command{
	Use:   "push",
	Short: "Upload words.json and date.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := charm.NewClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create Charm client: %w", err)
		}

		result, err := c.Push(store.NewFiles(cfg.DataDir))
		if err != nil {
			return err
		}
		if !c.AutoSync() {
			if err := c.Sync(); err != nil {
				return fmt.Errorf("sync failed: %w", err)
			}
		}

		out := cmd.OutOrStdout()
		for _, name := range result.Pushed {
			color.New(color.FgGreen).Fprintf(out, "  ✓ %s\n", name)
		}
		for _, name := range result.Skipped {
			color.New(color.FgYellow).Fprintf(out, "  ! %s not found locally, skipped\n", name)
		}
		return nil
	},
}

var syncPullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Replace local files with the backed-up copies",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !pullForce {
			fmt.Fprintln(out, "This will overwrite your local words.json and date.json.")
			fmt.Fprint(out, "Continue? [y/N]: ")

			reader := bufio.NewReader(os.Stdin)
			confirmation, _ := reader.ReadString('\n')
			confirmation = strings.TrimSpace(strings.ToLower(confirmation))
			if confirmation != "y" && confirmation != "yes" {
				fmt.Fprintln(out, "Aborted.")
				return nil
			}
		}

		c, err := charm.NewClient(cfg)
		if err != nil {
			return fmt.Errorf("failed to create Charm client: %w", err)
		}
		if err := c.Sync(); err != nil {
			return fmt.Errorf("sync failed: %w", err)
		}

		result, err := c.Pull(store.NewFiles(cfg.DataDir))
		if err != nil {
			return err
		}

		for _, name := range result.Restored {
			color.New(color.FgGreen).Fprintf(out, "  ✓ %s restored\n", name)
		}
		for _, name := range result.Missing {
			color.New(color.FgYellow).Fprintf(out, "  ! %s has no backup\n", name)
		}

		// Confirm the restored files load cleanly.
		_, _, logger, err := openApp(cmd)
		if err != nil {
			return err
		}
		_ = logger.Sync()
		return nil
	},
}

func init() {
	syncPullCmd.Flags().BoolVarP(&pullForce, "force", "f", false, "Skip the confirmation prompt")

	syncCmd.AddCommand(syncStatusCmd)
	syncCmd.AddCommand(syncPushCmd)
	syncCmd.AddCommand(syncPullCmd)

	rootCmd.AddCommand(syncCmd)
}
