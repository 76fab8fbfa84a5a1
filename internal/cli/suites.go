package cli

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/daryltucker/rook-runner/internal/assets"
	"github.com/daryltucker/rook-runner/internal/output"
)

var suitesCmd = &cobra.Command{
	Use:   "suites",
	Short: "Manage the bundled starter suites",
}

var suitesInstallCmd = &cobra.Command{
	Use:   "install [dir]",
	Short: "Write the embedded starter suites to a directory (default ./suites)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		targetDir := "suites"
		if len(args) == 1 {
			targetDir = args[0]
		}
		output.Logger.Info("Installing starter suites...", "target", targetDir)

		if err := os.MkdirAll(targetDir, 0755); err != nil {
			return WrapExitError(ExitSetupError, fmt.Sprintf("failed to create target directory %s", targetDir), err)
		}

		entries, err := fs.ReadDir(assets.Suites, "suites")
		if err != nil {
			return fmt.Errorf("failed to read embedded suites: %w", err)
		}

		count := 0
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}

			content, err := fs.ReadFile(assets.Suites, "suites/"+entry.Name())
			if err != nil {
				output.Logger.Error("Failed to read embedded file", "file", entry.Name(), "error", err)
				continue
			}

			targetPath := filepath.Join(targetDir, entry.Name())
			if err := os.WriteFile(targetPath, content, 0644); err != nil {
				output.Logger.Error("Failed to write to target", "path", targetPath, "error", err)
				continue
			}

			output.Logger.Info("Installed suite", "name", entry.Name())
			count++
		}

		output.Logger.Info("Installation Complete", "total_files", count)
		return nil
	},
}

func init() {
	suitesCmd.AddCommand(suitesInstallCmd)
	rootCmd.AddCommand(suitesCmd)
}
