package cli

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pablasso/tudu/internal/config"
	"github.com/spf13/cobra"
)

var deinitForce bool

var deinitCmd = &cobra.Command{
	Use:   "deinit",
	Short: "Remove the tudu config directory",
	Long:  "Removes ~/.tudu and its config file. Tasks files are kept.",
	RunE:  runDeinit,
}

func init() {
	deinitCmd.Flags().BoolVar(&deinitForce, "force", false, "Skip confirmation prompt")
}

func runDeinit(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(path)

	// Check if initialized
	info, err := os.Stat(configDir)
	if os.IsNotExist(err) {
		return fmt.Errorf("tudu is not initialized")
	}
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", configDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s exists but is not a directory", configDir)
	}

	// Show confirmation unless --force
	if !deinitForce {
		fmt.Printf("This will delete %s. Tasks files are kept. Continue? [y/N] ", configDir)

		reader := bufio.NewReader(os.Stdin)
		response, _ := reader.ReadString('\n')
		response = strings.TrimSpace(strings.ToLower(response))

		if response != "y" && response != "yes" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.RemoveAll(configDir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", configDir, err)
	}

	fmt.Println("tudu config has been removed. Tasks files were kept.")
	return nil
}
