package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pablasso/tudu/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the tudu config file",
	Long:  "Creates ~/.tudu/config.yaml pre-filled with the default tasks file location.",
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	path, err := config.Path()
	if err != nil {
		return err
	}

	// Check if already initialized
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("tudu is already initialized: %s exists", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(path), err)
	}

	content := fmt.Sprintf("# Path to the tasks file. Relative paths resolve against the working directory.\ntasks_file: %s\n", config.DefaultTasksFile)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	fmt.Println("Initialized tudu config in", path)
	fmt.Println("\nNext steps:")
	fmt.Println("  1. Edit tasks_file to choose where tasks are stored")
	fmt.Println("  2. Run: tudu add \"My first task\"")
	return nil
}
