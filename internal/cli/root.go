package cli

import (
	"github.com/pablasso/tudu/internal/version"
	"github.com/spf13/cobra"
)

var tasksFile string

var rootCmd = &cobra.Command{
	Use:     "tudu",
	Short:   "A command-line todo list",
	Long:    `Tudu keeps a single todo list in a JSON file. Add tasks, mark them complete, and clear the finished ones.`,
	Version: version.Version,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&tasksFile, "file", "f", "", "path to the tasks file (overrides TUDU_FILE and config)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(clearCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(deinitCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
