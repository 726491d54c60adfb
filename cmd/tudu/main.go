package main

import (
	"fmt"
	"os"

	"github.com/pablasso/tudu/internal/cli"
	"github.com/pablasso/tudu/internal/config"
	"github.com/pablasso/tudu/internal/task"
	"github.com/pablasso/tudu/internal/tui"
)

func main() {
	// If no args, launch TUI; otherwise route to CLI
	if len(os.Args) == 1 {
		path, err := config.ResolveTasksFile("")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		mgr := task.NewManager(task.NewStore(path))
		if err := tui.Run(mgr); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	} else {
		if err := cli.Execute(); err != nil {
			os.Exit(1)
		}
	}
}
