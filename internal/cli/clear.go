package cli

import (
	"fmt"

	"github.com/pablasso/tudu/internal/render"
	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all completed tasks",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func runClear(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	removed, err := mgr.Clear()
	if err != nil {
		return err
	}

	if removed == 0 {
		fmt.Println(render.Info("No completed tasks to clear!"))
		return nil
	}

	fmt.Println(render.Success(fmt.Sprintf("Cleared %d completed task(s)", removed)))
	return nil
}
