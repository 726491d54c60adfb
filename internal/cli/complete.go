package cli

import (
	"fmt"

	"github.com/pablasso/tudu/internal/render"
	"github.com/spf13/cobra"
)

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a task as complete",
	Args:  cobra.ExactArgs(1),
	RunE:  runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	mgr, err := newManager()
	if err != nil {
		return err
	}

	t, changed, err := mgr.Complete(id)
	if err != nil {
		return err
	}

	if !changed {
		fmt.Println(render.Info(fmt.Sprintf("Task %d is already completed!", t.ID)))
		return nil
	}

	fmt.Println(render.Success(fmt.Sprintf("Task %d marked as complete: %s", t.ID, t.Description)))
	return nil
}
