package cli

import (
	"fmt"

	"github.com/pablasso/tudu/internal/render"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Remove a task",
	Args:  cobra.ExactArgs(1),
	RunE:  runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	mgr, err := newManager()
	if err != nil {
		return err
	}

	t, err := mgr.Remove(id)
	if err != nil {
		return err
	}

	fmt.Println(render.Success(fmt.Sprintf("Task %d removed: %s", t.ID, t.Description)))
	return nil
}
