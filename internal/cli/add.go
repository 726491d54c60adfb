package cli

import (
	"fmt"
	"strings"

	"github.com/pablasso/tudu/internal/render"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a new task",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	t, err := mgr.Add(strings.Join(args, " "))
	if err != nil {
		return err
	}

	fmt.Println(render.Success(fmt.Sprintf("Task added: %s", t.Description)))
	return nil
}
