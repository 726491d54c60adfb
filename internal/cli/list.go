package cli

import (
	"fmt"

	"github.com/pablasso/tudu/internal/render"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tasks",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	mgr, err := newManager()
	if err != nil {
		return err
	}

	fmt.Println(render.List(mgr.List()))
	return nil
}
