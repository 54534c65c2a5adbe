package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newTasksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the tasks the build defines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, _ := cmd.Flags().GetString("directory")

			container, err := c.app.Tasks(cmd.Context(), dir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for task := range container.Walk() {
				if len(task.Dependencies) == 0 {
					fmt.Fprintf(out, "%s (%s)\n", task.Path, task.Type)
					continue
				}
				deps := make([]string, len(task.Dependencies))
				for i, d := range task.Dependencies {
					deps[i] = d.String()
				}
				fmt.Fprintf(out, "%s (%s) -> %s\n", task.Path, task.Type, strings.Join(deps, ", "))
			}
			return nil
		},
	}
}
