package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/forge/internal/app"
	"go.trai.ch/zerr"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [tasks...]",
		Short: "Run the requested tasks, or the build's default tasks",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, _ := cmd.Flags().GetString("directory")
			excluded, _ := cmd.Flags().GetStringArray("exclude")
			configureOnDemand, _ := cmd.Flags().GetBool("configure-on-demand")
			parallelism, _ := cmd.Flags().GetInt("parallelism")
			watch, _ := cmd.Flags().GetBool("watch")
			properties, _ := cmd.Flags().GetStringArray("define")

			systemProperties, err := parseProperties(properties)
			if err != nil {
				return err
			}

			return c.app.Run(cmd.Context(), app.RunOptions{
				Dir:               dir,
				TaskNames:         args,
				ExcludedTaskNames: excluded,
				ConfigureOnDemand: configureOnDemand,
				Parallelism:       parallelism,
				SystemProperties:  systemProperties,
				Watch:             watch,
			})
		},
	}
	cmd.Flags().StringArrayP("exclude", "x", nil, "Exclude a task and its exclusive dependencies")
	cmd.Flags().Bool("configure-on-demand", false, "Defer project evaluation to task selection")
	cmd.Flags().IntP("parallelism", "p", 1, "Maximum number of tasks to run concurrently")
	cmd.Flags().BoolP("watch", "w", false, "Re-run the build when files change")
	cmd.Flags().StringArrayP("define", "D", nil, "Set a system property (name=value)")
	return cmd
}

func parseProperties(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		name, value, found := strings.Cut(pair, "=")
		if !found || name == "" {
			return nil, zerr.With(zerr.New("invalid system property, expected name=value"), "property", pair)
		}
		out[name] = value
	}
	return out, nil
}
