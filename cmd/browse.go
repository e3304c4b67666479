package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/taskgym/internal/browse"
	"github.com/abhisek/taskgym/internal/tasks"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Interactively browse a dataset's samples",
	RunE:  runBrowse,
}

func init() {
	browseCmd.Flags().String("dataset", "", "Registered generator name")
	browseCmd.Flags().String("plan", "", "Path to a JSON plan document")
	browseCmd.Flags().Int64("seed", 0, "Base seed (with --dataset; omit for a random one)")
	browseCmd.Flags().Int("size", 0, "Virtual size override (with --dataset)")
	browseCmd.MarkFlagsMutuallyExclusive("dataset", "plan")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	p, err := planFromFlags(cmd)
	if err != nil {
		return err
	}
	ds, err := p.Build(tasks.Builtins())
	if err != nil {
		return err
	}
	return browse.Run(p.Dataset, ds)
}
