package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/taskgym/internal/tasks"
	"github.com/abhisek/taskgym/internal/ui/theme"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Print the first samples of a dataset",
	Long: `Generate and print the first samples of a dataset with styled output.

This is a stateless developer tool; nothing is written anywhere. Useful for
eyeballing question quality while tuning generator parameters.`,
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().String("dataset", "", "Registered generator name")
	previewCmd.Flags().String("plan", "", "Path to a JSON plan document")
	previewCmd.Flags().Int64("seed", 0, "Base seed (with --dataset; omit for a random one)")
	previewCmd.Flags().Int("size", 0, "Virtual size override (with --dataset)")
	previewCmd.Flags().Int("count", 5, "Number of samples to print")
	previewCmd.MarkFlagsMutuallyExclusive("dataset", "plan")
}

func runPreview(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")

	p, err := planFromFlags(cmd)
	if err != nil {
		return err
	}
	ds, err := p.Build(tasks.Builtins())
	if err != nil {
		return err
	}
	if count > ds.Size() {
		count = ds.Size()
	}

	out := cmd.OutOrStdout()
	for i := 0; i < count; i++ {
		smp, err := ds.Get(i)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, theme.Title.Render(fmt.Sprintf("— %s [%d] —", p.Dataset, i)))
		fmt.Fprintln(out, theme.Body.Render(smp.Question))
		fmt.Fprintf(out, "%s %s\n\n", theme.Label.Render("Answer:"), theme.Answer.Render(smp.Answer))
	}
	return nil
}
