package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskgym",
	Short: "Procedural reasoning-task generators",
	Long: "Taskgym: deterministic, seedable generators of reasoning-benchmark\n" +
		"samples (question/answer/metadata). Datasets are virtual: any index can\n" +
		"be generated on demand and reproduced exactly from (seed, index).",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(versionCmd)
}
