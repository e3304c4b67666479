package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/taskgym/internal/tasks"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered generators",
	RunE:  runList,
}

func init() {
	listCmd.Flags().Bool("configs", false, "Also print each generator's default config as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	showConfigs, _ := cmd.Flags().GetBool("configs")

	reg := tasks.Builtins()
	for _, name := range reg.Names() {
		if !showConfigs {
			fmt.Fprintln(cmd.OutOrStdout(), name)
			continue
		}
		e, _ := reg.Lookup(name)
		cfg, err := json.Marshal(e.Config)
		if err != nil {
			return fmt.Errorf("marshal %s config: %w", name, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", name, cfg)
	}
	return nil
}
