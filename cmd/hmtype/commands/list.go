package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"wisp/internal/scenarios"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available scenarios",
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	for _, s := range scenarios.All() {
		fmt.Printf("%s\n    %s\n", bold(s.Name), dim(s.Description))
	}
}
