// Parts command lists the registered part types.
package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/robocad/pkg/parts"
)

var partsCmd = &cobra.Command{
	Use:   "parts",
	Short: "List the available part types",
	Long: `Parts lists the registered part types with their descriptions.

Example:
  workbench parts
  workbench parts --json`,
	Args: cobra.NoArgs,
	RunE: runParts,
}

func runParts(cmd *cobra.Command, args []string) error {
	if flagJSON {
		type partInfo struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		}
		infos := make([]partInfo, len(parts.Registry))
		for i, e := range parts.Registry {
			infos[i] = partInfo{Name: e.Name, Description: e.Description}
		}
		return printJSON(infos)
	}

	var sb strings.Builder
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	fmt.Fprintln(w, "----\t-----------")
	for _, e := range parts.Registry {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Description)
	}
	w.Flush()

	for _, line := range strings.Split(sb.String(), "\n") {
		fmt.Println(strings.TrimRight(line, " "))
	}
	return nil
}
