// Show command prints a part's parameters.
package main

import (
	"github.com/spf13/cobra"
)

var (
	showParams string
	showServo  string
	showSonar  string
)

var showCmd = &cobra.Command{
	Use:   "show <part>",
	Short: "Show a part's parameters",
	Long: `Show prints the full parameter set of a part as JSON, starting from
the part's defaults. Use --params to overlay overrides, or --servo/--sonar
to pull a device spec from the catalog.

Example:
  workbench show servo-plate
  workbench show servo-frustum --params '{"wall_thickness": 3.0}'
  workbench show sonar-bracket --sonar hc-sr04`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVar(&showParams, "params", "", "JSON parameter overrides")
	showCmd.Flags().StringVar(&showServo, "servo", "", "servo id or name from the catalog")
	showCmd.Flags().StringVar(&showSonar, "sonar", "", "sonar id or name from the catalog")
}

func runShow(cmd *cobra.Command, args []string) error {
	part, err := newPart(args[0], showParams)
	if err != nil {
		return err
	}

	if err := applyDeviceFlags(part, showServo, showSonar); err != nil {
		return err
	}

	return printJSON(part)
}
