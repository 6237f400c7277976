// Version command for the workbench CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/robocad"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the workbench version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("workbench", robocad.Version)
	},
}
