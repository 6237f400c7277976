// Export command renders a part to a mesh file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-robotics/robocad/pkg/cad"
)

var (
	exportOutput    string
	exportParams    string
	exportServo     string
	exportSonar     string
	exportMeshCells int
)

var exportCmd = &cobra.Command{
	Use:   "export <part>",
	Short: "Export a part to an STL or 3MF file",
	Long: `Export builds a part and writes its mesh to a file. The format is
chosen by the output file extension: .stl or .3mf.

The part starts from its defaults; --params overlays JSON overrides, and
--servo/--sonar pull a device spec from the catalog by id or name.

Example:
  workbench export servo-plate
  workbench export servo-plate -o plate.3mf
  workbench export servo-frustum --servo sg90 --params '{"height": 40}'
  workbench export sonar-bracket --sonar hc-sr04 --mesh-cells 500`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: <part>.stl in the output dir)")
	exportCmd.Flags().StringVar(&exportParams, "params", "", "JSON parameter overrides")
	exportCmd.Flags().StringVar(&exportServo, "servo", "", "servo id or name from the catalog")
	exportCmd.Flags().StringVar(&exportSonar, "sonar", "", "sonar id or name from the catalog")
	exportCmd.Flags().IntVar(&exportMeshCells, "mesh-cells", 0, "marching-cubes resolution (default: config mesh_cells)")
}

func runExport(cmd *cobra.Command, args []string) error {
	partName := args[0]

	part, err := newPart(partName, exportParams)
	if err != nil {
		return err
	}
	if err := applyDeviceFlags(part, exportServo, exportSonar); err != nil {
		return err
	}

	path := exportOutput
	if path == "" {
		path = filepath.Join(configOutputDir, partName+".stl")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	exporter := cad.NewExporter()
	if configMeshCells > 0 {
		exporter.MeshCells = configMeshCells
	}
	if exportMeshCells > 0 {
		exporter.MeshCells = exportMeshCells
	}

	if err := exporter.Export(part, path); err != nil {
		return fmt.Errorf("export %s: %w", partName, err)
	}

	if flagJSON {
		return printJSON(map[string]any{
			"part":       partName,
			"output":     path,
			"mesh_cells": exporter.MeshCells,
		})
	}
	fmt.Printf("Exported %s to %s\n", partName, path)
	return nil
}
