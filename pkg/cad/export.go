package cad

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/deadsy/sdfx/render"
)

// DefaultMeshCells is the default marching-cubes resolution along the
// longest axis of the solid's bounding box.
const DefaultMeshCells = 300

// Export errors.
var (
	ErrUnknownFormat     = errors.New("unknown export format")
	ErrInvalidResolution = errors.New("mesh cells must be positive")
)

// Exporter renders built components to mesh files.
type Exporter struct {
	// MeshCells is the marching-cubes resolution along the longest axis
	// of the bounding box. Higher is finer and slower.
	MeshCells int
}

// NewExporter returns an Exporter with the default resolution.
func NewExporter() *Exporter {
	return &Exporter{MeshCells: DefaultMeshCells}
}

// Export builds the component and writes its mesh to path. The format is
// chosen by file extension: .stl or .3mf.
func (e *Exporter) Export(c Component, path string) error {
	if e.MeshCells <= 0 {
		return fmt.Errorf("%d: %w", e.MeshCells, ErrInvalidResolution)
	}

	solid, err := c.Build()
	if err != nil {
		return fmt.Errorf("building part: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		render.ToSTL(solid, path, render.NewMarchingCubesOctree(e.MeshCells))
	case ".3mf":
		render.To3MF(solid, path, render.NewMarchingCubesOctree(e.MeshCells))
	default:
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	return nil
}
