// Package cad defines the boundary between part descriptions and the
// external solid-modeling kernel (github.com/deadsy/sdfx). The kernel does
// all boundary construction and meshing; this package contributes the
// Component interface, the profile helpers shared by the part builders, and
// mesh export.
package cad

import (
	"github.com/deadsy/sdfx/sdf"
)

// Component is a parametric part that can build itself into a solid.
type Component interface {
	// Build validates the part parameters and constructs the solid
	// through the modeling kernel.
	Build() (sdf.SDF3, error)
}
