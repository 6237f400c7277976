// Package robocad holds parametric descriptions of 3D-printable robot
// parts. Each part is a struct of millimeter dimensions plus a builder that
// translates those dimensions into a short sequence of calls against the
// external solid-modeling kernel (github.com/deadsy/sdfx), which performs
// the actual solid construction and mesh export.
//
// The module is organized into the following packages:
//
//   - pkg/types: device spec entities (servos, sonar boards), the Catalog
//     and Table interfaces, and standard error values
//   - pkg/geom: 2D helpers for frustum cross-section reasoning
//   - pkg/cad: the kernel boundary (Component interface, profile helpers,
//     mesh export)
//   - pkg/parts: the parametric parts themselves
//   - pkg/sqlite: public factory for the SQLite device catalog backend
//   - cmd/workbench: CLI for listing, configuring, and exporting parts
package robocad

// Version is the robocad module version.
const Version = "0.3.0"
