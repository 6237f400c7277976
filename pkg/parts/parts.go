// Package parts defines the parametric robot parts. Each part is a struct
// of millimeter dimensions with defaults for common hardware, and a Build
// method that validates the parameters and issues a short sequence of calls
// against the modeling kernel: profile, holes, extrude or loft, subtract.
package parts

import (
	"errors"

	"github.com/mesh-robotics/robocad/pkg/cad"
)

// ErrDoesNotFit is returned when part dimensions cannot enclose the device
// they are meant to carry.
var ErrDoesNotFit = errors.New("part dimensions do not fit")

// Entry describes a registered part type.
type Entry struct {
	Name        string
	Description string
	New         func() cad.Component
}

// Registry lists the built-in part types in display order.
var Registry = []Entry{
	{
		Name:        "servo-plate",
		Description: "rectangular drop-in plate for a hobby servo",
		New:         func() cad.Component { return DefaultServoMountPlate() },
	},
	{
		Name:        "servo-frustum",
		Description: "hollow tapered pedestal with a servo pocket on top",
		New:         func() cad.Component { return DefaultServoFrustumMount() },
	},
	{
		Name:        "sonar-bracket",
		Description: "L-bracket for an HC-SR04 ultrasonic module",
		New:         func() cad.Component { return DefaultUltrasonicSensorMount() },
	},
}

// Lookup returns the registry entry for name.
func Lookup(name string) (Entry, bool) {
	for _, e := range Registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Names returns the registered part names in display order.
func Names() []string {
	names := make([]string, len(Registry))
	for i, e := range Registry {
		names[i] = e.Name
	}
	return names
}
