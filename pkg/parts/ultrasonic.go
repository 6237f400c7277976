package parts

import (
	"fmt"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/mesh-robotics/robocad/pkg/cad"
	"github.com/mesh-robotics/robocad/pkg/types"
)

// UltrasonicSensorMount is an L-shaped bracket for an HC-SR04-style
// ultrasonic module:
//   - plate with circular cutouts for the two transducers and four corner
//     screw holes to fasten the PCB
//   - 90 degree bottom flange with screw holes to attach to a servo arm
//
// Coordinate system: X left-right (board width), Y top-bottom (board
// height), Z front-back (board thickness). The flange extends in +Z from
// the bottom edge of the plate.
type UltrasonicSensorMount struct {
	Spec types.SonarBoard `json:"spec"`

	MountThickness float64 `json:"mount_thickness"`
	Clearance      float64 `json:"clearance"`

	MarginX float64 `json:"margin_x"` // margin beyond the PCB
	MarginY float64 `json:"margin_y"`

	FlangeThickness float64 `json:"flange_thickness"`
	FlangeLength    float64 `json:"flange_length"`

	FlangeScrewDiameter float64 `json:"flange_screw_diameter"`
	FlangeHoleSpacing   float64 `json:"flange_hole_spacing"`
}

// DefaultUltrasonicSensorMount returns a bracket sized for a typical
// HC-SR04 board.
func DefaultUltrasonicSensorMount() *UltrasonicSensorMount {
	return &UltrasonicSensorMount{
		Spec:                types.HCSR04(),
		MountThickness:      3.0,
		Clearance:           0.3,
		MarginX:             4.0,
		MarginY:             4.0,
		FlangeThickness:     3.0,
		FlangeLength:        11.0,
		FlangeScrewDiameter: 2.0,
		FlangeHoleSpacing:   24.0,
	}
}

// plateSize returns the plate rectangle: board plus margins on each side.
func (u *UltrasonicSensorMount) plateSize() (w, h float64) {
	return u.Spec.BoardWidth + 2*u.MarginX, u.Spec.BoardHeight + 2*u.MarginY
}

// Validate checks the bracket parameters against the board spec.
func (u *UltrasonicSensorMount) Validate() error {
	if err := u.Spec.Validate(); err != nil {
		return fmt.Errorf("sonar spec: %w", err)
	}
	dims := []struct {
		name  string
		value float64
	}{
		{"mount_thickness", u.MountThickness},
		{"margin_x", u.MarginX},
		{"margin_y", u.MarginY},
		{"flange_thickness", u.FlangeThickness},
		{"flange_length", u.FlangeLength},
		{"flange_screw_diameter", u.FlangeScrewDiameter},
		{"flange_hole_spacing", u.FlangeHoleSpacing},
	}
	for _, d := range dims {
		if d.value <= 0 {
			return fmt.Errorf("%s %.3f: %w", d.name, d.value, types.ErrDimension)
		}
	}
	if u.Clearance < 0 {
		return fmt.Errorf("clearance %.3f: %w", u.Clearance, types.ErrDimension)
	}

	plateW, _ := u.plateSize()
	if u.FlangeHoleSpacing+u.FlangeScrewDiameter >= plateW {
		return fmt.Errorf("flange holes fall off the flange: %w", ErrDoesNotFit)
	}
	if u.FlangeScrewDiameter >= u.FlangeLength {
		return fmt.Errorf("flange screw wider than the flange is long: %w", ErrDoesNotFit)
	}
	return nil
}

// Build constructs the bracket: the plate profile with windows and PCB
// holes extruded to MountThickness (Z in [0, MountThickness]), unioned with
// the perpendicular flange along the plate's bottom edge.
func (u *UltrasonicSensorMount) Build() (sdf.SDF3, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	s := u.Spec
	plateW, plateH := u.plateSize()

	profile, err := cad.Plate(plateW, plateH, 0)
	if err != nil {
		return nil, err
	}

	// Transducer windows.
	profile, err = cad.Holes(profile, s.WindowDiameter+u.Clearance,
		v2.Vec{X: s.WindowSeparation / 2}, v2.Vec{X: -s.WindowSeparation / 2})
	if err != nil {
		return nil, err
	}

	// Four corner screw holes fastening the PCB.
	hx, hy := s.MountHoleSpacingX/2, s.MountHoleSpacingY/2
	profile, err = cad.Holes(profile, s.MountHoleDiameter,
		v2.Vec{X: hx, Y: hy}, v2.Vec{X: hx, Y: -hy},
		v2.Vec{X: -hx, Y: hy}, v2.Vec{X: -hx, Y: -hy})
	if err != nil {
		return nil, err
	}

	plate := cad.OnBase(sdf.Extrude3D(profile, u.MountThickness), u.MountThickness)

	flange, err := u.buildFlange(plateW, plateH)
	if err != nil {
		return nil, err
	}

	return sdf.Union3D(plate, flange), nil
}

// buildFlange constructs the 90 degree bottom flange: a plateW x
// FlangeLength tab, FlangeThickness thick, with two screw holes at
// +-FlangeHoleSpacing/2. Sketched flat, drilled, then stood up
// perpendicular to the plate and seated on the plate's bottom edge.
func (u *UltrasonicSensorMount) buildFlange(plateW, plateH float64) (sdf.SDF3, error) {
	profile, err := cad.Plate(plateW, u.FlangeLength, 0)
	if err != nil {
		return nil, err
	}
	profile, err = cad.Holes(profile, u.FlangeScrewDiameter,
		v2.Vec{X: u.FlangeHoleSpacing / 2}, v2.Vec{X: -u.FlangeHoleSpacing / 2})
	if err != nil {
		return nil, err
	}

	flange := sdf.Extrude3D(profile, u.FlangeThickness)
	// Rotate the tab upright: the sketch length direction becomes +Z, the
	// extrusion (screw axis) becomes Y.
	flange = sdf.Transform3D(flange, sdf.RotateX(sdf.DtoR(90)))
	// Seat it flush with the plate's bottom edge, extending forward.
	return cad.At(flange, 0, -(plateH-u.FlangeThickness)/2, u.FlangeLength/2), nil
}
