package parts

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/mesh-robotics/robocad/pkg/cad"
	"github.com/mesh-robotics/robocad/pkg/types"
)

// ServoMountPlate is a simple rectangular plate with a rectangular cutout
// where the servo body drops through and two inline mounting screw holes
// along the centerline. One profile, one extrusion.
type ServoMountPlate struct {
	Spec types.Servo `json:"spec"`

	Thickness    float64 `json:"thickness"`     // plate thickness
	Clearance    float64 `json:"clearance"`     // extra slack around the body so it actually fits
	Margin       float64 `json:"margin"`        // extra area beyond the body
	CornerRadius float64 `json:"corner_radius"` // plate corner fillet
}

// DefaultServoMountPlate returns a plate sized for a stock SG90.
func DefaultServoMountPlate() *ServoMountPlate {
	return &ServoMountPlate{
		Spec:         types.SG90(),
		Thickness:    3.0,
		Clearance:    0.3,
		Margin:       6.0,
		CornerRadius: 2.0,
	}
}

// Validate checks the plate parameters against the servo spec.
func (p *ServoMountPlate) Validate() error {
	if err := p.Spec.Validate(); err != nil {
		return fmt.Errorf("servo spec: %w", err)
	}
	if p.Thickness <= 0 {
		return fmt.Errorf("thickness %.3f: %w", p.Thickness, types.ErrDimension)
	}
	if p.Clearance < 0 {
		return fmt.Errorf("clearance %.3f: %w", p.Clearance, types.ErrDimension)
	}
	if p.CornerRadius < 0 {
		return fmt.Errorf("corner_radius %.3f: %w", p.CornerRadius, types.ErrDimension)
	}
	if p.Margin <= p.Clearance {
		return fmt.Errorf("margin %.3f must exceed clearance %.3f: %w",
			p.Margin, p.Clearance, ErrDoesNotFit)
	}
	// The screw holes sit on the centerline beyond the body cutout; both
	// hole edges must land on plate material.
	plateLength := p.Spec.BodyLength + p.Margin
	if p.Spec.ScrewSpacingX-p.Spec.ScrewDiameter <= p.Spec.BodyLength+p.Clearance {
		return fmt.Errorf("screw holes fall inside the body cutout: %w", ErrDoesNotFit)
	}
	if p.Spec.ScrewSpacingX+p.Spec.ScrewDiameter >= plateLength {
		return fmt.Errorf("screw holes fall off the plate: %w", ErrDoesNotFit)
	}
	return nil
}

// Build constructs the plate: rounded base rectangle, body cutout, two
// screw holes, a single extrusion to Thickness. The base sits on Z=0.
func (p *ServoMountPlate) Build() (sdf.SDF3, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	s := p.Spec

	plateLength := s.BodyLength + p.Margin
	plateWidth := s.BodyWidth + p.Margin

	profile, err := cad.Plate(plateLength, plateWidth, p.CornerRadius)
	if err != nil {
		return nil, err
	}

	cutout := sdf.Box2D(v2.Vec{X: s.BodyLength + p.Clearance, Y: s.BodyWidth + p.Clearance}, 0)
	profile = sdf.Difference2D(profile, cutout)

	profile, err = cad.Holes(profile, s.ScrewDiameter,
		v2.Vec{X: s.ScrewSpacingX / 2}, v2.Vec{X: -s.ScrewSpacingX / 2})
	if err != nil {
		return nil, err
	}

	return cad.OnBase(sdf.Extrude3D(profile, p.Thickness), p.Thickness), nil
}

// ServoFrustumMount is a hollow truncated pyramid carrying a servo in a
// pocket on its deck:
//   - outer frustum lofted between rounded base and top rectangles
//   - hollow interior, open at the base (lighter, room for wiring)
//   - top pocket the servo body drops into
//   - wire slot through one side wall
//   - four base mounting holes
//
// Coordinate system: X front-back (servo length), Y left-right (servo
// width), Z from the base plane up.
type ServoFrustumMount struct {
	Spec types.Servo `json:"spec"`

	BaseLength float64 `json:"base_length"` // X
	BaseWidth  float64 `json:"base_width"`  // Y
	Height     float64 `json:"height"`      // Z

	WallThickness float64 `json:"wall_thickness"`
	DeckThickness float64 `json:"deck_thickness"` // top deck holding the servo
	CornerRadius  float64 `json:"corner_radius"`

	BaseMountHoleInset float64 `json:"base_mount_hole_inset"`
	MountHoleDiameter  float64 `json:"mount_hole_diameter"`

	WireSlotWidth  float64 `json:"wire_slot_width"`
	WireSlotHeight float64 `json:"wire_slot_height"`

	TopAllowance    float64 `json:"top_allowance"`    // extra top size beyond body + walls
	PocketClearance float64 `json:"pocket_clearance"` // extra pocket size beyond the body
}

// DefaultServoFrustumMount returns a pedestal sized for a stock SG90.
func DefaultServoFrustumMount() *ServoFrustumMount {
	return &ServoFrustumMount{
		Spec:               types.SG90(),
		BaseLength:         42.0,
		BaseWidth:          32.0,
		Height:             28.8,
		WallThickness:      2.5,
		DeckThickness:      3.0,
		CornerRadius:       3.0,
		BaseMountHoleInset: 4.0,
		MountHoleDiameter:  3.0,
		WireSlotWidth:      8.0,
		WireSlotHeight:     8.0,
		TopAllowance:       2.0,
		PocketClearance:    0.4,
	}
}

// topSize returns the outer top rectangle: servo body plus the walls plus
// the fit allowance.
func (m *ServoFrustumMount) topSize() (length, width float64) {
	length = m.Spec.BodyLength + 2*m.WallThickness + m.TopAllowance
	width = m.Spec.BodyWidth + 2*m.WallThickness + m.TopAllowance
	return length, width
}

// Validate checks the mount parameters against the servo spec.
func (m *ServoFrustumMount) Validate() error {
	if err := m.Spec.Validate(); err != nil {
		return fmt.Errorf("servo spec: %w", err)
	}
	dims := []struct {
		name  string
		value float64
	}{
		{"base_length", m.BaseLength},
		{"base_width", m.BaseWidth},
		{"height", m.Height},
		{"wall_thickness", m.WallThickness},
		{"deck_thickness", m.DeckThickness},
		{"mount_hole_diameter", m.MountHoleDiameter},
		{"wire_slot_width", m.WireSlotWidth},
		{"wire_slot_height", m.WireSlotHeight},
	}
	for _, d := range dims {
		if d.value <= 0 {
			return fmt.Errorf("%s %.3f: %w", d.name, d.value, types.ErrDimension)
		}
	}
	if m.CornerRadius < 0 || m.BaseMountHoleInset < 0 || m.TopAllowance < 0 || m.PocketClearance < 0 {
		return fmt.Errorf("negative mount parameter: %w", types.ErrDimension)
	}

	topLen, topWid := m.topSize()
	if m.BaseLength < topLen || m.BaseWidth < topWid {
		return fmt.Errorf("base %.1fx%.1f smaller than top %.1fx%.1f: %w",
			m.BaseLength, m.BaseWidth, topLen, topWid, ErrDoesNotFit)
	}
	if m.DeckThickness >= m.Height {
		return fmt.Errorf("deck %.1f consumes the whole height %.1f: %w",
			m.DeckThickness, m.Height, ErrDoesNotFit)
	}
	if 2*m.WallThickness >= topWid {
		return fmt.Errorf("walls %.1f meet before the interior: %w",
			m.WallThickness, ErrDoesNotFit)
	}
	if m.WallThickness+m.WireSlotHeight >= m.Height-m.DeckThickness {
		return fmt.Errorf("wire slot reaches the deck: %w", ErrDoesNotFit)
	}
	return nil
}

// Build constructs the pedestal. The base sits on Z=0, the deck at Z=Height.
func (m *ServoFrustumMount) Build() (sdf.SDF3, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	s := m.Spec
	topLen, topWid := m.topSize()

	// Outer frustum lofted between the rounded base and top profiles.
	base, err := cad.Plate(m.BaseLength, m.BaseWidth, m.CornerRadius)
	if err != nil {
		return nil, err
	}
	top, err := cad.Plate(topLen, topWid, m.CornerRadius)
	if err != nil {
		return nil, err
	}
	outer, err := sdf.Loft3D(base, top, m.Height, 0)
	if err != nil {
		return nil, fmt.Errorf("outer loft: %w", err)
	}
	body := cad.OnBase(outer, m.Height)

	// Hollow out from the base plane up, stopping short of the deck. The
	// interior corner radius shrinks with the wall and clamps at zero.
	interiorHeight := m.Height - m.DeckThickness
	innerRound := math.Max(m.CornerRadius-m.WallThickness, 0)
	coreBase, err := cad.Plate(m.BaseLength-2*m.WallThickness, m.BaseWidth-2*m.WallThickness, innerRound)
	if err != nil {
		return nil, err
	}
	coreTop, err := cad.Plate(topLen-2*m.WallThickness, topWid-2*m.WallThickness, innerRound)
	if err != nil {
		return nil, err
	}
	core, err := sdf.Loft3D(coreBase, coreTop, interiorHeight, 0)
	if err != nil {
		return nil, fmt.Errorf("core loft: %w", err)
	}
	body = sdf.Difference3D(body, cad.OnBase(core, interiorHeight))

	// Servo pocket sunk into the deck.
	pocket, err := sdf.Box3D(v3.Vec{
		X: s.BodyLength + m.PocketClearance,
		Y: s.BodyWidth + m.PocketClearance,
		Z: m.DeckThickness,
	}, 0)
	if err != nil {
		return nil, fmt.Errorf("servo pocket: %w", err)
	}
	body = sdf.Difference3D(body, cad.At(pocket, 0, 0, m.Height-m.DeckThickness/2))

	// Servo screw holes through the deck.
	screw, err := sdf.Cylinder3D(m.DeckThickness, s.ScrewDiameter/2, 0)
	if err != nil {
		return nil, fmt.Errorf("servo screw hole: %w", err)
	}
	for _, x := range []float64{s.ScrewSpacingX / 2, -s.ScrewSpacingX / 2} {
		body = sdf.Difference3D(body, cad.At(screw, x, 0, m.Height-m.DeckThickness/2))
	}

	// Wire slot cut through the +X side wall, sill one wall thickness
	// above the base plane.
	slot, err := sdf.Box3D(v3.Vec{X: m.BaseLength, Y: m.WireSlotWidth, Z: m.WireSlotHeight}, 0)
	if err != nil {
		return nil, fmt.Errorf("wire slot: %w", err)
	}
	body = sdf.Difference3D(body,
		cad.At(slot, m.BaseLength/2, 0, m.WallThickness+m.WireSlotHeight/2))

	// Base mounting holes drilled through the full height at the inset
	// corners.
	hole, err := sdf.Cylinder3D(m.Height, m.MountHoleDiameter/2, 0)
	if err != nil {
		return nil, fmt.Errorf("base mount hole: %w", err)
	}
	dx := m.BaseLength/2 - m.BaseMountHoleInset
	dy := m.BaseWidth/2 - m.BaseMountHoleInset
	for _, c := range []v2.Vec{{X: dx, Y: dy}, {X: dx, Y: -dy}, {X: -dx, Y: dy}, {X: -dx, Y: -dy}} {
		body = sdf.Difference3D(body, cad.At(hole, c.X, c.Y, m.Height/2))
	}

	return body, nil
}
