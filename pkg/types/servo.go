package types

import (
	"fmt"
	"time"
)

// Servo holds the physical dimensions of a hobby servo body.
// All dimensions are millimeters.
type Servo struct {
	ServoID   string    `json:"servo_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BodyWidth       float64 `json:"body_width"`       // Y
	BodyLength      float64 `json:"body_length"`      // X
	BodyHeight      float64 `json:"body_height"`      // Z
	FlangeThickness float64 `json:"flange_thickness"` // thickness of the mounting ears
	FlangeOverhang  float64 `json:"flange_overhang"`  // how far the ears extend past the body in +X / -X
	ScrewSpacingX   float64 `json:"screw_spacing_x"`  // distance between the two screw centers along X
	ScrewDiameter   float64 `json:"screw_diameter"`   // nominal screw diameter
}

// SG90 returns the approximate dimensions of a stock SG90 micro servo.
// Treat these as placeholders; refine with calipers for a tight fit.
func SG90() Servo {
	return Servo{
		Name:            "sg90",
		BodyWidth:       12.2,
		BodyLength:      23.5,
		BodyHeight:      22.5,
		FlangeThickness: 2.0,
		FlangeOverhang:  2.0,
		ScrewSpacingX:   27.0,
		ScrewDiameter:   2.0,
	}
}

// Validate checks that every dimension is strictly positive and that the
// screw spacing clears the screw diameter. Returns a wrapped ErrDimension
// or ErrSpacing naming the offending field.
func (s Servo) Validate() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"body_width", s.BodyWidth},
		{"body_length", s.BodyLength},
		{"body_height", s.BodyHeight},
		{"flange_thickness", s.FlangeThickness},
		{"flange_overhang", s.FlangeOverhang},
		{"screw_spacing_x", s.ScrewSpacingX},
		{"screw_diameter", s.ScrewDiameter},
	}
	for _, d := range dims {
		if d.value <= 0 {
			return fmt.Errorf("%s %.3f: %w", d.name, d.value, ErrDimension)
		}
	}
	if s.ScrewSpacingX <= s.ScrewDiameter {
		return fmt.Errorf("screw_spacing_x %.3f vs screw_diameter %.3f: %w",
			s.ScrewSpacingX, s.ScrewDiameter, ErrSpacing)
	}
	return nil
}
