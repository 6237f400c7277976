package types

import (
	"fmt"
	"time"
)

// SonarBoard holds the PCB dimensions of an HC-SR04-style ultrasonic
// module. All dimensions are millimeters.
type SonarBoard struct {
	SonarID   string    `json:"sonar_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	BoardWidth        float64 `json:"board_width"`         // X
	BoardHeight       float64 `json:"board_height"`        // Y
	BoardThickness    float64 `json:"board_thickness"`     // Z
	MountHoleSpacingX float64 `json:"mount_hole_spacing_x"` // center-to-center horizontally
	MountHoleSpacingY float64 `json:"mount_hole_spacing_y"` // center-to-center vertically
	MountHoleDiameter float64 `json:"mount_hole_diameter"`  // M2-ish
	WindowSeparation  float64 `json:"window_separation"`    // transducer center-to-center
	WindowDiameter    float64 `json:"window_diameter"`      // transducer can diameter
}

// HCSR04 returns the typical dimensions of an HC-SR04 PCB. Boards vary by
// vendor; measure yours before printing a tight bracket.
func HCSR04() SonarBoard {
	return SonarBoard{
		Name:              "hc-sr04",
		BoardWidth:        45.0,
		BoardHeight:       30.0,
		BoardThickness:    2.0,
		MountHoleSpacingX: 40.0,
		MountHoleSpacingY: 16.0,
		MountHoleDiameter: 2.5,
		WindowSeparation:  25.0,
		WindowDiameter:    11.0,
	}
}

// Validate checks that every dimension is strictly positive, that the
// transducer windows do not overlap each other or fall off the board, and
// that the mount hole spacings clear the hole diameter.
func (s SonarBoard) Validate() error {
	dims := []struct {
		name  string
		value float64
	}{
		{"board_width", s.BoardWidth},
		{"board_height", s.BoardHeight},
		{"board_thickness", s.BoardThickness},
		{"mount_hole_spacing_x", s.MountHoleSpacingX},
		{"mount_hole_spacing_y", s.MountHoleSpacingY},
		{"mount_hole_diameter", s.MountHoleDiameter},
		{"window_separation", s.WindowSeparation},
		{"window_diameter", s.WindowDiameter},
	}
	for _, d := range dims {
		if d.value <= 0 {
			return fmt.Errorf("%s %.3f: %w", d.name, d.value, ErrDimension)
		}
	}
	if s.WindowSeparation <= s.WindowDiameter {
		return fmt.Errorf("window_separation %.3f vs window_diameter %.3f: %w",
			s.WindowSeparation, s.WindowDiameter, ErrSpacing)
	}
	if s.WindowSeparation+s.WindowDiameter > s.BoardWidth {
		return fmt.Errorf("windows wider than board (%.3f > %.3f): %w",
			s.WindowSeparation+s.WindowDiameter, s.BoardWidth, ErrSpacing)
	}
	if s.MountHoleSpacingX <= s.MountHoleDiameter || s.MountHoleSpacingY <= s.MountHoleDiameter {
		return fmt.Errorf("mount hole spacing vs diameter %.3f: %w",
			s.MountHoleDiameter, ErrSpacing)
	}
	return nil
}
