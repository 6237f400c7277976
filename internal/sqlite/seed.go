// Built-in device preset seeding on backend attach. A fresh catalog starts
// with the SG90 servo and HC-SR04 sonar board so parts can be exported
// before anything is measured.
package sqlite

import (
	"fmt"
	"time"

	"github.com/mesh-robotics/robocad/pkg/types"
)

// seedPresets inserts the built-in presets when their tables are empty.
// Idempotent across attaches: once the JSONL files carry any entry, the
// table is non-empty after load and seeding is skipped. Called from Attach
// with the backend lock held.
func (b *Backend) seedPresets() error {
	if err := b.seedServos(); err != nil {
		return err
	}
	return b.seedSonars()
}

func (b *Backend) seedServos() error {
	var count int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM servos").Scan(&count); err != nil {
		return fmt.Errorf("counting servos: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	s := types.SG90()
	s.ServoID = newUUID()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := b.db.Exec(`INSERT INTO servos (`+servoColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ServoID, s.Name,
		s.BodyWidth, s.BodyLength, s.BodyHeight,
		s.FlangeThickness, s.FlangeOverhang,
		s.ScrewSpacingX, s.ScrewDiameter,
		formatTime(s.CreatedAt), formatTime(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("seeding servo preset: %w", err)
	}

	t := servosTable{b: b}
	return t.persist()
}

func (b *Backend) seedSonars() error {
	var count int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM sonars").Scan(&count); err != nil {
		return fmt.Errorf("counting sonars: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	s := types.HCSR04()
	s.SonarID = newUUID()
	s.CreatedAt = now
	s.UpdatedAt = now

	_, err := b.db.Exec(`INSERT INTO sonars (`+sonarColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.SonarID, s.Name,
		s.BoardWidth, s.BoardHeight, s.BoardThickness,
		s.MountHoleSpacingX, s.MountHoleSpacingY, s.MountHoleDiameter,
		s.WindowSeparation, s.WindowDiameter,
		formatTime(s.CreatedAt), formatTime(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("seeding sonar preset: %w", err)
	}

	t := sonarsTable{b: b}
	return t.persist()
}
