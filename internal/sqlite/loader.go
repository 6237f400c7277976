// Startup loading of the JSONL source of truth into the fresh SQLite
// database. Malformed or invalid records are skipped so one bad line in a
// hand-edited file never blocks the rest of the catalog.
package sqlite

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/mesh-robotics/robocad/pkg/types"
)

// loadFromJSONL populates the database from servos.jsonl and sonars.jsonl.
// Called from Attach with the backend lock held.
func (b *Backend) loadFromJSONL() error {
	if err := b.loadServos(); err != nil {
		return err
	}
	return b.loadSonars()
}

func (b *Backend) loadServos() error {
	records, err := readJSONL(filepath.Join(b.config.DataDir, servosFile))
	if err != nil {
		return fmt.Errorf("reading %s: %w", servosFile, err)
	}
	for _, rec := range records {
		var s types.Servo
		if err := json.Unmarshal(rec, &s); err != nil {
			continue
		}
		if s.ServoID == "" || s.Name == "" || s.Validate() != nil {
			continue
		}
		_, err := b.db.Exec(`INSERT INTO servos (`+servoColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ServoID, s.Name,
			s.BodyWidth, s.BodyLength, s.BodyHeight,
			s.FlangeThickness, s.FlangeOverhang,
			s.ScrewSpacingX, s.ScrewDiameter,
			formatTime(s.CreatedAt), formatTime(s.UpdatedAt))
		if err != nil {
			// Skip records violating constraints (duplicate IDs or names).
			continue
		}
	}
	return nil
}

func (b *Backend) loadSonars() error {
	records, err := readJSONL(filepath.Join(b.config.DataDir, sonarsFile))
	if err != nil {
		return fmt.Errorf("reading %s: %w", sonarsFile, err)
	}
	for _, rec := range records {
		var s types.SonarBoard
		if err := json.Unmarshal(rec, &s); err != nil {
			continue
		}
		if s.SonarID == "" || s.Name == "" || s.Validate() != nil {
			continue
		}
		_, err := b.db.Exec(`INSERT INTO sonars (`+sonarColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.SonarID, s.Name,
			s.BoardWidth, s.BoardHeight, s.BoardThickness,
			s.MountHoleSpacingX, s.MountHoleSpacingY, s.MountHoleDiameter,
			s.WindowSeparation, s.WindowDiameter,
			formatTime(s.CreatedAt), formatTime(s.UpdatedAt))
		if err != nil {
			continue
		}
	}
	return nil
}
