// Servos table accessor: hydrates between SQLite rows and *types.Servo and
// persists mutations to servos.jsonl atomically.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mesh-robotics/robocad/pkg/types"
)

// Compile-time interface check.
var _ types.Table = (*servosTable)(nil)

const servoColumns = `servo_id, name, body_width, body_length, body_height,
	flange_thickness, flange_overhang, screw_spacing_x, screw_diameter,
	created_at, updated_at`

// servoFilterColumns maps Fetch filter keys to SQLite columns.
var servoFilterColumns = map[string]string{
	"name":             "name",
	"body_width":       "body_width",
	"body_length":      "body_length",
	"body_height":      "body_height",
	"flange_thickness": "flange_thickness",
	"flange_overhang":  "flange_overhang",
	"screw_spacing_x":  "screw_spacing_x",
	"screw_diameter":   "screw_diameter",
}

type servosTable struct {
	b *Backend
}

// Get retrieves a servo by ID.
func (t *servosTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.b.mu.RLock()
	defer t.b.mu.RUnlock()
	if !t.b.attached {
		return nil, types.ErrCatalogDetached
	}

	row := t.b.db.QueryRow(
		"SELECT "+servoColumns+" FROM servos WHERE servo_id = ?", id)
	servo, err := scanServo(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting servo %s: %w", id, err)
	}
	return servo, nil
}

// Set persists a servo. If id is empty, generates a UUID v7 and creates the
// entry; otherwise updates the existing entry, preserving its creation
// time. The servo must carry a name and valid dimensions.
func (t *servosTable) Set(id string, data any) (string, error) {
	servo, ok := data.(*types.Servo)
	if !ok {
		return "", types.ErrInvalidData
	}
	if servo.Name == "" {
		return "", types.ErrInvalidName
	}
	if err := servo.Validate(); err != nil {
		return "", err
	}

	t.b.mu.Lock()
	defer t.b.mu.Unlock()
	if !t.b.attached {
		return "", types.ErrCatalogDetached
	}

	now := time.Now().UTC()
	if id == "" {
		id = newUUID()
		servo.CreatedAt = now
	} else if servo.CreatedAt.IsZero() {
		var created string
		err := t.b.db.QueryRow(
			"SELECT created_at FROM servos WHERE servo_id = ?", id).Scan(&created)
		switch {
		case err == nil:
			servo.CreatedAt = parseTime(created)
		case errors.Is(err, sql.ErrNoRows):
			servo.CreatedAt = now
		default:
			return "", fmt.Errorf("looking up servo %s: %w", id, err)
		}
	}
	servo.ServoID = id
	servo.UpdatedAt = now

	_, err := t.b.db.Exec(`INSERT INTO servos (`+servoColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(servo_id) DO UPDATE SET
			name = excluded.name,
			body_width = excluded.body_width,
			body_length = excluded.body_length,
			body_height = excluded.body_height,
			flange_thickness = excluded.flange_thickness,
			flange_overhang = excluded.flange_overhang,
			screw_spacing_x = excluded.screw_spacing_x,
			screw_diameter = excluded.screw_diameter,
			updated_at = excluded.updated_at`,
		servo.ServoID, servo.Name,
		servo.BodyWidth, servo.BodyLength, servo.BodyHeight,
		servo.FlangeThickness, servo.FlangeOverhang,
		servo.ScrewSpacingX, servo.ScrewDiameter,
		formatTime(servo.CreatedAt), formatTime(servo.UpdatedAt))
	if err != nil {
		return "", fmt.Errorf("storing servo %q: %w", servo.Name, err)
	}

	if err := t.persist(); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes a servo by ID.
func (t *servosTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.b.mu.Lock()
	defer t.b.mu.Unlock()
	if !t.b.attached {
		return types.ErrCatalogDetached
	}

	res, err := t.b.db.Exec("DELETE FROM servos WHERE servo_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting servo %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting servo %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return t.persist()
}

// Fetch returns all servos matching the filter (equality on name or any
// dimension field). An empty filter returns every servo.
func (t *servosTable) Fetch(filter map[string]any) ([]any, error) {
	t.b.mu.RLock()
	defer t.b.mu.RUnlock()
	if !t.b.attached {
		return nil, types.ErrCatalogDetached
	}

	where, args, err := buildFilter(filter, servoFilterColumns)
	if err != nil {
		return nil, err
	}

	rows, err := t.b.db.Query(
		"SELECT "+servoColumns+" FROM servos"+where+" ORDER BY name", args...)
	if err != nil {
		return nil, fmt.Errorf("fetching servos: %w", err)
	}
	defer rows.Close()

	var out []any
	for rows.Next() {
		servo, err := scanServo(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning servo: %w", err)
		}
		out = append(out, servo)
	}
	return out, rows.Err()
}

// persist rewrites servos.jsonl from the current table contents.
// Caller holds the backend lock.
func (t *servosTable) persist() error {
	rows, err := t.b.db.Query("SELECT " + servoColumns + " FROM servos ORDER BY created_at")
	if err != nil {
		return fmt.Errorf("dumping servos: %w", err)
	}
	defer rows.Close()

	var servos []*types.Servo
	for rows.Next() {
		servo, err := scanServo(rows.Scan)
		if err != nil {
			return fmt.Errorf("scanning servo: %w", err)
		}
		servos = append(servos, servo)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	records, err := marshalRecords(servos)
	if err != nil {
		return err
	}
	return writeJSONL(filepath.Join(t.b.config.DataDir, servosFile), records)
}

// scanServo hydrates one row into a Servo via the given scan function,
// which works for both *sql.Row and *sql.Rows.
func scanServo(scan func(dest ...any) error) (*types.Servo, error) {
	var s types.Servo
	var created, updated string
	err := scan(&s.ServoID, &s.Name,
		&s.BodyWidth, &s.BodyLength, &s.BodyHeight,
		&s.FlangeThickness, &s.FlangeOverhang,
		&s.ScrewSpacingX, &s.ScrewDiameter,
		&created, &updated)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = parseTime(created)
	s.UpdatedAt = parseTime(updated)
	return &s, nil
}
