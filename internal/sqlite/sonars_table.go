// Sonars table accessor: hydrates between SQLite rows and *types.SonarBoard
// and persists mutations to sonars.jsonl atomically.
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
var _ types.Table = (*sonarsTable)(nil)

const sonarColumns = `sonar_id, name, board_width, board_height,
	board_thickness, mount_hole_spacing_x, mount_hole_spacing_y,
	mount_hole_diameter, window_separation, window_diameter,
	created_at, updated_at`

// sonarFilterColumns maps Fetch filter keys to SQLite columns.
var sonarFilterColumns = map[string]string{
	"name":                 "name",
	"board_width":          "board_width",
	"board_height":         "board_height",
	"board_thickness":      "board_thickness",
	"mount_hole_spacing_x": "mount_hole_spacing_x",
	"mount_hole_spacing_y": "mount_hole_spacing_y",
	"mount_hole_diameter":  "mount_hole_diameter",
	"window_separation":    "window_separation",
	"window_diameter":      "window_diameter",
}

type sonarsTable struct {
	b *Backend
}

// Get retrieves a sonar board by ID.
func (t *sonarsTable) Get(id string) (any, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}
	t.b.mu.RLock()
	defer t.b.mu.RUnlock()
	if !t.b.attached {
		return nil, types.ErrCatalogDetached
	}

	row := t.b.db.QueryRow(
		"SELECT "+sonarColumns+" FROM sonars WHERE sonar_id = ?", id)
	sonar, err := scanSonar(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("getting sonar %s: %w", id, err)
	}
	return sonar, nil
}

// Set persists a sonar board. If id is empty, generates a UUID v7 and
// creates the entry; otherwise updates the existing entry, preserving its
// creation time.
func (t *sonarsTable) Set(id string, data any) (string, error) {
	sonar, ok := data.(*types.SonarBoard)
	if !ok {
		return "", types.ErrInvalidData
	}
	if sonar.Name == "" {
		return "", types.ErrInvalidName
	}
	if err := sonar.Validate(); err != nil {
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
		sonar.CreatedAt = now
	} else if sonar.CreatedAt.IsZero() {
		var created string
		err := t.b.db.QueryRow(
			"SELECT created_at FROM sonars WHERE sonar_id = ?", id).Scan(&created)
		switch {
		case err == nil:
			sonar.CreatedAt = parseTime(created)
		case errors.Is(err, sql.ErrNoRows):
			sonar.CreatedAt = now
		default:
			return "", fmt.Errorf("looking up sonar %s: %w", id, err)
		}
	}
	sonar.SonarID = id
	sonar.UpdatedAt = now

	_, err := t.b.db.Exec(`INSERT INTO sonars (`+sonarColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(sonar_id) DO UPDATE SET
			name = excluded.name,
			board_width = excluded.board_width,
			board_height = excluded.board_height,
			board_thickness = excluded.board_thickness,
			mount_hole_spacing_x = excluded.mount_hole_spacing_x,
			mount_hole_spacing_y = excluded.mount_hole_spacing_y,
			mount_hole_diameter = excluded.mount_hole_diameter,
			window_separation = excluded.window_separation,
			window_diameter = excluded.window_diameter,
			updated_at = excluded.updated_at`,
		sonar.SonarID, sonar.Name,
		sonar.BoardWidth, sonar.BoardHeight, sonar.BoardThickness,
		sonar.MountHoleSpacingX, sonar.MountHoleSpacingY, sonar.MountHoleDiameter,
		sonar.WindowSeparation, sonar.WindowDiameter,
		formatTime(sonar.CreatedAt), formatTime(sonar.UpdatedAt))
	if err != nil {
		return "", fmt.Errorf("storing sonar %q: %w", sonar.Name, err)
	}

	if err := t.persist(); err != nil {
		return "", err
	}
	return id, nil
}

// Delete removes a sonar board by ID.
func (t *sonarsTable) Delete(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}
	t.b.mu.Lock()
	defer t.b.mu.Unlock()
	if !t.b.attached {
		return types.ErrCatalogDetached
	}

	res, err := t.b.db.Exec("DELETE FROM sonars WHERE sonar_id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting sonar %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting sonar %s: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return t.persist()
}

// Fetch returns all sonar boards matching the filter.
func (t *sonarsTable) Fetch(filter map[string]any) ([]any, error) {
	t.b.mu.RLock()
	defer t.b.mu.RUnlock()
	if !t.b.attached {
		return nil, types.ErrCatalogDetached
	}

	where, args, err := buildFilter(filter, sonarFilterColumns)
	if err != nil {
		return nil, err
	}

	rows, err := t.b.db.Query(
		"SELECT "+sonarColumns+" FROM sonars"+where+" ORDER BY name", args...)
	if err != nil {
		return nil, fmt.Errorf("fetching sonars: %w", err)
	}
	defer rows.Close()

	var out []any
	for rows.Next() {
		sonar, err := scanSonar(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scanning sonar: %w", err)
		}
		out = append(out, sonar)
	}
	return out, rows.Err()
}

// persist rewrites sonars.jsonl from the current table contents.
// Caller holds the backend lock.
func (t *sonarsTable) persist() error {
	rows, err := t.b.db.Query("SELECT " + sonarColumns + " FROM sonars ORDER BY created_at")
	if err != nil {
		return fmt.Errorf("dumping sonars: %w", err)
	}
	defer rows.Close()

	var sonars []*types.SonarBoard
	for rows.Next() {
		sonar, err := scanSonar(rows.Scan)
		if err != nil {
			return fmt.Errorf("scanning sonar: %w", err)
		}
		sonars = append(sonars, sonar)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	records, err := marshalRecords(sonars)
	if err != nil {
		return err
	}
	return writeJSONL(filepath.Join(t.b.config.DataDir, sonarsFile), records)
}

// scanSonar hydrates one row into a SonarBoard via the given scan function.
func scanSonar(scan func(dest ...any) error) (*types.SonarBoard, error) {
	var s types.SonarBoard
	var created, updated string
	err := scan(&s.SonarID, &s.Name,
		&s.BoardWidth, &s.BoardHeight, &s.BoardThickness,
		&s.MountHoleSpacingX, &s.MountHoleSpacingY, &s.MountHoleDiameter,
		&s.WindowSeparation, &s.WindowDiameter,
		&created, &updated)
	if err != nil {
		return nil, err
	}
	s.CreatedAt = parseTime(created)
	s.UpdatedAt = parseTime(updated)
	return &s, nil
}
