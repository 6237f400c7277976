package sqlite

// Schema DDL for the device catalog tables. Dimensions are REAL
// millimeters; timestamps are RFC 3339 strings.
const (
	createServos = `CREATE TABLE servos (
    servo_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    body_width REAL NOT NULL,
    body_length REAL NOT NULL,
    body_height REAL NOT NULL,
    flange_thickness REAL NOT NULL,
    flange_overhang REAL NOT NULL,
    screw_spacing_x REAL NOT NULL,
    screw_diameter REAL NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createSonars = `CREATE TABLE sonars (
    sonar_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    board_width REAL NOT NULL,
    board_height REAL NOT NULL,
    board_thickness REAL NOT NULL,
    mount_hole_spacing_x REAL NOT NULL,
    mount_hole_spacing_y REAL NOT NULL,
    mount_hole_diameter REAL NOT NULL,
    window_separation REAL NOT NULL,
    window_diameter REAL NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`
)

// schemaSQL is the full catalog schema executed on attach.
var schemaSQL = createServos + "\n" + createSonars
