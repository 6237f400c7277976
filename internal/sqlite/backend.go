// Package sqlite implements the SQLite backend for the robocad device
// catalog. SQLite serves as the query engine; JSONL files in the data
// directory are the source of truth and survive database recreation, so
// the catalog can live in version control next to the printed parts.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/mesh-robotics/robocad/pkg/types"
)

// dbFileName is the SQLite database file, rebuilt from JSONL on every
// attach.
const dbFileName = "catalog.db"

// Backend implements types.Catalog using SQLite as the query engine and
// JSONL files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	tables   map[string]types.Table
}

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		tables: make(map[string]types.Table),
	}
}

// GetTable returns a Table accessor for the given table name.
// Returns ErrTableNotFound if the name is not recognized and
// ErrCatalogDetached if the backend is not attached.
func (b *Backend) GetTable(name string) (types.Table, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrCatalogDetached
	}
	table, ok := b.tables[name]
	if !ok {
		return nil, types.ErrTableNotFound
	}
	return table, nil
}

// Attach initializes the backend with the given configuration: creates the
// data directory if needed, recreates the database from the embedded
// schema, loads the JSONL files, and seeds the built-in device presets when
// the catalog is empty. Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	// The database is a disposable cache of the JSONL files; start fresh.
	dbPath := filepath.Join(dataDir, dbFileName)
	_ = os.Remove(dbPath)

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("opening %s: %w", dbPath, err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("initializing schema: %w", err)
	}

	b.db = db
	b.config = config
	b.config.DataDir = dataDir

	if err := b.loadFromJSONL(); err != nil {
		db.Close()
		return err
	}
	if err := b.seedPresets(); err != nil {
		db.Close()
		return err
	}

	b.tables = map[string]types.Table{
		types.TableServos: &servosTable{b: b},
		types.TableSonars: &sonarsTable{b: b},
	}
	b.attached = true
	return nil
}

// Detach closes the database and releases resources. Idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}
	b.attached = false
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("closing database: %w", err)
		}
		b.db = nil
	}
	return nil
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Compile-time interface check.
var _ types.Catalog = (*Backend)(nil)
