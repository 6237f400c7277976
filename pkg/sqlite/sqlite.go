// Package sqlite provides the public API for the SQLite catalog backend.
// This package exposes the factory function for creating SQLite backends
// while keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-robotics/robocad/internal/sqlite"
	"github.com/mesh-robotics/robocad/pkg/types"
)

// NewCatalog creates a new SQLite catalog instance.
// The catalog is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	catalog := sqlite.NewCatalog()
//	err := catalog.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: ".robocad-db",
//	})
//	defer catalog.Detach()
func NewCatalog() types.Catalog {
	return sqlite.NewBackend()
}
