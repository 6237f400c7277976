// Tests for the SQLite catalog backend lifecycle.
package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/mesh-robotics/robocad/pkg/types"
)

func testConfig(t *testing.T) types.Config {
	t.Helper()
	return types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
}

func TestBackend_Attach(t *testing.T) {
	b := NewBackend()
	config := testConfig(t)

	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	// Verify database file created.
	dbPath := filepath.Join(config.DataDir, dbFileName)
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("catalog.db not created")
	}

	// Verify double attach fails.
	if err := b.Attach(config); !errors.Is(err, types.ErrAlreadyAttached) {
		t.Errorf("expected ErrAlreadyAttached, got %v", err)
	}
}

func TestBackend_AttachRejectsBadConfig(t *testing.T) {
	b := NewBackend()

	err := b.Attach(types.Config{Backend: "postgres"})
	if !errors.Is(err, types.ErrBackendUnknown) {
		t.Errorf("expected ErrBackendUnknown, got %v", err)
	}
}

func TestBackend_Detach(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Idempotent.
	if err := b.Detach(); err != nil {
		t.Errorf("second Detach should not error, got %v", err)
	}

	// Operations fail after detach.
	if _, err := b.GetTable(types.TableServos); !errors.Is(err, types.ErrCatalogDetached) {
		t.Errorf("expected ErrCatalogDetached, got %v", err)
	}
}

func TestBackend_GetTable(t *testing.T) {
	b := NewBackend()
	if err := b.Attach(testConfig(t)); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	defer b.Detach()

	for _, name := range types.TableNames {
		if _, err := b.GetTable(name); err != nil {
			t.Errorf("GetTable(%q) failed: %v", name, err)
		}
	}

	if _, err := b.GetTable("gearboxes"); !errors.Is(err, types.ErrTableNotFound) {
		t.Errorf("expected ErrTableNotFound, got %v", err)
	}
}

func TestBackend_ReattachKeepsData(t *testing.T) {
	config := testConfig(t)

	b := NewBackend()
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}

	table, err := b.GetTable(types.TableServos)
	if err != nil {
		t.Fatalf("GetTable failed: %v", err)
	}
	custom := types.SG90()
	custom.Name = "mg996r"
	custom.BodyLength = 40.7
	id, err := table.Set("", &custom)
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// A fresh backend on the same data dir sees the entry via JSONL.
	b2 := NewBackend()
	if err := b2.Attach(config); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer b2.Detach()

	table2, err := b2.GetTable(types.TableServos)
	if err != nil {
		t.Fatalf("GetTable failed: %v", err)
	}
	got, err := table2.Get(id)
	if err != nil {
		t.Fatalf("Get after reattach failed: %v", err)
	}
	servo := got.(*types.Servo)
	if servo.Name != "mg996r" || servo.BodyLength != 40.7 {
		t.Errorf("reloaded servo mismatch: %+v", servo)
	}
}
