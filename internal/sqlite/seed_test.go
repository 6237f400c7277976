// Tests for preset seeding on attach.
package sqlite

import (
	"testing"

	"github.com/mesh-robotics/robocad/pkg/types"
)

func TestSeed_PresetsOnFreshCatalog(t *testing.T) {
	b := attachedBackend(t)

	servos, err := mustTable(t, b, types.TableServos).Fetch(map[string]any{"name": "sg90"})
	if err != nil {
		t.Fatalf("fetching sg90: %v", err)
	}
	if len(servos) != 1 {
		t.Fatalf("expected seeded sg90, got %d entries", len(servos))
	}
	sg90 := servos[0].(*types.Servo)
	want := types.SG90()
	if sg90.BodyWidth != want.BodyWidth || sg90.ScrewSpacingX != want.ScrewSpacingX {
		t.Errorf("seeded sg90 dimensions mismatch: %+v", sg90)
	}
	if sg90.ServoID == "" {
		t.Error("seeded sg90 has no id")
	}

	sonars, err := mustTable(t, b, types.TableSonars).Fetch(map[string]any{"name": "hc-sr04"})
	if err != nil {
		t.Fatalf("fetching hc-sr04: %v", err)
	}
	if len(sonars) != 1 {
		t.Fatalf("expected seeded hc-sr04, got %d entries", len(sonars))
	}
}

func TestSeed_SkippedWhenCatalogPopulated(t *testing.T) {
	config := testConfig(t)

	b := NewBackend()
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	table := mustTable(t, b, types.TableServos)

	// Replace the seeded preset with a tweaked one under the same name.
	seeded, err := table.Fetch(map[string]any{"name": "sg90"})
	if err != nil || len(seeded) != 1 {
		t.Fatalf("fetching seeded sg90: %v (%d entries)", err, len(seeded))
	}
	tweaked := *seeded[0].(*types.Servo)
	tweaked.BodyHeight = 24.0
	if _, err := table.Set(tweaked.ServoID, &tweaked); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := b.Detach(); err != nil {
		t.Fatalf("Detach failed: %v", err)
	}

	// Re-attach must not overwrite the tweak with the factory preset.
	b2 := NewBackend()
	if err := b2.Attach(config); err != nil {
		t.Fatalf("re-Attach failed: %v", err)
	}
	defer b2.Detach()

	again, err := mustTable(t, b2, types.TableServos).Fetch(map[string]any{"name": "sg90"})
	if err != nil {
		t.Fatalf("fetching sg90 after reattach: %v", err)
	}
	if len(again) != 1 {
		t.Fatalf("expected 1 sg90 after reattach, got %d", len(again))
	}
	if got := again[0].(*types.Servo).BodyHeight; got != 24.0 {
		t.Errorf("body height = %v, want tweaked 24", got)
	}
}

func mustTable(t *testing.T, b *Backend, name string) types.Table {
	t.Helper()
	table, err := b.GetTable(name)
	if err != nil {
		t.Fatalf("GetTable(%q) failed: %v", name, err)
	}
	return table
}
