// Tests for the JSONL persistence helpers.
package sqlite

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONL_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	records := []json.RawMessage{
		json.RawMessage(`{"name":"first"}`),
		json.RawMessage(`{"name":"second"}`),
	}

	if err := writeJSONL(path, records); err != nil {
		t.Fatalf("writeJSONL failed: %v", err)
	}

	got, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("read %d records, want 2", len(got))
	}
	for i := range records {
		if string(got[i]) != string(records[i]) {
			t.Errorf("record %d = %s, want %s", i, got[i], records[i])
		}
	}
}

func TestJSONL_MissingFile(t *testing.T) {
	got, err := readJSONL(filepath.Join(t.TempDir(), "absent.jsonl"))
	if err != nil {
		t.Fatalf("readJSONL on missing file: %v", err)
	}
	if got != nil {
		t.Errorf("expected no records, got %v", got)
	}
}

func TestJSONL_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dirty.jsonl")
	content := `{"name":"good"}
not json at all

{"name":"also good"}
{"truncated":
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	got, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("read %d records, want 2", len(got))
	}
}

func TestJSONL_WriteReplacesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.jsonl")
	if err := writeJSONL(path, []json.RawMessage{json.RawMessage(`{"v":1}`)}); err != nil {
		t.Fatalf("first write failed: %v", err)
	}
	if err := writeJSONL(path, []json.RawMessage{json.RawMessage(`{"v":2}`)}); err != nil {
		t.Fatalf("second write failed: %v", err)
	}

	got, err := readJSONL(path)
	if err != nil {
		t.Fatalf("readJSONL failed: %v", err)
	}
	if len(got) != 1 || string(got[0]) != `{"v":2}` {
		t.Errorf("got %v, want single {\"v\":2}", got)
	}

	// No stray temp files left behind.
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("reading dir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("directory has %d entries, want 1", len(entries))
	}
}
