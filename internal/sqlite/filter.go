// Shared helpers for table accessors: filter compilation and timestamp
// round-tripping.
package sqlite

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/mesh-robotics/robocad/pkg/types"
)

// buildFilter compiles an equality filter map into a WHERE clause and
// arguments. Keys must appear in columns; string values are allowed only on
// the name column, numbers on the rest. Returns ErrInvalidFilter otherwise.
func buildFilter(filter map[string]any, columns map[string]string) (string, []any, error) {
	if len(filter) == 0 {
		return "", nil, nil
	}

	keys := make([]string, 0, len(filter))
	for k := range filter {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var clauses []string
	var args []any
	for _, key := range keys {
		col, ok := columns[key]
		if !ok {
			return "", nil, fmt.Errorf("unknown filter key %q: %w", key, types.ErrInvalidFilter)
		}
		value := filter[key]
		switch v := value.(type) {
		case string:
			if col != "name" {
				return "", nil, fmt.Errorf("filter %q wants a number: %w", key, types.ErrInvalidFilter)
			}
			args = append(args, v)
		case float64:
			args = append(args, v)
		case int:
			args = append(args, float64(v))
		case int64:
			args = append(args, float64(v))
		default:
			return "", nil, fmt.Errorf("filter %q value %T: %w", key, value, types.ErrInvalidFilter)
		}
		clauses = append(clauses, col+" = ?")
	}
	return " WHERE " + strings.Join(clauses, " AND "), args, nil
}

// formatTime serializes a timestamp for storage.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// parseTime deserializes a stored timestamp. Unparseable values yield the
// zero time rather than an error; the JSONL source of truth keeps the
// original.
func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
