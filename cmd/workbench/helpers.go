// Shared helpers for workbench CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-robotics/robocad/pkg/cad"
	"github.com/mesh-robotics/robocad/pkg/parts"
	"github.com/mesh-robotics/robocad/pkg/sqlite"
	"github.com/mesh-robotics/robocad/pkg/types"
)

// validPartNamesStr is a comma-separated list of registered part names for
// error output.
var validPartNamesStr = strings.Join(parts.Names(), ", ")

// attachBackend resolves the data directory, creates a SQLite catalog, and
// attaches it. The caller must defer catalog.Detach().
func attachBackend() (types.Catalog, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend: types.BackendSQLite,
		DataDir: dataDir,
	}

	catalog := sqlite.NewCatalog()
	if err := catalog.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach catalog: %w", err)
	}

	return catalog, nil
}

// newPart constructs the named part with its defaults, then overlays any
// JSON parameter overrides onto it.
func newPart(name string, paramsJSON string) (cad.Component, error) {
	entry, ok := parts.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown part %q (valid: %s)", name, validPartNamesStr)
	}

	part := entry.New()
	if paramsJSON != "" {
		if err := json.Unmarshal([]byte(paramsJSON), part); err != nil {
			return nil, fmt.Errorf("parse params: %w", err)
		}
	}
	return part, nil
}

// setDeviceSpec installs a catalog entity into the part it parameterizes.
// Servo specs fit the servo parts, sonar specs fit the sonar bracket.
func setDeviceSpec(part cad.Component, entity any) error {
	switch p := part.(type) {
	case *parts.ServoMountPlate:
		servo, ok := entity.(*types.Servo)
		if !ok {
			return fmt.Errorf("part %T needs a servo spec, got %T", part, entity)
		}
		p.Spec = *servo
	case *parts.ServoFrustumMount:
		servo, ok := entity.(*types.Servo)
		if !ok {
			return fmt.Errorf("part %T needs a servo spec, got %T", part, entity)
		}
		p.Spec = *servo
	case *parts.UltrasonicSensorMount:
		board, ok := entity.(*types.SonarBoard)
		if !ok {
			return fmt.Errorf("part %T needs a sonar spec, got %T", part, entity)
		}
		p.Spec = *board
	default:
		return fmt.Errorf("part %T takes no device spec", part)
	}
	return nil
}

// resolveEntity looks up a catalog entity by ID first, then by name.
func resolveEntity(table types.Table, idOrName string) (any, error) {
	entity, err := table.Get(idOrName)
	if err == nil {
		return entity, nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return nil, err
	}

	matches, err := table.Fetch(map[string]any{"name": idOrName})
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%q: %w", idOrName, types.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("name %q matches %d entries, use the id", idOrName, len(matches))
	}
}

// applyDeviceFlags pulls a device spec from the catalog when --servo or
// --sonar was given and installs it into the part. At most one of the two
// may be set. The catalog is only opened when a flag is present.
func applyDeviceFlags(part cad.Component, servoRef, sonarRef string) error {
	if servoRef == "" && sonarRef == "" {
		return nil
	}
	if servoRef != "" && sonarRef != "" {
		return errors.New("--servo and --sonar are mutually exclusive")
	}

	catalog, err := attachBackend()
	if err != nil {
		return err
	}
	defer catalog.Detach()

	tableName, ref := types.TableServos, servoRef
	if sonarRef != "" {
		tableName, ref = types.TableSonars, sonarRef
	}

	table, err := catalog.GetTable(tableName)
	if err != nil {
		return fmt.Errorf("get %s table: %w", tableName, err)
	}
	entity, err := resolveEntity(table, ref)
	if err != nil {
		return fmt.Errorf("resolve %s: %w", ref, err)
	}

	return setDeviceSpec(part, entity)
}

// parseFilterArgs converts key=value arguments into a Fetch filter. Values
// are parsed as JSON when possible so numbers filter numerically.
func parseFilterArgs(args []string) (map[string]any, error) {
	filter := make(map[string]any)
	for _, arg := range args {
		kv := strings.SplitN(arg, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid filter %q (expected key=value)", arg)
		}
		key := kv[0]
		value := kv[1]

		var parsed any
		if err := json.Unmarshal([]byte(value), &parsed); err != nil {
			parsed = value
		}
		filter[key] = parsed
	}
	return filter, nil
}

// printJSON pretty-prints v as indented JSON.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
