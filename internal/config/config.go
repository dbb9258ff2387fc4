// Package config loads the optional sidecar configuration file that
// tunes the interpreter's safety valves. The language has no
// infinite-loop watchdog by default; this package makes one available
// opt-in rather than silently changing the default.
//
// The file is named ".loxrc.json" and, when present, sits next to the
// script being run. It is validated against an embedded JSON Schema with
// github.com/santhosh-tekuri/jsonschema/v5, the same library the teacher
// uses to validate decorator parameter schemas in
// core/types/validation.go.
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/mod/semver"
)

// InterpreterVersion is compared against a config file's optional
// "minVersion" field using golang.org/x/mod/semver, the same dependency
// the teacher uses (core/types/validation.go) to gate parameter schemas
// by engine version.
const InterpreterVersion = "v1.0.0"

// Limits holds the safety-valve settings loadable from .loxrc.json.
// Zero values mean "unbounded", matching spec's default behavior.
type Limits struct {
	// MaxEnvironmentDepth caps the lexical scope chain length (0 = unbounded).
	MaxEnvironmentDepth int `json:"maxEnvironmentDepth"`
	// MaxLoopIterations caps how many times a single while/for loop body
	// may run (0 = unbounded), an opt-in watchdog.
	MaxLoopIterations int `json:"maxLoopIterations"`
	// MinVersion, if set, must be <= InterpreterVersion (semver.Compare).
	MinVersion string `json:"minVersion"`
}

// Default returns the unbounded configuration used when no .loxrc.json
// is present.
func Default() Limits {
	return Limits{}
}

const schemaDoc = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "maxEnvironmentDepth": {"type": "integer", "minimum": 0},
    "maxLoopIterations": {"type": "integer", "minimum": 0},
    "minVersion": {"type": "string"}
  }
}`

var compiledSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	c := jsonschema.NewCompiler()
	if err := c.AddResource("loxrc.schema.json", bytes.NewReader([]byte(schemaDoc))); err != nil {
		panic(fmt.Sprintf("config: invalid embedded schema: %v", err))
	}
	return c.MustCompile("loxrc.schema.json")
}

// LoadForScript looks for ".loxrc.json" next to scriptPath and, if
// present, validates and parses it. A missing file is not an error: it
// returns Default().
func LoadForScript(scriptPath string) (Limits, error) {
	dir := filepath.Dir(scriptPath)
	return Load(filepath.Join(dir, ".loxrc.json"))
}

// Load validates and parses the config file at path.
func Load(path string) (Limits, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("config: reading %s: %w", path, err)
	}

	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Default(), fmt.Errorf("config: %s is not valid JSON: %w", path, err)
	}
	if err := compiledSchema.Validate(raw); err != nil {
		return Default(), fmt.Errorf("config: %s failed schema validation: %w", path, err)
	}

	var limits Limits
	if err := json.Unmarshal(data, &limits); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}

	if limits.MinVersion != "" {
		want := limits.MinVersion
		if !semver.IsValid(want) {
			want = "v" + want
		}
		if semver.IsValid(want) && semver.Compare(InterpreterVersion, want) < 0 {
			return Default(), fmt.Errorf("config: %s requires interpreter >= %s, running %s",
				path, limits.MinVersion, InterpreterVersion)
		}
	}

	return limits, nil
}
