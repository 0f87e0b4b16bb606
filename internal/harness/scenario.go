package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/abyssparanoia/blender-go/interop"
)

// Scenario is one scripted session against the in-memory host.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// HostVersion is the version the host reports at hello.
	// Defaults to interoptest.DefaultVersion.
	HostVersion string `yaml:"host_version,omitempty"`

	// SessionID fixes the journal session. Defaults to "scenario-<name>".
	SessionID string `yaml:"session_id,omitempty"`

	// Objects seed the host before the client connects.
	Objects []ObjectSeed `yaml:"objects"`

	// Steps are issued in order, one request each.
	Steps []Step `yaml:"steps"`

	// Assertions validate the journal and the host's final state.
	Assertions []Assertion `yaml:"assertions"`
}

// ObjectSeed describes one host object. Top-level seeds name a Path;
// collection items name a Key instead.
type ObjectSeed struct {
	Path     string                `yaml:"path,omitempty"`
	Key      string                `yaml:"key,omitempty"`
	Class    string                `yaml:"class"`
	Props    map[string]any        `yaml:"props,omitempty"`
	Readonly []string              `yaml:"readonly,omitempty"`
	Methods  map[string]MethodSeed `yaml:"methods,omitempty"`

	// Collection marks the object as a collection even when Items is empty.
	Collection bool         `yaml:"collection,omitempty"`
	Items      []ObjectSeed `yaml:"items,omitempty"`
}

// MethodSeed is a canned host method. It either returns a fixed value or
// raises a host exception.
type MethodSeed struct {
	Returns yaml.Node  `yaml:"returns,omitempty"`
	Raise   *RaiseSeed `yaml:"raise,omitempty"`
}

// RaiseSeed is the exception a canned method raises.
type RaiseSeed struct {
	Type    string `yaml:"type"`
	Message string `yaml:"message"`
}

// Step issues one request. Exactly one of Get, Set, Call, Len and Keys is
// set; it holds the accessor path.
type Step struct {
	Get  string `yaml:"get,omitempty"`
	Set  string `yaml:"set,omitempty"`
	Call string `yaml:"call,omitempty"`
	Len  string `yaml:"len,omitempty"`
	Keys string `yaml:"keys,omitempty"`

	// Value is the assigned value (set only).
	Value yaml.Node `yaml:"value,omitempty"`

	// Args are the keyword arguments (call only).
	Args map[string]any `yaml:"args,omitempty"`

	// Expect is compared with the returned value when present.
	Expect yaml.Node `yaml:"expect,omitempty"`

	// ExpectError is the host exception type the step must raise,
	// e.g. "AttributeError".
	ExpectError string `yaml:"expect_error,omitempty"`
}

// Assertion validates the journal or the host's final state.
type Assertion struct {
	// Type specifies the assertion type:
	// - "call_count": Check how many calls match Op and Path
	// - "call_order": Check Paths were called in order
	// - "final_value": Check the host property at Path
	// - "no_errors": Check no call failed unexpectedly
	Type string `yaml:"type"`

	// Op filters call_count. Empty matches every op.
	Op string `yaml:"op,omitempty"`

	// Path filters call_count and names the property for final_value.
	Path string `yaml:"path,omitempty"`

	// Count is the expected number of calls (call_count).
	Count int `yaml:"count,omitempty"`

	// Paths is the expected call order (call_order).
	Paths []string `yaml:"paths,omitempty"`

	// Expect is the expected property value (final_value).
	Expect yaml.Node `yaml:"expect,omitempty"`
}

// Assertion type constants.
const (
	AssertCallCount  = "call_count"
	AssertCallOrder  = "call_order"
	AssertFinalValue = "final_value"
	AssertNoErrors   = "no_errors"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// Op returns the step's operation and accessor path.
func (s Step) Op() (interop.Op, string) {
	switch {
	case s.Get != "":
		return interop.OpGet, s.Get
	case s.Set != "":
		return interop.OpSet, s.Set
	case s.Call != "":
		return interop.OpCall, s.Call
	case s.Len != "":
		return interop.OpLen, s.Len
	case s.Keys != "":
		return interop.OpKeys, s.Keys
	}
	return "", ""
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	seen := make(map[string]bool)
	for i, obj := range s.Objects {
		if obj.Path == "" {
			return fmt.Errorf("objects[%d]: path is required", i)
		}
		if seen[obj.Path] {
			return fmt.Errorf("objects[%d]: duplicate path %s", i, obj.Path)
		}
		seen[obj.Path] = true
		if err := validateObject(fmt.Sprintf("objects[%d]", i), obj); err != nil {
			return err
		}
	}

	for i, step := range s.Steps {
		if err := validateStep(i, step); err != nil {
			return err
		}
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

func validateObject(where string, obj ObjectSeed) error {
	if obj.Class == "" {
		return fmt.Errorf("%s: class is required", where)
	}
	for _, name := range obj.Readonly {
		if _, ok := obj.Props[name]; !ok {
			return fmt.Errorf("%s: readonly property %s has no value", where, name)
		}
	}
	for name, m := range obj.Methods {
		if m.Raise != nil && m.Raise.Type == "" {
			return fmt.Errorf("%s.methods.%s: raise type is required", where, name)
		}
	}
	keys := make(map[string]bool)
	for i, item := range obj.Items {
		at := fmt.Sprintf("%s.items[%d]", where, i)
		if item.Path != "" {
			return fmt.Errorf("%s: items take a key, not a path", at)
		}
		if item.Key == "" {
			return fmt.Errorf("%s: key is required", at)
		}
		if keys[item.Key] {
			return fmt.Errorf("%s: duplicate key %q", at, item.Key)
		}
		keys[item.Key] = true
		if err := validateObject(at, item); err != nil {
			return err
		}
	}
	return nil
}

// validateStep checks that a step names exactly one operation and only
// carries the fields that operation uses.
func validateStep(index int, s Step) error {
	n := 0
	for _, p := range []string{s.Get, s.Set, s.Call, s.Len, s.Keys} {
		if p != "" {
			n++
		}
	}
	if n != 1 {
		return fmt.Errorf("steps[%d]: exactly one of get, set, call, len, keys is required", index)
	}

	op, _ := s.Op()
	if op == interop.OpSet && s.Value.Kind == 0 {
		return fmt.Errorf("steps[%d]: value is required for set", index)
	}
	if op != interop.OpSet && s.Value.Kind != 0 {
		return fmt.Errorf("steps[%d]: value is only valid for set", index)
	}
	if op != interop.OpCall && s.Args != nil {
		return fmt.Errorf("steps[%d]: args is only valid for call", index)
	}
	if s.Expect.Kind != 0 && s.ExpectError != "" {
		return fmt.Errorf("steps[%d]: expect and expect_error are mutually exclusive", index)
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertCallCount:
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for call_count", index)
		}
		if a.Op != "" && !interop.ValidOps[interop.Op(a.Op)] {
			return fmt.Errorf("assertions[%d]: unknown op %q", index, a.Op)
		}
	case AssertCallOrder:
		if len(a.Paths) == 0 {
			return fmt.Errorf("assertions[%d]: paths list is required for call_order", index)
		}
	case AssertFinalValue:
		if a.Path == "" {
			return fmt.Errorf("assertions[%d]: path is required for final_value", index)
		}
		if a.Expect.Kind == 0 {
			return fmt.Errorf("assertions[%d]: expect is required for final_value", index)
		}
	case AssertNoErrors:
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}

	return nil
}
