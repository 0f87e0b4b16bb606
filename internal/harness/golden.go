package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// Snapshot renders a result as the canonical JSON stored in golden files.
//
// Request IDs and call IDs are left out; seq already identifies each call
// and the rest of the record is what a reviewer reads. Arguments appear
// only when the call had any, the value only on success, the error only on
// failure.
func Snapshot(r *Result) ([]byte, error) {
	transcript := make(ir.IRArray, len(r.Transcript))
	for i, rec := range r.Transcript {
		entry := ir.IRObject{
			"seq":     ir.IRInt(rec.Seq),
			"op":      ir.IRString(rec.Op),
			"path":    ir.IRString(rec.Path),
			"outcome": ir.IRString(rec.Outcome),
		}
		if _, isNull := rec.Args.(ir.IRNull); !isNull && rec.Args != nil {
			entry["args"] = rec.Args
		}
		if rec.Outcome == ir.OutcomeOK {
			entry["value"] = rec.Value
		} else {
			entry["error"] = ir.IRObject{
				"type":    ir.IRString(rec.ErrorType),
				"message": ir.IRString(rec.ErrorMessage),
			}
		}
		transcript[i] = entry
	}

	return ir.MarshalCanonical(ir.IRObject{
		"scenario":     ir.IRString(r.Name),
		"host_version": ir.IRString(r.HostVersion),
		"transcript":   transcript,
	})
}

// RunWithGolden executes a scenario and compares its transcript with
// testdata/golden/<name>.golden. Regenerate with go test -update.
//
// Returns error if scenario execution fails.
// Test failure (via goldie) occurs if the transcript doesn't match.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(t.Context(), scenario)
	if err != nil {
		return nil, err
	}
	AssertGolden(t, result)
	return result, nil
}

// AssertGolden compares a result's transcript with its golden file.
func AssertGolden(t *testing.T, result *Result) {
	t.Helper()

	data, err := Snapshot(result)
	if err != nil {
		t.Fatalf("snapshot %s: %v", result.Name, err)
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, result.Name, data)
}
