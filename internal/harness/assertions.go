package harness

import (
	"fmt"
	"strings"

	"github.com/abyssparanoia/blender-go/interop/interoptest"
	"github.com/abyssparanoia/blender-go/internal/ir"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type       string          // Assertion type for categorization
	Expected   string          // Human-readable expected outcome
	Actual     string          // Human-readable actual outcome
	Transcript []ir.CallRecord // Full journal for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	fmt.Fprintf(&buf, "\nFull transcript:\n")
	for _, rec := range e.Transcript {
		fmt.Fprintf(&buf, "  [%d] %s %s", rec.Seq, rec.Op, rec.Path)
		if rec.Outcome == ir.OutcomeError {
			fmt.Fprintf(&buf, " -> %s", rec.ErrorType)
		}
		buf.WriteByte('\n')
	}

	return buf.String()
}

// AssertionContext is what assertions evaluate against.
type AssertionContext struct {
	// Calls is the journal in seq order.
	Calls []ir.CallRecord

	// Host is the fake host in its final state.
	Host *interoptest.Host

	// ExpectedErrors holds the seqs of calls whose step declared
	// expect_error.
	ExpectedErrors map[int64]bool
}

// EvaluateAssertions checks every assertion and returns the failures in
// order. An empty slice means all passed.
func EvaluateAssertions(ac AssertionContext, assertions []Assertion) []error {
	var errs []error
	for _, a := range assertions {
		if err := evaluateAssertion(ac, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func evaluateAssertion(ac AssertionContext, a Assertion) error {
	switch a.Type {
	case AssertCallCount:
		return assertCallCount(ac.Calls, a)
	case AssertCallOrder:
		return assertCallOrder(ac.Calls, a)
	case AssertFinalValue:
		return assertFinalValue(ac, a)
	case AssertNoErrors:
		return assertNoErrors(ac)
	default:
		return fmt.Errorf("unknown assertion type: %s", a.Type)
	}
}

// assertCallCount checks how many journaled calls match the op and path
// filters. The hello is a call like any other.
func assertCallCount(calls []ir.CallRecord, a Assertion) error {
	count := 0
	for _, rec := range calls {
		if a.Op != "" && rec.Op != a.Op {
			continue
		}
		if a.Path != "" && rec.Path != a.Path {
			continue
		}
		count++
	}

	if count != a.Count {
		return &AssertionError{
			Type:       AssertCallCount,
			Expected:   fmt.Sprintf("%d call(s) matching %s", a.Count, describeFilter(a)),
			Actual:     fmt.Sprintf("%d call(s)", count),
			Transcript: calls,
		}
	}
	return nil
}

func describeFilter(a Assertion) string {
	op, path := a.Op, a.Path
	if op == "" {
		op = "*"
	}
	if path == "" {
		path = "*"
	}
	return op + " " + path
}

// assertCallOrder checks that the paths were called in the given order.
// Calls need not be adjacent; intervening calls are allowed.
func assertCallOrder(calls []ir.CallRecord, a Assertion) error {
	next := 0
	for _, rec := range calls {
		if next < len(a.Paths) && rec.Path == a.Paths[next] {
			next++
		}
	}
	if next == len(a.Paths) {
		return nil
	}

	return &AssertionError{
		Type:       AssertCallOrder,
		Expected:   fmt.Sprintf("calls in order %v", a.Paths),
		Actual:     fmt.Sprintf("%q missing after %v", a.Paths[next], a.Paths[:next]),
		Transcript: calls,
	}
}

// assertFinalValue reads a property from the host after the run.
func assertFinalValue(ac AssertionContext, a Assertion) error {
	want, err := nodeValue(&a.Expect)
	if err != nil {
		return fmt.Errorf("final_value %s: expect: %w", a.Path, err)
	}

	got, ok := ac.Host.Prop(a.Path)
	if !ok {
		return &AssertionError{
			Type:       AssertFinalValue,
			Expected:   fmt.Sprintf("%s = %s", a.Path, formatValue(want)),
			Actual:     "property not found",
			Transcript: ac.Calls,
		}
	}
	if !sameValue(want, got) {
		return &AssertionError{
			Type:       AssertFinalValue,
			Expected:   fmt.Sprintf("%s = %s", a.Path, formatValue(want)),
			Actual:     fmt.Sprintf("%s = %s", a.Path, formatValue(got)),
			Transcript: ac.Calls,
		}
	}
	return nil
}

// assertNoErrors checks that every failed call was expected to fail.
func assertNoErrors(ac AssertionContext) error {
	var failed []string
	for _, rec := range ac.Calls {
		if rec.Outcome == ir.OutcomeError && !ac.ExpectedErrors[rec.Seq] {
			failed = append(failed, fmt.Sprintf("[%d] %s %s: %s", rec.Seq, rec.Op, rec.Path, rec.ErrorType))
		}
	}
	if len(failed) == 0 {
		return nil
	}
	return &AssertionError{
		Type:       AssertNoErrors,
		Expected:   "no unexpected host errors",
		Actual:     strings.Join(failed, "; "),
		Transcript: ac.Calls,
	}
}
