package harness

import "github.com/abyssparanoia/blender-go/internal/ir"

// Result is the outcome of a scenario execution.
type Result struct {
	// Name is the scenario name.
	Name string `json:"name"`

	// Pass indicates overall success: every step expectation and every
	// assertion held.
	Pass bool `json:"pass"`

	// SessionID is the journal session the run was recorded under.
	SessionID string `json:"session_id"`

	// HostVersion is the version the host reported at hello.
	HostVersion string `json:"host_version"`

	// Transcript is the journal of the run in seq order, hello included.
	Transcript []ir.CallRecord `json:"transcript"`

	// Errors contains failed expectations and assertions.
	// Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult(name string) *Result {
	return &Result{
		Name:       name,
		Pass:       true,
		Transcript: []ir.CallRecord{},
		Errors:     []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
