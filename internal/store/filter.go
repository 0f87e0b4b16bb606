package store

import (
	"fmt"
	"strings"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// Filter selects journaled calls. Zero fields match everything.
type Filter struct {
	SessionID  string
	Op         string
	PathPrefix string
	Outcome    ir.CallOutcome
	Limit      int
}

// validOutcomes lists the outcomes a filter may name.
var validOutcomes = map[ir.CallOutcome]bool{
	ir.OutcomeOK:    true,
	ir.OutcomeError: true,
}

// Compile converts f to a parameterized query over calls.
// Every value is bound as a parameter, and the query always ends in the
// deterministic ORDER BY.
func (f Filter) Compile() (string, []any, error) {
	if f.Outcome != "" && !validOutcomes[f.Outcome] {
		return "", nil, fmt.Errorf("invalid outcome %q (want ok or error)", f.Outcome)
	}
	if f.Limit < 0 {
		return "", nil, fmt.Errorf("invalid limit %d", f.Limit)
	}

	var where []string
	var params []any
	if f.SessionID != "" {
		where = append(where, "session_id = ?")
		params = append(params, f.SessionID)
	}
	if f.Op != "" {
		where = append(where, "op = ?")
		params = append(params, f.Op)
	}
	if f.PathPrefix != "" {
		// LIKE folds ASCII case; accessors are case-sensitive.
		where = append(where, "substr(path, 1, length(?)) = ?")
		params = append(params, f.PathPrefix, f.PathPrefix)
	}
	if f.Outcome != "" {
		where = append(where, "outcome = ?")
		params = append(params, string(f.Outcome))
	}

	var b strings.Builder
	b.WriteString("SELECT " + callColumns + " FROM calls")
	if len(where) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}
	b.WriteString(" ORDER BY seq ASC, id COLLATE BINARY ASC")
	if f.Limit > 0 {
		b.WriteString(" LIMIT ?")
		params = append(params, f.Limit)
	}
	return b.String(), params, nil
}
