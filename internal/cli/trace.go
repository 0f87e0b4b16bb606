package cli

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abyssparanoia/blender-go/internal/ir"
	"github.com/abyssparanoia/blender-go/internal/store"
)

// TraceOptions holds flags for the trace command.
type TraceOptions struct {
	*RootOptions
	Database string
	Session  string
	Op       string
	Prefix   string
	Outcome  string
	Limit    int
	List     bool
}

// TraceResult holds the complete trace output.
type TraceResult struct {
	Session ir.Session      `json:"session"`
	Calls   []ir.CallRecord `json:"calls"`
	Stats   TraceStats      `json:"stats"`
}

// TraceStats holds summary statistics for the selected calls.
type TraceStats struct {
	Total  int            `json:"total"`
	OK     int            `json:"ok"`
	Errors int            `json:"errors"`
	ByOp   map[string]int `json:"by_op"`
}

// NewTraceCommand creates the trace command.
func NewTraceCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TraceOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show the journaled calls of a session",
		Long: `Print the calls a session made to the host, in the order they were
issued, with the value or exception each returned.

Without --session the most recent session is shown. Filters narrow the
calls by operation, accessor path prefix and outcome.

Examples:
  blender-go trace --db ~/.config/blender-go/journal.db
  blender-go trace --db ./journal.db --session 0190c1a2-... --outcome error
  blender-go trace --db ./journal.db --prefix 'bpy.data.objects' --op set
  blender-go trace --db ./journal.db --list`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTrace(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the journal database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Session, "session", "", "session to show (default: latest)")
	cmd.Flags().StringVar(&opts.Op, "op", "", "only calls with this operation")
	cmd.Flags().StringVar(&opts.Prefix, "prefix", "", "only calls whose path starts with this prefix")
	cmd.Flags().StringVar(&opts.Outcome, "outcome", "", "only calls with this outcome (ok|error)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "maximum number of calls to show")
	cmd.Flags().BoolVar(&opts.List, "list", false, "list recorded sessions instead of calls")

	return cmd
}

func runTrace(opts *TraceOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout())

	st, err := openJournal(opts.Database)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeJournal, err.Error(), nil, err)
	}
	defer st.Close()

	if opts.List {
		sessions, err := st.ReadSessions(ctx)
		if err != nil {
			return formatter.fail(ExitCommandError, ErrCodeJournal, err.Error(), nil, err)
		}
		if opts.Format == "json" {
			return formatter.Success(sessions)
		}
		return outputSessionsText(cmd, st, sessions)
	}

	sess, err := resolveSession(cmd, st, opts.Session)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeJournal, err.Error(), nil, err)
	}

	calls, err := st.ReadCalls(ctx, store.Filter{
		SessionID:  sess.ID,
		Op:         opts.Op,
		PathPrefix: opts.Prefix,
		Outcome:    ir.CallOutcome(opts.Outcome),
		Limit:      opts.Limit,
	})
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeJournal, err.Error(), nil, err)
	}

	result := TraceResult{Session: sess, Calls: calls, Stats: traceStats(calls)}
	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return outputTraceText(cmd.OutOrStdout(), result)
}

// openJournal opens an existing journal. A missing file is an error rather
// than an empty journal.
func openJournal(path string) (*store.Store, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("journal not found: %s", path)
		}
		return nil, fmt.Errorf("journal %s: %w", path, err)
	}
	return store.Open(path)
}

// resolveSession returns the named session, or the latest when id is empty.
func resolveSession(cmd *cobra.Command, st *store.Store, id string) (ir.Session, error) {
	if id == "" {
		sess, err := st.LatestSession(cmd.Context())
		if errors.Is(err, sql.ErrNoRows) {
			return ir.Session{}, fmt.Errorf("journal has no sessions")
		}
		return sess, err
	}
	sess, err := st.ReadSession(cmd.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return ir.Session{}, fmt.Errorf("session not found: %s", id)
	}
	return sess, err
}

func traceStats(calls []ir.CallRecord) TraceStats {
	stats := TraceStats{Total: len(calls), ByOp: map[string]int{}}
	for _, c := range calls {
		if c.Outcome == ir.OutcomeOK {
			stats.OK++
		} else {
			stats.Errors++
		}
		stats.ByOp[c.Op]++
	}
	return stats
}

func outputTraceText(w io.Writer, result TraceResult) error {
	s := result.Session
	fmt.Fprintf(w, "Session %s (host %s, protocol %s, %s)\n", s.ID, s.HostVersion, s.ProtocolVersion, s.Transport)
	if len(result.Calls) == 0 {
		fmt.Fprintln(w, "No calls match.")
		return nil
	}
	fmt.Fprintln(w)
	for _, c := range result.Calls {
		fmt.Fprintf(w, "  [%d] %s %s", c.Seq, c.Op, c.Path)
		if args := formatRecorded(c.Args); args != "null" {
			fmt.Fprintf(w, " %s", args)
		}
		if c.Outcome == ir.OutcomeOK {
			fmt.Fprintf(w, " -> %s\n", formatRecorded(c.Value))
		} else {
			fmt.Fprintf(w, " ✗ %s: %s\n", c.ErrorType, c.ErrorMessage)
		}
	}
	fmt.Fprintf(w, "\n%d call(s): %d ok, %d error(s)\n", result.Stats.Total, result.Stats.OK, result.Stats.Errors)
	return nil
}

func outputSessionsText(cmd *cobra.Command, st *store.Store, sessions []ir.Session) error {
	w := cmd.OutOrStdout()
	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded.")
		return nil
	}
	for _, s := range sessions {
		n, err := st.CountCalls(cmd.Context(), s.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s  host %s  %s  %d call(s)\n", s.ID, s.HostVersion, s.Transport, n)
	}
	return nil
}

// formatRecorded renders a journaled value as canonical JSON.
func formatRecorded(v ir.IRValue) string {
	data, err := ir.MarshalCanonical(v)
	if err != nil {
		return fmt.Sprintf("<%v>", err)
	}
	return string(data)
}
