package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/internal/ir"
)

// ReplayOptions holds flags for the replay command.
type ReplayOptions struct {
	*RootOptions
	Database string
	Session  string
	Live     bool
}

// ReplayMismatch is one call whose replayed answer differs from the
// journal.
type ReplayMismatch struct {
	Seq      int64  `json:"seq"`
	Op       string `json:"op"`
	Path     string `json:"path"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// ReplayResult holds the overall replay result.
type ReplayResult struct {
	Session    string           `json:"session"`
	Live       bool             `json:"live"`
	Calls      int              `json:"calls"`
	Replayed   int              `json:"replayed"`
	Mismatches []ReplayMismatch `json:"mismatches"`
	Match      bool             `json:"match"`
}

// NewReplayCommand creates the replay command.
func NewReplayCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ReplayOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Re-issue a journaled session and compare the answers",
		Long: `Re-issue every request of a journaled session in order and compare each
answer with the one recorded.

By default the requests are served by the replay transport, which checks
that the session can be reproduced from the journal alone. With --live they
are sent to the configured host instead, which shows where the host now
answers differently.

Exit codes:
  0 - Every answer matched
  1 - One or more answers differed
  2 - Command error (journal not found, host unreachable, etc.)

Examples:
  blender-go replay --db ./journal.db
  blender-go replay --db ./journal.db --session 0190c1a2-...
  blender-go replay --db ./journal.db --live --format json`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReplay(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to the journal database (required)")
	_ = cmd.MarkFlagRequired("db")
	cmd.Flags().StringVar(&opts.Session, "session", "", "session to replay (default: latest)")
	cmd.Flags().BoolVar(&opts.Live, "live", false, "send the requests to the configured host")

	return cmd
}

func runReplay(opts *ReplayOptions, cmd *cobra.Command) error {
	ctx := cmd.Context()
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout())
	logger := opts.logger()

	st, err := openJournal(opts.Database)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeJournal, err.Error(), nil, err)
	}
	defer st.Close()

	sess, err := resolveSession(cmd, st, opts.Session)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeJournal, err.Error(), nil, err)
	}
	calls, err := st.ReplayCalls(ctx, sess.ID)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeJournal, err.Error(), nil, err)
	}

	var client *interop.Client
	if opts.Live {
		c, closeAll, err := connect(cmd, opts.RootOptions, formatter)
		if err != nil {
			return err
		}
		defer closeAll()
		client = c
	} else {
		client = interop.New(interop.NewReplayTransport(calls),
			interop.WithLogger(logger),
			interop.WithSessionID("replay-"+sess.ID))
		defer client.Close()
	}

	result := ReplayResult{Session: sess.ID, Live: opts.Live, Calls: len(calls), Mismatches: []ReplayMismatch{}}
	for _, rc := range calls {
		req := rc.Request
		// A live client has already shaken hands with its own host.
		if opts.Live && req.Op == interop.OpHello {
			continue
		}
		value, err := client.Invoke(ctx, interop.Request{Op: req.Op, Path: req.Path, Value: req.Value, Args: req.Args})
		result.Replayed++

		mm, diverged := compareReplay(req, rc.Response, value, err)
		if !diverged {
			continue
		}
		result.Mismatches = append(result.Mismatches, mm)
		logger.Debug("replay mismatch", "seq", req.Seq, "op", req.Op, "path", req.Path, "actual", mm.Actual)

		var rme *interop.ReplayMismatchError
		if errors.As(err, &rme) {
			// The journal cannot serve anything past a diverged request.
			break
		}
	}
	result.Match = len(result.Mismatches) == 0

	if opts.Format == "json" {
		if !result.Match {
			return formatter.fail(ExitFailure, ErrCodeReplayDiff,
				fmt.Sprintf("%d of %d call(s) differ", len(result.Mismatches), result.Replayed), result, nil)
		}
		return formatter.Success(result)
	}
	return outputReplayText(cmd.OutOrStdout(), result)
}

// compareReplay checks a replayed answer against the recorded response.
func compareReplay(req interop.Request, recorded interop.Response, value ir.IRValue, err error) (ReplayMismatch, bool) {
	mm := ReplayMismatch{Seq: req.Seq, Op: string(req.Op), Path: req.Path, Expected: describeResponse(recorded)}

	var he *interop.HostError
	switch {
	case err == nil && recorded.OK:
		want := recorded.Value
		if want == nil {
			want = ir.IRNull{}
		}
		if formatRecorded(want) == formatRecorded(value) {
			return mm, false
		}
		mm.Actual = formatRecorded(value)
	case err == nil:
		mm.Actual = formatRecorded(value)
	case errors.As(err, &he):
		if !recorded.OK && recorded.Error != nil && recorded.Error.Type == he.Type {
			return mm, false
		}
		mm.Actual = fmt.Sprintf("%s: %s", he.Type, he.Message)
	default:
		mm.Actual = err.Error()
	}
	return mm, true
}

func describeResponse(resp interop.Response) string {
	if resp.OK {
		if resp.Value == nil {
			return "null"
		}
		return formatRecorded(resp.Value)
	}
	if resp.Error == nil {
		return "error"
	}
	return fmt.Sprintf("%s: %s", resp.Error.Type, resp.Error.Message)
}

func outputReplayText(w io.Writer, result ReplayResult) error {
	mode := "journal"
	if result.Live {
		mode = "live host"
	}
	fmt.Fprintf(w, "Replayed %d of %d call(s) from session %s against the %s\n",
		result.Replayed, result.Calls, result.Session, mode)

	if result.Match {
		fmt.Fprintln(w, "✓ All answers match")
		return nil
	}

	fmt.Fprintln(w)
	for _, m := range result.Mismatches {
		fmt.Fprintf(w, "✗ [%d] %s %s\n", m.Seq, m.Op, m.Path)
		fmt.Fprintf(w, "    expected: %s\n", m.Expected)
		fmt.Fprintf(w, "    actual:   %s\n", m.Actual)
	}
	return NewExitError(ExitFailure, fmt.Sprintf("%d of %d call(s) differ", len(result.Mismatches), result.Replayed))
}
