package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/abyssparanoia/blender-go/interop"
	"github.com/abyssparanoia/blender-go/interop/interoptest"
	"github.com/abyssparanoia/blender-go/internal/ir"
	"github.com/abyssparanoia/blender-go/internal/store"
	"github.com/abyssparanoia/blender-go/internal/testutil"
)

// RunOption configures Run.
type RunOption func(*runConfig)

type runConfig struct {
	logger *slog.Logger
}

// WithLogger sets the logger handed to the client. Runs are silent by
// default.
func WithLogger(l *slog.Logger) RunOption {
	return func(c *runConfig) {
		c.logger = l
	}
}

// Run executes a scenario against a freshly seeded in-memory host.
//
// The error is non-nil only when the scenario could not run at all (bad
// seed values, failed handshake, journal failure). Failed expectations and
// assertions are reported in Result.Errors.
func Run(ctx context.Context, scenario *Scenario, opts ...RunOption) (*Result, error) {
	cfg := runConfig{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&cfg)
	}

	host, err := seedHost(scenario)
	if err != nil {
		return nil, fmt.Errorf("seed host: %w", err)
	}

	st, err := store.Open(store.MemoryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create store: %w", err)
	}
	defer st.Close()

	sessionID := scenario.SessionID
	if sessionID == "" {
		sessionID = "scenario-" + scenario.Name
	}

	client := interop.New(interoptest.Transport(host),
		interop.WithRecorder(store.NewRecorder(st)),
		interop.WithSessionID(sessionID),
		interop.WithIDGenerator(testutil.NewSequentialIDs(sessionID)),
		interop.WithLogger(cfg.logger))
	defer client.Close()

	info, err := client.Hello(ctx)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}

	result := NewResult(scenario.Name)
	result.SessionID = sessionID
	result.HostVersion = info.Version

	// A step that fails before reaching the host sends nothing, so the
	// seq of an expected error is taken from what the host actually saw.
	expected := make(map[int64]bool)
	for i, step := range scenario.Steps {
		before := len(host.Calls())
		if err := runStep(ctx, client, step); err != nil {
			result.AddError(fmt.Sprintf("steps[%d]: %v", i, err))
		}
		if sent := host.Calls(); step.ExpectError != "" && len(sent) > before {
			expected[sent[len(sent)-1].Seq] = true
		}
	}
	client.Close()

	calls, err := st.ReadCalls(ctx, store.Filter{SessionID: sessionID})
	if err != nil {
		return nil, fmt.Errorf("read journal: %w", err)
	}
	result.Transcript = calls

	ac := AssertionContext{Calls: calls, Host: host, ExpectedErrors: expected}
	for _, err := range EvaluateAssertions(ac, scenario.Assertions) {
		result.AddError(err.Error())
	}

	return result, nil
}

// runStep issues one step and checks its expectation.
func runStep(ctx context.Context, c interop.Caller, step Step) error {
	op, path := step.Op()
	req := interop.Request{Op: op, Path: path}
	switch op {
	case interop.OpSet:
		v, err := nodeValue(&step.Value)
		if err != nil {
			return fmt.Errorf("set %s: value: %w", path, err)
		}
		req.Value = v
	case interop.OpCall:
		if step.Args != nil {
			args, err := toIRObject(step.Args)
			if err != nil {
				return fmt.Errorf("call %s: args: %w", path, err)
			}
			req.Args = args
		}
	}

	got, err := c.Invoke(ctx, req)
	if step.ExpectError != "" {
		var he *interop.HostError
		if !errors.As(err, &he) {
			if err == nil {
				return fmt.Errorf("%s %s: expected %s, got %s", op, path, step.ExpectError, formatValue(got))
			}
			return fmt.Errorf("%s %s: expected %s, got %w", op, path, step.ExpectError, err)
		}
		if he.Type != step.ExpectError {
			return fmt.Errorf("%s %s: expected %s, got %s: %s", op, path, step.ExpectError, he.Type, he.Message)
		}
		return nil
	}
	if err != nil {
		return err
	}

	if step.Expect.Kind != 0 {
		want, err := nodeValue(&step.Expect)
		if err != nil {
			return fmt.Errorf("%s %s: expect: %w", op, path, err)
		}
		if !sameValue(want, got) {
			return fmt.Errorf("%s %s: expected %s, got %s", op, path, formatValue(want), formatValue(got))
		}
	}
	return nil
}

// seedHost builds the host a scenario starts from.
func seedHost(s *Scenario) (*interoptest.Host, error) {
	var opts []interoptest.HostOption
	if s.HostVersion != "" {
		opts = append(opts, interoptest.WithVersion(s.HostVersion))
	}
	h := interoptest.NewHost(opts...)

	for i, seed := range s.Objects {
		obj, err := buildObject(seed)
		if err != nil {
			return nil, fmt.Errorf("objects[%d] %s: %w", i, seed.Path, err)
		}
		h.Add(seed.Path, obj)
	}
	return h, nil
}

func buildObject(seed ObjectSeed) (*interoptest.Object, error) {
	obj := &interoptest.Object{
		Class:      seed.Class,
		Props:      make(map[string]ir.IRValue, len(seed.Props)),
		Collection: seed.Collection,
	}
	for name, raw := range seed.Props {
		v, err := toIRValue(raw)
		if err != nil {
			return nil, fmt.Errorf("props.%s: %w", name, err)
		}
		obj.Props[name] = v
	}

	if len(seed.Readonly) > 0 {
		obj.Readonly = make(map[string]bool, len(seed.Readonly))
		for _, name := range seed.Readonly {
			obj.Readonly[name] = true
		}
	}

	if len(seed.Methods) > 0 {
		obj.Methods = make(map[string]interoptest.Method, len(seed.Methods))
		for name, m := range seed.Methods {
			fn, err := cannedMethod(m)
			if err != nil {
				return nil, fmt.Errorf("methods.%s: %w", name, err)
			}
			obj.Methods[name] = fn
		}
	}

	for _, item := range seed.Items {
		child, err := buildObject(item)
		if err != nil {
			return nil, fmt.Errorf("items[%q]: %w", item.Key, err)
		}
		obj.Items = append(obj.Items, interoptest.Item{Key: item.Key, Object: child})
	}
	return obj, nil
}

// cannedMethod turns a method seed into a fake host method.
func cannedMethod(m MethodSeed) (interoptest.Method, error) {
	if m.Raise != nil {
		raise := &interoptest.Raise{Type: m.Raise.Type, Message: m.Raise.Message}
		return func(ir.IRObject) (ir.IRValue, error) {
			return nil, raise
		}, nil
	}

	var ret ir.IRValue = ir.IRNull{}
	if m.Returns.Kind != 0 {
		v, err := nodeValue(&m.Returns)
		if err != nil {
			return nil, fmt.Errorf("returns: %w", err)
		}
		ret = v
	}
	return func(ir.IRObject) (ir.IRValue, error) {
		return ret, nil
	}, nil
}
