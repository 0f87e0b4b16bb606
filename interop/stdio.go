package interop

import (
	"bufio"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"
	"time"
)

//go:embed bridge.py
var bridgeScript []byte

// BridgeScript returns the Python bridge run inside the host.
func BridgeScript() []byte {
	return bridgeScript
}

// DefaultHostArgs are passed to the host executable before the bridge.
var DefaultHostArgs = []string{"--background", "--factory-startup"}

// stopGrace is how long Close waits for the host to exit after stdin closes.
const stopGrace = 5 * time.Second

// StdioTransport runs the host as a child process and speaks the framed
// protocol over its stdin and stdout.
type StdioTransport struct {
	*StreamTransport

	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *os.File
	script string
	logger *slog.Logger

	stopOnce sync.Once
	stopErr  error
	exited   chan struct{}
}

// StartStdio writes the bridge to a temp file and starts
// "<executable> <args...> --python <bridge>". ctx bounds startup only.
func StartStdio(ctx context.Context, executable string, args []string, logger *slog.Logger) (*StdioTransport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if args == nil {
		args = DefaultHostArgs
	}

	f, err := os.CreateTemp("", "blender-go-bridge-*.py")
	if err != nil {
		return nil, fmt.Errorf("write bridge: %w", err)
	}
	script := f.Name()
	if _, err := f.Write(bridgeScript); err != nil {
		f.Close()
		os.Remove(script)
		return nil, fmt.Errorf("write bridge: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(script)
		return nil, fmt.Errorf("write bridge: %w", err)
	}

	cmdArgs := append(append([]string{}, args...), "--python", script)
	cmd := exec.Command(executable, cmdArgs...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		os.Remove(script)
		return nil, fmt.Errorf("start host: %w", err)
	}
	// Plain pipes rather than StdoutPipe: cmd.Wait must not close the read
	// ends while the reader goroutine is still draining them.
	stdout, stdoutW, err := os.Pipe()
	if err != nil {
		os.Remove(script)
		return nil, fmt.Errorf("start host: %w", err)
	}
	stderr, stderrW, err := os.Pipe()
	if err != nil {
		stdout.Close()
		stdoutW.Close()
		os.Remove(script)
		return nil, fmt.Errorf("start host: %w", err)
	}
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW
	startErr := cmd.Start()
	stdoutW.Close()
	stderrW.Close()
	if startErr != nil {
		stdout.Close()
		stderr.Close()
		os.Remove(script)
		return nil, fmt.Errorf("start host %s: %w", executable, startErr)
	}
	logger.Info("host started", "executable", executable, "pid", cmd.Process.Pid)

	t := &StdioTransport{
		cmd:    cmd,
		stdin:  stdin,
		stdout: stdout,
		script: script,
		logger: logger,
		exited: make(chan struct{}),
	}
	t.StreamTransport = NewStreamTransport(stdout, stdin, closerFunc(t.stop),
		WithStreamLogger(logger), WithStreamKind("stdio"))

	go func() {
		defer stderr.Close()
		sc := bufio.NewScanner(stderr)
		for sc.Scan() {
			logger.Debug("host stderr", "line", sc.Text())
		}
	}()
	go func() {
		err := cmd.Wait()
		logger.Info("host exited", "pid", cmd.Process.Pid, "error", err)
		close(t.exited)
	}()

	return t, nil
}

// Kind implements the journal naming hook.
func (t *StdioTransport) Kind() string { return "stdio" }

// stop closes stdin, which ends the bridge loop, and kills the host if it
// does not exit within stopGrace.
func (t *StdioTransport) stop() error {
	t.stopOnce.Do(func() {
		defer os.Remove(t.script)

		if err := t.stdin.Close(); err != nil && !errors.Is(err, os.ErrClosed) {
			t.stopErr = err
		}
		select {
		case <-t.exited:
		case <-time.After(stopGrace):
			t.logger.Warn("host did not exit, killing", "pid", t.cmd.Process.Pid)
			if err := t.cmd.Process.Kill(); err != nil {
				t.stopErr = errors.Join(t.stopErr, err)
			}
			<-t.exited
		}
		t.stdout.Close()
	})
	return t.stopErr
}
