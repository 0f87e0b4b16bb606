package interop

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"sync"
)

// FrameMarker starts every protocol line on a byte stream. Lines without it
// are host output (Blender prints freely to stdout).
const FrameMarker = "\x1eBPY "

// Transport moves whole protocol messages between the client and the host.
//
// WriteMessage is only called by the client's writer goroutine and
// ReadMessage only by its reader goroutine. Close must unblock a pending
// ReadMessage.
type Transport interface {
	WriteMessage(ctx context.Context, data []byte) error
	ReadMessage(ctx context.Context) ([]byte, error)
	Close() error
}

// kinded is implemented by transports that can name themselves for the journal.
type kinded interface {
	Kind() string
}

// TransportKind returns the name of t's kind, or "custom".
func TransportKind(t Transport) string {
	if k, ok := t.(kinded); ok {
		return k.Kind()
	}
	return "custom"
}

// StreamTransport frames messages over an io.Reader and io.Writer pair.
type StreamTransport struct {
	r      *bufio.Reader
	w      io.Writer
	closer io.Closer
	logger *slog.Logger
	kind   string

	wmu       sync.Mutex
	closeOnce sync.Once
	closeErr  error
}

// StreamOption configures a StreamTransport.
type StreamOption func(*StreamTransport)

// WithStreamLogger sets the logger used for host output lines.
func WithStreamLogger(l *slog.Logger) StreamOption {
	return func(t *StreamTransport) {
		t.logger = l
	}
}

// WithStreamKind overrides the kind reported to the journal.
func WithStreamKind(kind string) StreamOption {
	return func(t *StreamTransport) {
		t.kind = kind
	}
}

// NewStreamTransport frames messages over r and w. closer, if non-nil, is
// closed by Close and must unblock reads from r.
func NewStreamTransport(r io.Reader, w io.Writer, closer io.Closer, opts ...StreamOption) *StreamTransport {
	t := &StreamTransport{
		r:      bufio.NewReader(r),
		w:      w,
		closer: closer,
		logger: slog.Default(),
		kind:   "stream",
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Kind implements the journal naming hook.
func (t *StreamTransport) Kind() string { return t.kind }

// WriteMessage writes one framed line.
func (t *StreamTransport) WriteMessage(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if bytes.IndexByte(data, '\n') >= 0 {
		return &ProtocolError{Message: "message contains a newline"}
	}

	frame := make([]byte, 0, len(FrameMarker)+len(data)+1)
	frame = append(frame, FrameMarker...)
	frame = append(frame, data...)
	frame = append(frame, '\n')

	t.wmu.Lock()
	defer t.wmu.Unlock()
	_, err := t.w.Write(frame)
	return err
}

// ReadMessage returns the payload of the next framed line, skipping and
// logging host output. It returns io.EOF when the stream ends.
func (t *StreamTransport) ReadMessage(ctx context.Context) ([]byte, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line, err := t.r.ReadBytes('\n')
		if len(line) > 0 {
			line = bytes.TrimRight(line, "\r\n")
			if payload, ok := bytes.CutPrefix(line, []byte(FrameMarker)); ok {
				return payload, nil
			}
			if len(line) > 0 {
				t.logger.Debug("host output", "line", string(line))
			}
		}
		if err != nil {
			if errors.Is(err, io.ErrClosedPipe) || errors.Is(err, os.ErrClosed) {
				return nil, io.EOF
			}
			return nil, err
		}
	}
}

// Close closes the underlying closer once.
func (t *StreamTransport) Close() error {
	t.closeOnce.Do(func() {
		if t.closer != nil {
			t.closeErr = t.closer.Close()
		}
	})
	return t.closeErr
}

// closerFunc adapts a function to io.Closer.
type closerFunc func() error

func (f closerFunc) Close() error { return f() }

// MultiCloser closes every closer in order and joins their errors.
func MultiCloser(closers ...io.Closer) io.Closer {
	return closerFunc(func() error {
		var errs []error
		for _, c := range closers {
			if err := c.Close(); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	})
}
