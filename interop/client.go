package interop

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/sync/errgroup"

	"github.com/abyssparanoia/blender-go/internal/ir"
)

// Defaults applied by New.
const (
	DefaultCallTimeout       = 30 * time.Second
	DefaultVersionConstraint = ">= 2.93"
)

// Caller issues one request to the host and returns the response value.
// *Client implements it; generated proxies depend only on this interface.
type Caller interface {
	Invoke(ctx context.Context, req Request) (ir.IRValue, error)
}

// Session describes one client connection for the journal.
type Session struct {
	ID              string
	Transport       string
	HostVersion     string
	ProtocolVersion string
}

// Recorder receives every completed call. Errors are logged and otherwise
// ignored so journaling never fails a host call.
type Recorder interface {
	RecordSession(ctx context.Context, s Session) error
	RecordCall(ctx context.Context, sessionID string, req Request, resp Response) error
}

// HostInfo is the host's answer to the handshake.
type HostInfo struct {
	Version  string
	Protocol string
}

// Client is the interop handle. It is safe for concurrent use.
type Client struct {
	transport  Transport
	logger     *slog.Logger
	ids        IDGenerator
	clock      *Clock
	queue      *requestQueue
	timeout    time.Duration
	constraint *semver.Constraints
	recorder   Recorder
	sessionID  string

	mu      sync.Mutex
	pending map[string]*pendingCall
	closed  bool
	err     error
	session Session

	sessionOnce sync.Once
	closing     atomic.Bool
	closeOnce   sync.Once
	closeErr    error
	cancel      context.CancelFunc
	done        chan struct{}
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the client logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) {
		c.logger = l
	}
}

// WithRecorder journals every completed call.
func WithRecorder(r Recorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}

// WithCallTimeout bounds calls whose context has no deadline.
// Zero disables the default bound.
func WithCallTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithVersionConstraint sets the host version constraint checked by Hello.
// Nil disables the check.
func WithVersionConstraint(vc *semver.Constraints) Option {
	return func(c *Client) {
		c.constraint = vc
	}
}

// WithIDGenerator sets the request ID source. Defaults to UUIDv7.
func WithIDGenerator(g IDGenerator) Option {
	return func(c *Client) {
		c.ids = g
	}
}

// WithSessionID fixes the session ID. Defaults to a UUIDv7.
func WithSessionID(id string) Option {
	return func(c *Client) {
		c.sessionID = id
	}
}

// ParseVersionConstraint parses a semver constraint such as ">= 2.93".
func ParseVersionConstraint(s string) (*semver.Constraints, error) {
	vc, err := semver.NewConstraint(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version constraint %q: %w", s, err)
	}
	return vc, nil
}

// New starts a client on t. The caller owns the client and must Close it.
func New(t Transport, opts ...Option) *Client {
	vc, _ := semver.NewConstraint(DefaultVersionConstraint)
	c := &Client{
		transport:  t,
		logger:     slog.Default(),
		ids:        UUIDv7Generator{},
		clock:      NewClock(),
		queue:      newRequestQueue(),
		timeout:    DefaultCallTimeout,
		constraint: vc,
		pending:    make(map[string]*pendingCall),
		done:       make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sessionID == "" {
		c.sessionID = UUIDv7Generator{}.Generate()
	}
	c.session = Session{
		ID:              c.sessionID,
		Transport:       TransportKind(t),
		ProtocolVersion: ir.ProtocolVersion,
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.writeLoop(gctx) })
	g.Go(func() error { return c.readLoop(gctx) })
	go func() {
		err := g.Wait()
		c.shutdown(err)
		close(c.done)
	}()

	c.logger.Debug("interop client started", "session", c.sessionID, "transport", c.session.Transport)
	return c
}

// SessionID returns the journal session ID of this client.
func (c *Client) SessionID() string {
	return c.sessionID
}

// Invoke sends req and waits for its response. ID and Seq are assigned here.
//
// If ctx has no deadline the client call timeout applies. When ctx ends
// first the request is abandoned and a late response is dropped.
func (c *Client) Invoke(ctx context.Context, req Request) (ir.IRValue, error) {
	if !ValidOps[req.Op] {
		return nil, &ProtocolError{Message: fmt.Sprintf("unknown op %q", req.Op)}
	}
	if _, ok := ctx.Deadline(); !ok && c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	p := &pendingCall{reply: make(chan callResult, 1)}

	// Seq assignment and enqueue share the lock so seq order is write order.
	c.mu.Lock()
	if c.closed {
		err := c.err
		c.mu.Unlock()
		return nil, err
	}
	req.ID = c.ids.Generate()
	req.Seq = c.clock.Next()
	p.req = req
	c.pending[req.ID] = p
	if !c.queue.Enqueue(p) {
		delete(c.pending, req.ID)
		c.mu.Unlock()
		return nil, ErrClosed
	}
	c.mu.Unlock()

	c.logger.Debug("interop request", "id", req.ID, "seq", req.Seq, "op", req.Op, "path", req.Path)

	select {
	case <-ctx.Done():
		c.forget(req.ID)
		c.logger.Debug("interop request abandoned", "id", req.ID, "op", req.Op, "path", req.Path, "error", ctx.Err())
		return nil, fmt.Errorf("%s %s: %w", req.Op, req.Path, ctx.Err())
	case r := <-p.reply:
		if r.err != nil {
			return nil, r.err
		}
		c.record(ctx, req, r.resp)
		if !r.resp.OK {
			return nil, newHostError(req, r.resp.Error)
		}
		if r.resp.Value == nil {
			return ir.IRNull{}, nil
		}
		return r.resp.Value, nil
	}
}

// Hello performs the handshake and checks the host version and protocol.
func (c *Client) Hello(ctx context.Context) (HostInfo, error) {
	v, err := c.Invoke(ctx, Request{Op: OpHello})
	if err != nil {
		return HostInfo{}, fmt.Errorf("handshake: %w", err)
	}
	obj, ok := v.(ir.IRObject)
	if !ok {
		return HostInfo{}, &KindError{Path: "hello", Want: "object", Got: ir.Kind(v)}
	}
	info := HostInfo{}
	if s, ok := obj["version"].(ir.IRString); ok {
		info.Version = string(s)
	}
	if s, ok := obj["protocol"].(ir.IRString); ok {
		info.Protocol = string(s)
	}

	if info.Protocol != ir.ProtocolVersion {
		return info, &IncompatibleHostError{
			HostVersion:     info.Version,
			ProtocolVersion: info.Protocol,
			Reason:          fmt.Sprintf("protocol %q, want %q", info.Protocol, ir.ProtocolVersion),
		}
	}
	if c.constraint != nil {
		hv, err := semver.NewVersion(info.Version)
		if err != nil {
			return info, &IncompatibleHostError{
				HostVersion:     info.Version,
				ProtocolVersion: info.Protocol,
				Constraint:      c.constraint.String(),
				Reason:          fmt.Sprintf("unparseable version: %v", err),
			}
		}
		if !c.constraint.Check(hv) {
			return info, &IncompatibleHostError{
				HostVersion:     info.Version,
				ProtocolVersion: info.Protocol,
				Constraint:      c.constraint.String(),
				Reason:          "version does not satisfy " + c.constraint.String(),
			}
		}
	}

	c.mu.Lock()
	c.session.HostVersion = info.Version
	c.session.ProtocolVersion = info.Protocol
	session := c.session
	c.mu.Unlock()
	if c.recorder != nil {
		if err := c.recorder.RecordSession(ctx, session); err != nil {
			c.logger.Warn("journal session failed", "session", session.ID, "error", err)
		}
	}

	c.logger.Info("host connected", "version", info.Version, "protocol", info.Protocol, "session", c.sessionID)
	return info, nil
}

// Ping checks that the host is responsive.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Invoke(ctx, Request{Op: OpPing})
	return err
}

// Pending returns the number of calls awaiting a response.
func (c *Client) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Close stops both loops, closes the transport and fails every pending call
// with ErrClosed. It is safe to call more than once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		c.closing.Store(true)
		c.cancel()
		c.queue.Close()
		c.closeErr = c.transport.Close()
		<-c.done
		c.logger.Debug("interop client closed", "session", c.sessionID)
	})
	return c.closeErr
}

// Done is closed once the client has shut down, by Close or by a transport
// failure. Err reports why.
func (c *Client) Done() <-chan struct{} {
	return c.done
}

// Err returns the error pending calls were failed with, or nil while the
// client is running.
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

func (c *Client) writeLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-c.queue.Wait():
		}

		for {
			p, ok := c.queue.TryDequeue()
			if !ok {
				break
			}
			data, err := encodeRequest(p.req)
			if err != nil {
				c.fail(p, err)
				continue
			}
			if err := c.transport.WriteMessage(ctx, data); err != nil {
				var mismatch *ReplayMismatchError
				if errors.As(err, &mismatch) {
					c.fail(p, err)
					continue
				}
				c.fail(p, fmt.Errorf("%w: write: %w", ErrClosed, err))
				// Unblocks the reader so both loops exit.
				_ = c.transport.Close()
				return fmt.Errorf("write: %w", err)
			}
		}

		if c.queue.Closed() {
			return nil
		}
	}
}

func (c *Client) readLoop(ctx context.Context) error {
	for {
		data, err := c.transport.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}
		resp, err := decodeResponse(data)
		if err != nil {
			c.logger.Warn("dropping malformed response", "error", err)
			continue
		}

		c.mu.Lock()
		p := c.pending[resp.ID]
		delete(c.pending, resp.ID)
		c.mu.Unlock()

		if p == nil {
			c.logger.Debug("dropping late response", "id", resp.ID)
			continue
		}
		p.reply <- callResult{resp: resp}
	}
}

// fail completes p with err without waiting for a response.
func (c *Client) fail(p *pendingCall, err error) {
	c.mu.Lock()
	_, ok := c.pending[p.req.ID]
	delete(c.pending, p.req.ID)
	c.mu.Unlock()
	if ok {
		p.reply <- callResult{err: err}
	}
}

func (c *Client) forget(id string) {
	c.mu.Lock()
	delete(c.pending, id)
	c.mu.Unlock()
}

// shutdown marks the client closed and fails every pending call.
func (c *Client) shutdown(cause error) {
	err := ErrClosed
	if cause != nil && !c.closing.Load() {
		err = fmt.Errorf("%w: %w", ErrClosed, cause)
		c.logger.Error("interop connection lost", "session", c.sessionID, "error", cause)
		_ = c.transport.Close()
	}

	c.mu.Lock()
	c.closed = true
	c.err = err
	pending := c.pending
	c.pending = make(map[string]*pendingCall)
	c.mu.Unlock()

	c.queue.Close()
	for _, p := range pending {
		p.reply <- callResult{err: err}
	}
	// Drain calls that were queued but never reached the writer.
	for {
		if _, ok := c.queue.TryDequeue(); !ok {
			break
		}
	}
}

func (c *Client) record(ctx context.Context, req Request, resp Response) {
	if c.recorder == nil {
		return
	}
	// Calls made before Hello still need a session row.
	c.sessionOnce.Do(func() {
		c.mu.Lock()
		session := c.session
		c.mu.Unlock()
		if err := c.recorder.RecordSession(context.WithoutCancel(ctx), session); err != nil {
			c.logger.Warn("journal session failed", "session", session.ID, "error", err)
		}
	})
	if err := c.recorder.RecordCall(context.WithoutCancel(ctx), c.sessionID, req, resp); err != nil {
		c.logger.Warn("journal call failed", "seq", req.Seq, "op", req.Op, "path", req.Path, "error", err)
	}
}
