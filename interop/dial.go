package interop

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Transport kinds accepted by Dial.
const (
	TransportStdio     = "stdio"
	TransportWebSocket = "websocket"
)

// Config describes how to reach a host.
type Config struct {
	// Transport is TransportStdio or TransportWebSocket.
	Transport string

	// Executable and Args start the host for stdio. Nil Args means DefaultHostArgs.
	Executable string
	Args       []string

	// URL is the bridge address for websocket.
	URL string

	// CallTimeout bounds calls without a deadline; zero leaves them
	// unbounded. HandshakeTimeout bounds Hello the same way.
	CallTimeout      time.Duration
	HandshakeTimeout time.Duration

	// VersionConstraint is checked against the host version; empty skips
	// the check. Use DefaultVersionConstraint for the usual floor.
	VersionConstraint string
}

// Dial builds the configured transport, starts a client on it and performs
// the handshake. The client is closed again if the handshake fails.
func Dial(ctx context.Context, cfg Config, opts ...Option) (*Client, HostInfo, error) {
	base := &Client{logger: slog.Default()}
	for _, opt := range opts {
		opt(base)
	}
	logger := base.logger

	var t Transport
	switch cfg.Transport {
	case TransportStdio, "":
		if cfg.Executable == "" {
			return nil, HostInfo{}, fmt.Errorf("stdio transport: no host executable configured")
		}
		st, err := StartStdio(ctx, cfg.Executable, cfg.Args, logger)
		if err != nil {
			return nil, HostInfo{}, err
		}
		t = st
	case TransportWebSocket:
		if cfg.URL == "" {
			return nil, HostInfo{}, fmt.Errorf("websocket transport: no url configured")
		}
		wt, err := DialWebSocket(ctx, cfg.URL, nil)
		if err != nil {
			return nil, HostInfo{}, err
		}
		t = wt
	default:
		return nil, HostInfo{}, fmt.Errorf("unknown transport %q", cfg.Transport)
	}

	var vc *semver.Constraints
	if cfg.VersionConstraint != "" {
		var err error
		vc, err = ParseVersionConstraint(cfg.VersionConstraint)
		if err != nil {
			t.Close()
			return nil, HostInfo{}, err
		}
	}
	all := []Option{WithCallTimeout(cfg.CallTimeout), WithVersionConstraint(vc)}
	c := New(t, append(all, opts...)...)

	hctx := ctx
	if cfg.HandshakeTimeout > 0 {
		var cancel context.CancelFunc
		hctx, cancel = context.WithTimeout(ctx, cfg.HandshakeTimeout)
		defer cancel()
	}
	info, err := c.Hello(hctx)
	if err != nil {
		c.Close()
		return nil, info, err
	}
	return c, info, nil
}
