package interoptest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/abyssparanoia/blender-go/interop"
)

// Transport returns a client transport connected to h through in-memory
// pipes. Messages go through the same line framing as the stdio transport.
func Transport(h *Host) interop.Transport {
	clientR, hostW := io.Pipe()
	hostR, clientW := io.Pipe()

	client := interop.NewStreamTransport(clientR, clientW, interop.MultiCloser(clientW, clientR),
		interop.WithStreamKind("fake"))
	server := interop.NewStreamTransport(hostR, hostW, interop.MultiCloser(hostW, hostR))

	go func() {
		for _, line := range h.banner {
			if _, err := fmt.Fprintln(hostW, line); err != nil {
				server.Close()
				return
			}
		}
		if err := h.Serve(context.Background(), server); err != nil {
			slog.Debug("fake host stopped", "error", err)
		}
	}()
	return client
}

// Serve answers requests read from t until the peer goes away. It closes t
// on return.
func (h *Host) Serve(ctx context.Context, t interop.Transport) error {
	defer t.Close()
	for {
		data, err := t.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrClosedPipe) || errors.Is(err, net.ErrClosed) || errors.Is(err, context.Canceled) {
				return nil
			}
			var ce *websocket.CloseError
			if errors.As(err, &ce) {
				return nil
			}
			return err
		}

		var req interop.Request
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("decode request: %w", err)
		}
		out, err := json.Marshal(h.Handle(req))
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		if err := t.WriteMessage(ctx, out); err != nil {
			if errors.Is(err, io.ErrClosedPipe) {
				return nil
			}
			return err
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// WebSocketHandler serves h to websocket clients, one connection per
// session. Use it with httptest.NewServer.
func (h *Host) WebSocketHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Debug("websocket upgrade failed", "error", err)
			return
		}
		if err := h.Serve(r.Context(), interop.NewWebSocketTransport(conn)); err != nil {
			slog.Debug("websocket session ended", "error", err)
		}
	})
}
