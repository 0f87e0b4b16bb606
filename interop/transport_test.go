package interop

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamTransportWriteFraming(t *testing.T) {
	var out bytes.Buffer
	tr := NewStreamTransport(strings.NewReader(""), &out, nil)

	require.NoError(t, tr.WriteMessage(context.Background(), []byte(`{"id":"1"}`)))
	assert.Equal(t, FrameMarker+`{"id":"1"}`+"\n", out.String())
}

func TestStreamTransportRejectsNewline(t *testing.T) {
	tr := NewStreamTransport(strings.NewReader(""), io.Discard, nil)
	err := tr.WriteMessage(context.Background(), []byte("a\nb"))

	var pe *ProtocolError
	assert.ErrorAs(t, err, &pe)
}

func TestStreamTransportSkipsHostOutput(t *testing.T) {
	input := strings.Join([]string{
		"Blender 4.1.0 (hash abc built 2024-03-25)",
		"Read prefs: /home/user/.config/blender/4.1/config/userpref.blend",
		FrameMarker + `{"id":"a","ok":true}`,
		"",
		FrameMarker + `{"id":"b","ok":true}` + "\r",
	}, "\n")

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tr := NewStreamTransport(strings.NewReader(input), io.Discard, nil, WithStreamLogger(logger))

	msg, err := tr.ReadMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"id":"a","ok":true}`, string(msg))

	msg, err = tr.ReadMessage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, `{"id":"b","ok":true}`, string(msg))

	_, err = tr.ReadMessage(context.Background())
	assert.ErrorIs(t, err, io.EOF)

	assert.Contains(t, logs.String(), "host output")
	assert.Contains(t, logs.String(), "Read prefs")
}

func TestStreamTransportCancelledContext(t *testing.T) {
	tr := NewStreamTransport(strings.NewReader(""), io.Discard, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, tr.WriteMessage(ctx, []byte("{}")), context.Canceled)
	_, err := tr.ReadMessage(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStreamTransportPipeClose(t *testing.T) {
	r, w := io.Pipe()
	tr := NewStreamTransport(r, io.Discard, MultiCloser(w, r))

	errc := make(chan error, 1)
	go func() {
		_, err := tr.ReadMessage(context.Background())
		errc <- err
	}()

	require.NoError(t, tr.Close())
	assert.ErrorIs(t, <-errc, io.EOF)
	assert.NoError(t, tr.Close(), "Close is idempotent")
}

func TestTransportKind(t *testing.T) {
	assert.Equal(t, "stream", TransportKind(NewStreamTransport(strings.NewReader(""), io.Discard, nil)))
	assert.Equal(t, "stdio", TransportKind(NewStreamTransport(strings.NewReader(""), io.Discard, nil, WithStreamKind("stdio"))))
	assert.Equal(t, "replay", TransportKind(NewReplayTransport(nil)))
}

func TestBridgeScriptEmbedded(t *testing.T) {
	script := string(BridgeScript())
	assert.Contains(t, script, `MARKER = "\x1eBPY "`)
	assert.Contains(t, script, `PROTOCOL = "1"`)
}
