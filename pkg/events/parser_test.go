package events

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleStream = `{"action":"init","browser":"Chrome","version":"70","platform":"Windows 10"}
{"action":"start","browser":"Chrome","version":"70","platform":"Windows 10"}

{"action":"end","browser":"Chrome","version":"70","platform":"Windows 10","results":{"failures":1,"failed":[{"title":"renders","message":"boom","trace":"Error: boom\n  at spec.js:3"}]}}
{"action":"errored","browser":"firefox","version":"63","platform":"Windows 8"}
`

func TestParseStream_DecodesEventsInOrder(t *testing.T) {
	parsed, malformed, err := ParseStream(strings.NewReader(sampleStream))
	require.NoError(t, err)
	assert.Zero(t, malformed)
	require.Len(t, parsed, 4)

	assert.Equal(t, ActionInit, parsed[0].Action)
	assert.Equal(t, ActionStart, parsed[1].Action)

	end := parsed[2]
	assert.Equal(t, ActionEnd, end.Action)
	require.NotNil(t, end.Results)
	assert.Equal(t, 1, end.Results.Failures)
	require.Len(t, end.Results.Failed, 1)
	assert.Equal(t, "renders", end.Results.Failed[0].Title)
	assert.Equal(t, "boom", end.Results.Failed[0].Message)

	errored := parsed[3]
	assert.Equal(t, ActionErrored, errored.Action)
	assert.Equal(t, "firefox", errored.Browser)
	assert.Equal(t, "Windows 8", errored.Platform)
}

func TestParseStream_SkipsMalformedLines(t *testing.T) {
	input := `{"action":"init","browser":"Chrome"}
not json at all
{"action":"reboot","browser":"Chrome"}
{"action":"start","browser":"Chrome"}
`
	parsed, malformed, err := ParseStream(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, malformed, "bad JSON and unknown action both count")
	assert.Len(t, parsed, 2)
}

func TestStream_DeliversEventsUntilEOF(t *testing.T) {
	var actions []string
	malformed, err := Stream(context.Background(), strings.NewReader(sampleStream), func(e Event) {
		actions = append(actions, e.Action)
	})
	require.NoError(t, err)
	assert.Zero(t, malformed)
	assert.Equal(t, []string{ActionInit, ActionStart, ActionEnd, ActionErrored}, actions)
}

func TestStream_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A reader that never returns data; cancellation must still win.
	r, w := newBlockingPipe()
	defer w.close()

	done := make(chan error, 1)
	go func() {
		_, err := Stream(ctx, r, func(Event) {})
		done <- err
	}()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Stream did not return after cancellation")
	}
}

// blockingPipe is an io.ReadCloser whose Read blocks until closed.
type blockingPipe struct {
	ch chan struct{}
}

type pipeCloser struct{ p *blockingPipe }

func newBlockingPipe() (*blockingPipe, *pipeCloser) {
	p := &blockingPipe{ch: make(chan struct{})}
	return p, &pipeCloser{p: p}
}

func (p *blockingPipe) Read([]byte) (int, error) {
	<-p.ch
	return 0, io.EOF
}

func (p *blockingPipe) Close() error {
	select {
	case <-p.ch:
	default:
		close(p.ch)
	}
	return nil
}

func (c *pipeCloser) close() { _ = c.p.Close() }
