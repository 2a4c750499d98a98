package events

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
)

// ProcessFunc handles one parsed event.
type ProcessFunc func(Event)

// ParseStream parses the whole stream, returning the events in arrival
// order, the number of malformed lines skipped, and any scan error.
// Malformed means unparseable JSON or an unknown action; either is skipped
// rather than aborting the run.
func ParseStream(r io.Reader) ([]Event, int, error) {
	var parsed []Event
	malformed, err := scan(r, func(e Event) {
		parsed = append(parsed, e)
	})
	if err != nil {
		return nil, malformed, err
	}
	return parsed, malformed, nil
}

// Stream parses events line by line and calls fn for each one. Stops on
// EOF or when ctx is cancelled. Returns the number of malformed lines
// skipped and any error.
//
// Cancellation: the scanner runs in a background goroutine. On context
// cancel, Stream closes r (if it implements io.Closer) to unblock the
// scanner; otherwise the caller must close the underlying reader
// externally to prevent a goroutine leak.
func Stream(ctx context.Context, r io.Reader, fn ProcessFunc) (int, error) {
	lines := make(chan scanResult)
	go func() {
		defer close(lines)
		scanner := newScanner(r)
		for scanner.Scan() {
			// Copy bytes — scanner reuses the buffer.
			cp := append([]byte(nil), scanner.Bytes()...)
			select {
			case lines <- scanResult{line: cp}:
			case <-ctx.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- scanResult{err: err}:
			case <-ctx.Done():
			}
		}
	}()

	var malformed int
	for {
		select {
		case <-ctx.Done():
			if c, ok := r.(io.Closer); ok {
				_ = c.Close()
			}
			return malformed, ctx.Err()
		case res, ok := <-lines:
			if !ok {
				return malformed, nil
			}
			if res.err != nil {
				return malformed, res.err
			}
			if event, ok := decode(res.line); ok {
				fn(event)
			} else if len(res.line) > 0 {
				malformed++
			}
		}
	}
}

type scanResult struct {
	line []byte
	err  error
}

func newScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	// Allow large lines for traces embedded in end events.
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return scanner
}

func scan(r io.Reader, fn ProcessFunc) (int, error) {
	scanner := newScanner(r)
	var malformed int
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		if event, ok := decode(line); ok {
			fn(event)
		} else {
			malformed++
		}
	}
	if err := scanner.Err(); err != nil {
		return malformed, fmt.Errorf("scanning event stream: %w", err)
	}
	return malformed, nil
}

func decode(line []byte) (Event, bool) {
	if len(line) == 0 {
		return Event{}, false
	}
	var event Event
	if err := json.Unmarshal(line, &event); err != nil {
		return Event{}, false
	}
	if !known(event.Action) {
		return Event{}, false
	}
	return event, true
}
