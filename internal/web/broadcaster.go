package web

import (
	"encoding/json"
	"strings"
	"sync"
	"time"
)

// StatusEvent is a single status message for SSE.
type StatusEvent struct {
	Time  string `json:"t"`
	Level string `json:"l,omitempty"`
	Msg   string `json:"msg"`
}

// StatusBroadcaster distributes status messages to SSE clients.
type StatusBroadcaster struct {
	mu      sync.RWMutex
	clients map[chan string]struct{}
}

// NewStatusBroadcaster creates a new broadcaster.
func NewStatusBroadcaster() *StatusBroadcaster {
	return &StatusBroadcaster{
		clients: make(map[chan string]struct{}),
	}
}

// Subscribe returns a channel that receives broadcast messages and a cleanup function.
// The caller must call the returned cleanup when done (e.g. on client disconnect).
func (b *StatusBroadcaster) Subscribe() (<-chan string, func()) {
	ch := make(chan string, 64)
	b.mu.Lock()
	b.clients[ch] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	unsub := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.clients, ch)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsub
}

// Subscribers returns the number of connected clients.
func (b *StatusBroadcaster) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.clients)
}

// Broadcast sends {"t":"...","l":level,"msg":msg} to every client.
// Slow clients may miss messages (non-blocking, buffered).
func (b *StatusBroadcaster) Broadcast(level, msg string) {
	data, err := json.Marshal(StatusEvent{
		Time:  time.Now().Format(time.RFC3339),
		Level: level,
		Msg:   msg,
	})
	if err != nil {
		return
	}
	payload := string(data)

	b.mu.RLock()
	defer b.mu.RUnlock()
	for ch := range b.clients {
		select {
		case ch <- payload:
		default:
			// channel full, skip
		}
	}
}

// BroadcastMsg is a convenience for level "info".
func (b *StatusBroadcaster) BroadcastMsg(msg string) {
	b.Broadcast("info", msg)
}

// BroadcastWriter returns an io.Writer for debug.SetOutput: each written
// debug line is broadcast with the level taken from its tag.
func BroadcastWriter(b *StatusBroadcaster) *broadcastWriter {
	return &broadcastWriter{b: b}
}

type broadcastWriter struct {
	b *StatusBroadcaster
}

// debug tags and the SSE level they map to.
var debugTags = []struct{ tag, level string }{
	{"[ERROR] ", "error"},
	{"[INFO] ", "info"},
	{"[LIVE] ", "live"},
	{"[VERBOSE] ", "verbose"},
	{"[TRACE] ", "trace"},
	{"[SCCB] ", "trace"},
	{"[GPIO] ", "trace"},
}

// splitDebugLine strips the logger prefix and timestamp from a debug line
// and returns its level and message.
func splitDebugLine(line string) (level, msg string) {
	for _, t := range debugTags {
		if i := strings.Index(line, t.tag); i >= 0 {
			return t.level, strings.TrimSpace(line[i+len(t.tag):])
		}
	}
	return "info", line
}

func (w *broadcastWriter) Write(p []byte) (n int, err error) {
	for _, line := range strings.Split(string(p), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		w.b.Broadcast(splitDebugLine(line))
	}
	return len(p), nil
}
