// Package telemetry is a best-effort event sink. Events are queued to a
// background sender; the rest of the system never waits on it and never sees
// its failures.
package telemetry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

const (
	defaultBuffer = 256
	sendTimeout   = 5 * time.Second
	closeTimeout  = 3 * time.Second
)

// Config points the sink at an ingest endpoint. An empty URL disables
// telemetry entirely.
type Config struct {
	URL     string
	Token   string
	Dataset string
}

// Event is the wire shape of a single telemetry record.
type Event struct {
	ID      string         `json:"id"`
	Event   string         `json:"event"`
	Time    time.Time      `json:"_time"`
	Dataset string         `json:"dataset,omitempty"`
	Data    map[string]any `json:"data,omitempty"`
}

// Logger queues events for a background sender goroutine. A nil *Logger is a
// valid no-op sink, so callers never need to branch on configuration.
type Logger struct {
	cfg    Config
	client *http.Client
	events chan Event
	done   chan struct{}
}

// New starts a telemetry sink, or returns nil when no endpoint is configured.
func New(cfg Config) *Logger {
	if cfg.URL == "" {
		return nil
	}

	l := &Logger{
		cfg:    cfg,
		client: &http.Client{Timeout: sendTimeout},
		events: make(chan Event, defaultBuffer),
		done:   make(chan struct{}),
	}
	go l.run()
	return l
}

// Emit queues an event. It never blocks: when the buffer is full the event is
// dropped, and transport failures are swallowed by the sender.
func (l *Logger) Emit(event string, data map[string]any) {
	if l == nil {
		return
	}

	ev := Event{
		ID:      uuid.NewString(),
		Event:   event,
		Time:    time.Now().UTC(),
		Dataset: l.cfg.Dataset,
		Data:    data,
	}

	select {
	case l.events <- ev:
	default:
		// Full buffer: drop rather than block the caller.
	}
}

// Close stops accepting events and gives the sender a short deadline to
// drain what is already queued.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	close(l.events)
	select {
	case <-l.done:
	case <-time.After(closeTimeout):
	}
}

func (l *Logger) run() {
	defer close(l.done)
	for ev := range l.events {
		l.send(ev)
	}
}

// send posts one event and discards any failure.
func (l *Logger) send(ev Event) {
	body, err := json.Marshal([]Event{ev})
	if err != nil {
		return
	}

	req, err := http.NewRequest(http.MethodPost, l.ingestURL(), bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")
	if l.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+l.cfg.Token)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return
	}
	_ = resp.Body.Close()
}

func (l *Logger) ingestURL() string {
	if l.cfg.Dataset == "" {
		return l.cfg.URL
	}
	return fmt.Sprintf("%s/v1/datasets/%s/ingest", l.cfg.URL, l.cfg.Dataset)
}
