package telemetry

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_UnconfiguredIsNil(t *testing.T) {
	assert.Nil(t, New(Config{}))
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Emit("anything", map[string]any{"k": "v"})
	l.Close()
}

func TestEmit_DeliversEvents(t *testing.T) {
	var mu sync.Mutex
	var received []Event

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)

		var batch []Event
		require.NoError(t, json.Unmarshal(body, &batch))

		mu.Lock()
		received = append(received, batch...)
		mu.Unlock()

		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	l := New(Config{URL: srv.URL, Token: "secret", Dataset: "cv-studio"})
	l.Emit("cv_imported", map[string]any{"work_entries": 3})
	l.Emit("cv_scored", map[string]any{"score": 85})
	l.Close()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 2)
	assert.Equal(t, "cv_imported", received[0].Event)
	assert.Equal(t, "cv_scored", received[1].Event)
	assert.NotEmpty(t, received[0].ID)
}

func TestEmit_TransportFailureIsSwallowed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	srv.Close() // connection refused from here on

	l := New(Config{URL: srv.URL})
	l.Emit("cv_exported", nil)
	l.Close()
}

func TestEmit_FullBufferDropsInsteadOfBlocking(t *testing.T) {
	// An unbuffered channel with no sender running: every Emit must take the
	// drop path immediately.
	l := &Logger{events: make(chan Event), done: make(chan struct{})}

	finished := make(chan struct{})
	go func() {
		for i := 0; i < 100; i++ {
			l.Emit("cv_field_updated", nil)
		}
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(2 * time.Second):
		t.Fatal("Emit blocked on a full buffer")
	}
}

func TestIngestURL(t *testing.T) {
	withDataset := &Logger{cfg: Config{URL: "https://ingest.example.com", Dataset: "cv"}}
	assert.Equal(t, "https://ingest.example.com/v1/datasets/cv/ingest", withDataset.ingestURL())

	bare := &Logger{cfg: Config{URL: "https://ingest.example.com/hook"}}
	assert.Equal(t, "https://ingest.example.com/hook", bare.ingestURL())
}
