package server

import (
	"fmt"
	"net/http"
)

// StreamWriter relays generated text fragments to the client as an
// event-stream response body. Fragments are written in arrival order and
// flushed immediately; nothing is buffered and no trailing frame is sent.
type StreamWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewStreamWriter prepares w for streaming and writes the response headers.
func NewStreamWriter(w http.ResponseWriter) (*StreamWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	return &StreamWriter{w: w, flusher: flusher}, nil
}

// WriteChunk writes one text fragment and flushes it to the client.
func (s *StreamWriter) WriteChunk(text string) error {
	if _, err := fmt.Fprint(s.w, text); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}
