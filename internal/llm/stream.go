package llm

import (
	"fmt"
	"io"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
)

// DefaultMaxOutputTokens bounds the generated letter length.
const DefaultMaxOutputTokens int32 = 4000

// StreamOptions configures an incremental generation call.
type StreamOptions struct {
	Tier            ModelTier
	MaxOutputTokens int32
}

// DefaultStreamOptions returns the options used for cover letter generation.
func DefaultStreamOptions() StreamOptions {
	return StreamOptions{
		Tier:            TierStandard,
		MaxOutputTokens: DefaultMaxOutputTokens,
	}
}

// Stream is a finite, pull-based sequence of generated text fragments.
// Next blocks until the next fragment arrives, returns io.EOF when the
// remote signals completion, and any other error when the stream fails.
// Fragments are yielded strictly in remote emission order; a Stream is not
// restartable.
type Stream interface {
	Next() (string, error)
}

// geminiStream adapts the Gemini response iterator to Stream.
type geminiStream struct {
	iter *genai.GenerateContentResponseIterator
}

// Next returns the next non-empty text fragment. Responses carrying no text
// (turn markers, safety annotations) are skipped rather than yielded.
func (s *geminiStream) Next() (string, error) {
	for {
		resp, err := s.iter.Next()
		if err == iterator.Done {
			return "", io.EOF
		}
		if err != nil {
			return "", fmt.Errorf("generation stream failed: %w", err)
		}

		if text := responseText(resp); text != "" {
			return text, nil
		}
	}
}

// errorStream reports a setup failure on the first pull.
type errorStream struct {
	err error
}

func (s *errorStream) Next() (string, error) {
	return "", s.err
}
