package engine

import (
	"context"

	"github.com/codeboxhq/codebox/internal/model"
)

// RemoteRecognizer sends one recognition request to a configured backend.
// Implementations make exactly one attempt; retry policy belongs to callers.
type RemoteRecognizer interface {
	Recognize(ctx context.Context, input model.Input, backend model.Backend) (model.RecognitionResult, error)
}

// PatternClassifier is the deterministic recognition tier. A nil result means
// no rule matched.
type PatternClassifier interface {
	Classify(text string) *model.RecognitionResult
}
