// Package engine orchestrates the two recognition tiers: the remote AI
// backend when one is supplied, the deterministic pattern tier otherwise.
package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/codeboxhq/codebox/internal/model"
)

// ErrNoBackendConfigured indicates an image input with no backend; image
// classification has no deterministic-tier fallback.
var ErrNoBackendConfigured = errors.New("no AI backend configured")

// Service routes classification requests to the appropriate tier. It holds no
// state across calls and is safe for concurrent use.
type Service struct {
	remote   RemoteRecognizer
	patterns PatternClassifier
	logger   *slog.Logger
}

// New creates a recognition service.
func New(remote RemoteRecognizer, patterns PatternClassifier, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{remote: remote, patterns: patterns, logger: logger}
}

// Classify classifies text. With a backend, the remote tier is called and its
// errors propagate untouched; a requested AI call is never silently downgraded
// to the pattern tier. Without a backend the pattern tier runs, and a
// no-match becomes an Other result whose code is the original text, so every
// text input yields a storable result.
func (s *Service) Classify(ctx context.Context, text string, backend *model.Backend) (model.RecognitionResult, error) {
	if backend != nil {
		result, err := s.remote.Recognize(ctx, model.TextInput(text), *backend)
		if err != nil {
			return model.RecognitionResult{}, err
		}
		s.logger.Debug("remote classification complete",
			"backend", backend.Name,
			"category", result.Category)
		return result, nil
	}

	if match := s.patterns.Classify(text); match != nil {
		return *match, nil
	}

	return model.RecognitionResult{Category: model.CategoryOther, Code: text}, nil
}

// ClassifyImage classifies raw image bytes via the remote tier. Without a
// backend it fails with ErrNoBackendConfigured.
func (s *Service) ClassifyImage(ctx context.Context, data []byte, mimeType string, backend *model.Backend) (model.RecognitionResult, error) {
	if backend == nil {
		return model.RecognitionResult{}, ErrNoBackendConfigured
	}
	return s.remote.Recognize(ctx, model.ImageInput(data, mimeType), *backend)
}
