package engine

import (
	"context"
	"sync"

	"github.com/codeboxhq/codebox/internal/model"
)

// MockRemote is a test implementation of the RemoteRecognizer interface. It
// records every call and returns a canned result or error.
type MockRemote struct {
	Result model.RecognitionResult
	Err    error
	calls  []MockRemoteCall
	mu     sync.Mutex
}

// MockRemoteCall records details of one recognition request.
type MockRemoteCall struct {
	Input   model.Input
	Backend model.Backend
}

// Recognize returns the configured result or error.
func (m *MockRemote) Recognize(_ context.Context, input model.Input, backend model.Backend) (model.RecognitionResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MockRemoteCall{Input: input, Backend: backend})
	if m.Err != nil {
		return model.RecognitionResult{}, m.Err
	}
	return m.Result, nil
}

// Calls returns a copy of the recorded calls.
func (m *MockRemote) Calls() []MockRemoteCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MockRemoteCall(nil), m.calls...)
}
