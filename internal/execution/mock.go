package execution

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
)

// MockEngine serves scripted invocations keyed by the last two
// elements of the target directory, "<model_dir>/<case>". Tests use it
// to drive orchestration without a real toolchain.
type MockEngine struct {
	mu        sync.Mutex
	responses map[string]MockResponse
	calls     []string
}

// MockResponse is one scripted outcome.
type MockResponse struct {
	Output string
	ExitOK bool
	Err    error
}

// NewMockEngine returns an empty MockEngine.
func NewMockEngine() *MockEngine {
	return &MockEngine{responses: make(map[string]MockResponse)}
}

// Respond scripts the outcome for directories whose base name matches
// key.
func (m *MockEngine) Respond(key string, resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[key] = resp
}

// Calls returns the directory base names Run has been asked about, in
// order.
func (m *MockEngine) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

func (m *MockEngine) Run(ctx context.Context, dir string) (Invocation, error) {
	if err := ctx.Err(); err != nil {
		return Invocation{}, err
	}

	key := filepath.Join(filepath.Base(filepath.Dir(dir)), filepath.Base(dir))
	m.mu.Lock()
	m.calls = append(m.calls, key)
	resp, ok := m.responses[key]
	m.mu.Unlock()

	if !ok {
		return Invocation{}, fmt.Errorf("no scripted response for %s", key)
	}
	if resp.Err != nil {
		return Invocation{Output: resp.Output}, resp.Err
	}
	return Invocation{Output: resp.Output, ExitOK: resp.ExitOK}, nil
}
