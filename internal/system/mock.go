package system

import (
	"context"
	"strings"
	"sync"
)

// MockExecutor implements CommandExecutor for testing.
type MockExecutor struct {
	mu sync.Mutex

	// Commands records all executed commands for verification.
	Commands []MockCommand

	// Responses maps command patterns to responses.
	// Key format: "command arg1 arg2..."
	Responses map[string]MockResponse

	// DefaultResponse is used when no matching response is found.
	DefaultResponse MockResponse

	// Sequences maps command patterns to ordered responses, consumed
	// one per call before Responses is consulted.
	Sequences map[string][]MockResponse

	// Detached records StartDetached launches.
	Detached []MockCommand

	// DetachedPID is returned by StartDetached (defaults to 1 when unset).
	DetachedPID int

	// DetachedErr is returned by StartDetached if set.
	DetachedErr error
}

// MockCommand records an executed command.
type MockCommand struct {
	Name string
	Args []string
}

// MockResponse defines the response for a command.
type MockResponse struct {
	Output []byte
	Err    error
}

// NewMockExecutor creates a new MockExecutor.
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:  make([]MockCommand, 0),
		Responses: make(map[string]MockResponse),
	}
}

// AddResponse adds a response for a specific command pattern.
func (m *MockExecutor) AddResponse(pattern string, output []byte, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = MockResponse{Output: output, Err: err}
}

// AddResponseSequence queues ordered responses for a command pattern.
func (m *MockExecutor) AddResponseSequence(pattern string, responses ...MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Sequences == nil {
		m.Sequences = make(map[string][]MockResponse)
	}
	m.Sequences[pattern] = append(m.Sequences[pattern], responses...)
}

func (m *MockExecutor) Execute(ctx context.Context, name string, args ...string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Commands = append(m.Commands, MockCommand{Name: name, Args: args})

	key := commandKey(name, args)
	if seq, ok := m.Sequences[key]; ok && len(seq) > 0 {
		resp := seq[0]
		m.Sequences[key] = seq[1:]
		return resp.Output, resp.Err
	}
	if resp, ok := m.Responses[key]; ok {
		return resp.Output, resp.Err
	}
	return m.DefaultResponse.Output, m.DefaultResponse.Err
}

func (m *MockExecutor) StartDetached(name string, args ...string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Detached = append(m.Detached, MockCommand{Name: name, Args: args})

	if m.DetachedErr != nil {
		return 0, m.DetachedErr
	}
	if m.DetachedPID == 0 {
		return 1, nil
	}
	return m.DetachedPID, nil
}

// CommandCount returns the number of Execute calls recorded.
func (m *MockExecutor) CommandCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Commands)
}

func commandKey(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
