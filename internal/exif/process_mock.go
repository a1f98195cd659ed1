package exif

import (
	"context"
	"errors"
	"io"
)

// MockProcessRunner is a mock implementation of ProcessRunner for testing.
type MockProcessRunner struct {
	// RunFunc allows tests to provide custom behavior
	RunFunc func(ctx context.Context, path string, args []string, stdin io.Reader) (stdout, stderr []byte, err error)

	// ShouldTimeout if true, will block until context is cancelled
	ShouldTimeout bool

	// CallCount tracks how many times Run was called
	CallCount int

	// LastPath stores the last path passed to Run
	LastPath string

	// LastArgs stores the last args passed to Run
	LastArgs []string
}

// Run executes the mock behavior.
func (m *MockProcessRunner) Run(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
	m.CallCount++
	m.LastPath = path
	m.LastArgs = args

	// Simulate timeout behavior
	if m.ShouldTimeout {
		<-ctx.Done()
		return nil, nil, ctx.Err()
	}

	// Use custom function if provided
	if m.RunFunc != nil {
		return m.RunFunc(ctx, path, args, stdin)
	}

	// Default: return empty success
	return nil, nil, nil
}

// NewMockProcessRunner creates a new mock process runner.
func NewMockProcessRunner() *MockProcessRunner {
	return &MockProcessRunner{}
}

// NewTimeoutMockProcessRunner creates a mock that simulates a timeout.
func NewTimeoutMockProcessRunner() *MockProcessRunner {
	return &MockProcessRunner{
		ShouldTimeout: true,
	}
}

// NewErrorMockProcessRunner creates a mock that fails with the given stderr message.
func NewErrorMockProcessRunner(errMsg string) *MockProcessRunner {
	return &MockProcessRunner{
		RunFunc: func(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
			return nil, []byte(errMsg), errors.New("exit status 1")
		},
	}
}

// NewSuccessMockProcessRunner creates a mock that succeeds with the given stdout.
func NewSuccessMockProcessRunner(stdout []byte) *MockProcessRunner {
	return &MockProcessRunner{
		RunFunc: func(ctx context.Context, path string, args []string, stdin io.Reader) ([]byte, []byte, error) {
			return stdout, nil, nil
		},
	}
}
