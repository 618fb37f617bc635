package system

import (
	"context"
	"errors"
	"testing"
)

func TestMockExecutor_Responses(t *testing.T) {
	m := NewMockExecutor()
	m.AddResponse("lsof -ti :8080", []byte("12345\n"), nil)
	m.DefaultResponse = MockResponse{Err: errors.New("unknown command")}

	out, err := m.Execute(context.Background(), "lsof", "-ti", ":8080")
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if string(out) != "12345\n" {
		t.Errorf("output = %q, want %q", out, "12345\n")
	}

	if _, err := m.Execute(context.Background(), "lsof", "-ti", ":9090"); err == nil {
		t.Error("Expected default error for unmatched command")
	}

	if m.CommandCount() != 2 {
		t.Errorf("CommandCount = %d, want 2", m.CommandCount())
	}
}

func TestMockExecutor_StartDetached(t *testing.T) {
	m := NewMockExecutor()
	m.DetachedPID = 4242

	pid, err := m.StartDetached("devserver", "serve")
	if err != nil {
		t.Fatalf("StartDetached failed: %v", err)
	}
	if pid != 4242 {
		t.Errorf("pid = %d, want 4242", pid)
	}
	if len(m.Detached) != 1 || m.Detached[0].Name != "devserver" {
		t.Errorf("Detached = %+v, want one devserver launch", m.Detached)
	}
}
