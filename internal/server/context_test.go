package server

import (
	"context"
	"os"
	"testing"

	"github.com/teemow/gdocuments/internal/documents"
)

func TestNewServerContext_NoKeyFile(t *testing.T) {
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON")
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON_WORK")

	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	if sc.Context() == nil {
		t.Error("Context() should not be nil")
	}

	// No key file configured, so no manager should be available
	if manager := sc.Manager(); manager != nil {
		t.Error("Manager() should be nil without a key file")
	}

	if manager := sc.ManagerForAccount("work"); manager != nil {
		t.Error("ManagerForAccount() should be nil without a key file")
	}
}

func TestServerContext_SetManager(t *testing.T) {
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON")

	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	manager := documents.NewManagerWithClients(nil, nil)
	sc.SetManager(manager)

	if got := sc.Manager(); got != manager {
		t.Error("Manager() should return the manager set with SetManager")
	}

	other := documents.NewManagerWithClients(nil, nil)
	sc.SetManagerForAccount("work", other)

	if got := sc.ManagerForAccount("work"); got != other {
		t.Error("ManagerForAccount() should return the cached manager")
	}
}

func TestServerContext_ReadOnly(t *testing.T) {
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON")

	sc, err := NewServerContext(context.Background(), WithReadOnly(true))
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	if !sc.ReadOnly() {
		t.Error("ReadOnly() should be true")
	}
}

func TestServerContext_Shutdown(t *testing.T) {
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON")

	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}

	if sc.IsShutdown() {
		t.Error("IsShutdown() should be false before Shutdown")
	}

	if err := sc.Shutdown(); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}

	if !sc.IsShutdown() {
		t.Error("IsShutdown() should be true after Shutdown")
	}

	// Second shutdown is a no-op
	if err := sc.Shutdown(); err != nil {
		t.Errorf("second Shutdown() error = %v", err)
	}

	select {
	case <-sc.Context().Done():
	default:
		t.Error("context should be cancelled after Shutdown")
	}
}

func TestHealthChecker(t *testing.T) {
	os.Unsetenv("GOOGLE_DOCUMENT_SERVICE_JSON")

	sc, err := NewServerContext(context.Background())
	if err != nil {
		t.Fatalf("NewServerContext() error = %v", err)
	}
	defer func() { _ = sc.Shutdown() }()

	h := NewHealthChecker(sc)

	if !h.IsReady() {
		t.Error("health checker should start ready")
	}

	h.SetReady(false)
	if h.IsReady() {
		t.Error("IsReady() should be false after SetReady(false)")
	}
}
