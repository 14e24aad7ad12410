package server

import (
	"context"
	"log/slog"
	"sync"

	"github.com/teemow/gdocuments/internal/documents"
	"github.com/teemow/gdocuments/internal/google"
	"github.com/teemow/gdocuments/internal/instrumentation"
	"github.com/teemow/gdocuments/internal/logging"
)

// ServerContext holds the context for the MCP server
type ServerContext struct {
	ctx         context.Context
	cancel      context.CancelFunc
	managers    map[string]*documents.Manager // Maps account name to document manager
	metrics     *instrumentation.Metrics
	auditLogger *instrumentation.AuditLogger
	logger      *slog.Logger
	readOnly    bool
	mu          sync.RWMutex
	shutdown    bool
}

// ServerContextOption configures a ServerContext.
type ServerContextOption func(*ServerContext)

// WithMetrics sets the metrics recorder used by tools.
func WithMetrics(metrics *instrumentation.Metrics) ServerContextOption {
	return func(sc *ServerContext) {
		sc.metrics = metrics
	}
}

// WithAuditLogger sets the audit logger used by tools.
func WithAuditLogger(auditLogger *instrumentation.AuditLogger) ServerContextOption {
	return func(sc *ServerContext) {
		sc.auditLogger = auditLogger
	}
}

// WithLogger sets the logger for the server context.
func WithLogger(logger *slog.Logger) ServerContextOption {
	return func(sc *ServerContext) {
		if logger != nil {
			sc.logger = logger
		}
	}
}

// WithReadOnly marks the server as read-only. Destructive tools are not
// registered when set.
func WithReadOnly(readOnly bool) ServerContextOption {
	return func(sc *ServerContext) {
		sc.readOnly = readOnly
	}
}

// NewServerContext creates a new server context
func NewServerContext(ctx context.Context, opts ...ServerContextOption) (*ServerContext, error) {
	shutdownCtx, cancel := context.WithCancel(ctx)

	sc := &ServerContext{
		ctx:      shutdownCtx,
		cancel:   cancel,
		managers: make(map[string]*documents.Manager),
		logger:   slog.Default(),
		shutdown: false,
	}

	for _, opt := range opts {
		opt(sc)
	}

	// Try to create the default manager eagerly, but don't fail if the key
	// file is missing. Managers are lazily initialized when first needed.
	if google.HasKeyFile() {
		manager, err := documents.NewManager(shutdownCtx, sc.managerOptions()...)
		if err != nil {
			sc.logger.Warn("failed to create manager for default account", logging.Err(err))
		} else {
			sc.managers[google.DefaultAccount] = manager
		}
	}

	return sc, nil
}

// Context returns the server context
func (sc *ServerContext) Context() context.Context {
	return sc.ctx
}

func (sc *ServerContext) managerOptions() []documents.Option {
	opts := []documents.Option{documents.WithLogger(sc.logger)}
	if sc.metrics != nil {
		opts = append(opts, documents.WithMetrics(sc.metrics))
	}
	return opts
}

// ManagerForAccount returns the document manager for a specific account.
// Creates and caches the manager if it doesn't exist yet.
// Returns nil if the account has no service account key file.
func (sc *ServerContext) ManagerForAccount(account string) *documents.Manager {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	// Check if manager already exists
	if manager, ok := sc.managers[account]; ok {
		return manager
	}

	// Try to create manager if a key file exists
	if !google.HasKeyFileForAccount(account) {
		return nil
	}

	manager, err := documents.NewManagerForAccount(sc.ctx, account, sc.managerOptions()...)
	if err != nil {
		sc.logger.Warn("failed to create manager",
			logging.Account(account),
			logging.Err(err),
		)
		return nil
	}

	sc.managers[account] = manager
	return manager
}

// Manager returns the document manager for the default account
func (sc *ServerContext) Manager() *documents.Manager {
	return sc.ManagerForAccount(google.DefaultAccount)
}

// SetManagerForAccount sets the document manager for a specific account
func (sc *ServerContext) SetManagerForAccount(account string, manager *documents.Manager) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.managers[account] = manager
}

// SetManager sets the document manager for the default account
func (sc *ServerContext) SetManager(manager *documents.Manager) {
	sc.SetManagerForAccount(google.DefaultAccount, manager)
}

// SetMetrics sets the metrics recorder after construction.
func (sc *ServerContext) SetMetrics(metrics *instrumentation.Metrics) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.metrics = metrics
}

// SetAuditLogger sets the audit logger after construction.
func (sc *ServerContext) SetAuditLogger(auditLogger *instrumentation.AuditLogger) {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.auditLogger = auditLogger
}

// Accounts returns the names of accounts with an active document manager.
func (sc *ServerContext) Accounts() []string {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	accounts := make([]string, 0, len(sc.managers))
	for account := range sc.managers {
		accounts = append(accounts, account)
	}
	return accounts
}

// Metrics returns the metrics recorder, which may be nil.
func (sc *ServerContext) Metrics() *instrumentation.Metrics {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.metrics
}

// AuditLogger returns the audit logger, which may be nil.
func (sc *ServerContext) AuditLogger() *instrumentation.AuditLogger {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.auditLogger
}

// Logger returns the server logger.
func (sc *ServerContext) Logger() *slog.Logger {
	return sc.logger
}

// ReadOnly returns whether the server runs in read-only mode.
func (sc *ServerContext) ReadOnly() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.readOnly
}

// IsShutdown returns whether the server has been shutdown
func (sc *ServerContext) IsShutdown() bool {
	sc.mu.RLock()
	defer sc.mu.RUnlock()
	return sc.shutdown
}

// Shutdown shuts down the server context
func (sc *ServerContext) Shutdown() error {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if sc.shutdown {
		return nil
	}

	sc.shutdown = true
	sc.cancel()
	return nil
}
