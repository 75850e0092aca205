package bootstrap

import "context"

type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

// AuditLogger records operational audit events (startup, shutdown,
// batch runs). Implementations must be safe for concurrent use.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
