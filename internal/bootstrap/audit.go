package bootstrap

import "context"

// AuditLog is one operator-visible audit entry. Administrative overrides
// (e.g. unlocking a payroll run) must pass through here with the actor's
// identity in Meta.
type AuditLog struct {
	Action  string
	Message string
	Meta    map[string]any
}

type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
