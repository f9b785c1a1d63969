package limiter

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Backend selects where quota records live.
type Backend string

const (
	// BackendPostgres shares counters between replicas and survives restarts.
	BackendPostgres Backend = "postgres"
	// BackendMemory keeps counters in the process; for a single replica only.
	BackendMemory Backend = "memory"
)

// New builds the gate for b. The pool is ignored by the memory backend.
func New(b Backend, pool *pgxpool.Pool, p Policy, log *zap.Logger, opts ...Option) (Gate, error) {
	switch b {
	case BackendPostgres, "":
		return NewPG(pool, p, log, opts...), nil
	case BackendMemory:
		if log != nil {
			log.Warn("quota counters are process-local and reset on restart")
		}
		return NewMemory(p, nil), nil
	default:
		return nil, fmt.Errorf("limiter: unknown backend %q", b)
	}
}
