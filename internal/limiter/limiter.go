// Package limiter implements the admission gate that meters expensive
// generation calls per identity in fixed windows.
package limiter

import (
	"context"
	"sync"
	"time"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/model"
)

// Gate admits or rejects one generation call for an identity.
type Gate interface {
	// CheckAndConsume atomically consumes one call from the identity's window.
	// On rejection the error is a *errs.QuotaExceededError.
	CheckAndConsume(ctx context.Context, identity string) (model.QuotaRecord, error)
}

// Policy is the window size and call budget.
type Policy struct {
	Limit  int
	Window time.Duration
}

// DefaultPolicy is 200 calls per 5 hours.
var DefaultPolicy = Policy{Limit: model.QuotaLimit, Window: model.QuotaWindow}

// Decide applies one admission step to cur, which is nil when the identity
// has no record yet. It returns the record to persist.
//
// The window is fixed: once it lapses the next call starts a fresh one, so up
// to 2*Limit calls can straddle a boundary.
func (p Policy) Decide(cur *model.QuotaRecord, identity string, now time.Time) (model.QuotaRecord, error) {
	switch {
	case cur == nil || !now.Before(cur.WindowExpiresAt):
		return model.QuotaRecord{Identity: identity, Count: 1, WindowExpiresAt: now.Add(p.Window)}, nil
	case cur.Count >= p.Limit:
		return *cur, &errs.QuotaExceededError{ResetsAt: cur.WindowExpiresAt}
	default:
		next := *cur
		next.Count++
		return next, nil
	}
}

// Memory is the process-local Gate behind BackendMemory. Counters do not
// survive restarts and are not shared between instances.
type Memory struct {
	mu     sync.Mutex
	policy Policy
	now    func() time.Time
	recs   map[string]model.QuotaRecord
}

// NewMemory constructs an in-process gate. A nil clock means time.Now.
func NewMemory(p Policy, now func() time.Time) *Memory {
	if now == nil {
		now = time.Now
	}
	return &Memory{policy: p, now: now, recs: make(map[string]model.QuotaRecord)}
}

func (m *Memory) CheckAndConsume(_ context.Context, identity string) (model.QuotaRecord, error) {
	if identity == "" {
		return model.QuotaRecord{}, errs.ErrUnauthenticated
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	var cur *model.QuotaRecord
	if r, ok := m.recs[identity]; ok {
		cur = &r
	}
	next, err := m.policy.Decide(cur, identity, m.now())
	if err != nil {
		return next, err
	}
	m.recs[identity] = next
	return next, nil
}
