package limiter

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"

	"github.com/and161185/flashdeck/internal/errs"
	"github.com/and161185/flashdeck/internal/model"
)

// errLostRace is returned when a concurrent first call inserted the record
// between our SELECT and INSERT.
var errLostRace = errors.New("quota record created concurrently")

// PG is a PostgreSQL-backed gate. Each call runs in its own transaction that
// locks the identity's row, so concurrent callers for one identity serialize.
type PG struct {
	pool       pgxBeginner
	policy     Policy
	now        func() time.Time
	maxRetries uint64
	baseDelay  time.Duration
	log        *zap.Logger
}

type pgxBeginner interface {
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
}

// Option customizes a PG gate.
type Option func(*PG)

// WithClock overrides time.Now.
func WithClock(now func() time.Time) Option { return func(l *PG) { l.now = now } }

// WithRetry sets how many times a conflicting transaction is retried and the
// first backoff delay.
func WithRetry(max uint64, base time.Duration) Option {
	return func(l *PG) { l.maxRetries, l.baseDelay = max, base }
}

// NewPG constructs a PostgreSQL-backed gate.
func NewPG(pool *pgxpool.Pool, p Policy, log *zap.Logger, opts ...Option) *PG {
	return NewPGWithQuerier(pool, p, log, opts...)
}

// NewPGWithQuerier constructs a gate over any transaction starter (pgxmock in tests).
func NewPGWithQuerier(q pgxBeginner, p Policy, log *zap.Logger, opts ...Option) *PG {
	if log == nil {
		log = zap.NewNop()
	}
	l := &PG{pool: q, policy: p, now: time.Now, maxRetries: 5, baseDelay: 10 * time.Millisecond, log: log}
	for _, o := range opts {
		o(l)
	}
	return l
}

// CheckAndConsume runs the admission step in a transaction, retrying on
// serialization failures, deadlocks and lost first-insert races.
func (l *PG) CheckAndConsume(ctx context.Context, identity string) (model.QuotaRecord, error) {
	if identity == "" {
		return model.QuotaRecord{}, errs.ErrUnauthenticated
	}

	var rec model.QuotaRecord
	b := retry.WithMaxRetries(l.maxRetries, retry.NewExponential(l.baseDelay))
	err := retry.Do(ctx, b, func(ctx context.Context) error {
		r, err := l.consume(ctx, identity)
		if err != nil {
			if isRetryable(err) {
				l.log.Debug("quota tx conflict, retrying", zap.String("identity", identity), zap.Error(err))
				return retry.RetryableError(err)
			}
			return err
		}
		rec = r
		return nil
	})
	switch {
	case err == nil:
		return rec, nil
	case errors.Is(err, errs.ErrQuotaExceeded), errors.Is(err, context.Canceled):
		return rec, err
	default:
		return model.QuotaRecord{}, errs.Transient("check quota", err)
	}
}

func (l *PG) consume(ctx context.Context, identity string) (rec model.QuotaRecord, err error) {
	tx, err := l.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return model.QuotaRecord{}, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
			return
		}
		if e := tx.Commit(ctx); e != nil {
			err = e
		}
	}()

	const sel = `SELECT count, window_expires_at FROM quota_records WHERE identity=$1 FOR UPDATE`
	const ins = `
INSERT INTO quota_records (identity, count, window_expires_at) VALUES ($1,$2,$3)
ON CONFLICT (identity) DO NOTHING`
	const upd = `UPDATE quota_records SET count=$2, window_expires_at=$3 WHERE identity=$1`

	var cur *model.QuotaRecord
	var (
		count   int
		expires time.Time
	)
	scanErr := tx.QueryRow(ctx, sel, identity).Scan(&count, &expires)
	switch {
	case scanErr == nil:
		cur = &model.QuotaRecord{Identity: identity, Count: count, WindowExpiresAt: expires}
	case errors.Is(scanErr, pgx.ErrNoRows):
	default:
		return model.QuotaRecord{}, scanErr
	}

	rec, err = l.policy.Decide(cur, identity, l.now())
	if err != nil {
		return rec, err
	}

	if cur == nil {
		tag, e := tx.Exec(ctx, ins, identity, rec.Count, rec.WindowExpiresAt)
		if e != nil {
			return model.QuotaRecord{}, e
		}
		if tag.RowsAffected() == 0 {
			return model.QuotaRecord{}, errLostRace
		}
		return rec, nil
	}
	if _, err = tx.Exec(ctx, upd, identity, rec.Count, rec.WindowExpiresAt); err != nil {
		return model.QuotaRecord{}, err
	}
	return rec, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, errLostRace) {
		return true
	}
	var pg *pgconn.PgError
	return errors.As(err, &pg) && (pg.Code == "40001" || pg.Code == "40P01")
}
