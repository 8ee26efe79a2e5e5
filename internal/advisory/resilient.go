package advisory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"
)

// Resilient decorates another Service with a timeout, identical-request
// deduplication and fixed fallbacks. Failures degrade silently; nothing past
// this type ever sees an advisory error.
type Resilient struct {
	inner   Service
	logger  *slog.Logger
	timeout time.Duration
	group   singleflight.Group
}

// NewResilient wraps inner. A zero timeout defaults to 15s.
func NewResilient(inner Service, logger *slog.Logger, timeout time.Duration) *Resilient {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Resilient{inner: inner, logger: logger, timeout: timeout}
}

// Summarize dedups concurrent identical snapshots and falls back to the
// placeholder text on any failure.
func (r *Resilient) Summarize(ctx context.Context, snap FinancialSnapshot) (string, error) {
	key := fmt.Sprintf("summary:%+v", snap)
	v, err, _ := r.do(ctx, key, func(ctx context.Context) (any, error) {
		return r.inner.Summarize(ctx, snap)
	})
	if err != nil {
		r.logger.Warn("advisory summary failed", slog.Any("error", err))
		return FallbackSummary, nil
	}
	return v.(string), nil
}

// VerifyTaxID falls back to a failed-but-harmless verdict on any failure.
func (r *Resilient) VerifyTaxID(ctx context.Context, gstin string) (Verification, error) {
	v, err, _ := r.do(ctx, "verify:"+gstin, func(ctx context.Context) (any, error) {
		return r.inner.VerifyTaxID(ctx, gstin)
	})
	if err != nil {
		r.logger.Warn("gstin verification failed", slog.Any("error", err))
		return Verification{IsValid: false, ErrorMessage: "Verification failed. Please try again."}, nil
	}
	return v.(Verification), nil
}

func (r *Resilient) do(ctx context.Context, key string, fn func(context.Context) (any, error)) (any, error, bool) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	resultChan := r.group.DoChan(key, func() (any, error) {
		return fn(ctx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err(), false
	case res := <-resultChan:
		return res.Val, res.Err, res.Shared
	}
}
