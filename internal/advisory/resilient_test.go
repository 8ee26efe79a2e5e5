package advisory

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type scriptedService struct {
	summary    string
	summaryErr error
	verdict    Verification
	verdictErr error
	delay      time.Duration
	calls      int
}

func (s *scriptedService) Summarize(ctx context.Context, snap FinancialSnapshot) (string, error) {
	s.calls++
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(s.delay):
		}
	}
	return s.summary, s.summaryErr
}

func (s *scriptedService) VerifyTaxID(ctx context.Context, gstin string) (Verification, error) {
	s.calls++
	return s.verdict, s.verdictErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestResilientPassesThrough(t *testing.T) {
	inner := &scriptedService{summary: "Healthy margins.", verdict: Verification{IsValid: true, LegalName: "Veewell"}}
	r := NewResilient(inner, testLogger(), 0)

	got, err := r.Summarize(context.Background(), FinancialSnapshot{SalesTotal: 100})
	require.NoError(t, err)
	require.Equal(t, "Healthy margins.", got)

	v, err := r.VerifyTaxID(context.Background(), "27AABCV1234D1Z5")
	require.NoError(t, err)
	require.True(t, v.IsValid)
	require.Equal(t, "Veewell", v.LegalName)
}

func TestResilientFallsBackOnError(t *testing.T) {
	inner := &scriptedService{summaryErr: errors.New("boom"), verdictErr: errors.New("boom")}
	r := NewResilient(inner, testLogger(), 0)

	got, err := r.Summarize(context.Background(), FinancialSnapshot{})
	require.NoError(t, err)
	require.Equal(t, FallbackSummary, got)

	v, err := r.VerifyTaxID(context.Background(), "bad")
	require.NoError(t, err)
	require.False(t, v.IsValid)
	require.NotEmpty(t, v.ErrorMessage)
}

func TestResilientTimesOutToFallback(t *testing.T) {
	inner := &scriptedService{summary: "late", delay: time.Second}
	r := NewResilient(inner, testLogger(), 20*time.Millisecond)

	start := time.Now()
	got, err := r.Summarize(context.Background(), FinancialSnapshot{})
	require.NoError(t, err)
	require.Equal(t, FallbackSummary, got)
	require.Less(t, time.Since(start), 500*time.Millisecond)
}

func TestNoopStub(t *testing.T) {
	var n Noop
	got, err := n.Summarize(context.Background(), FinancialSnapshot{})
	require.NoError(t, err)
	require.Equal(t, FallbackSummary, got)

	v, err := n.VerifyTaxID(context.Background(), "27AABCV1234D1Z5")
	require.NoError(t, err)
	require.False(t, v.IsValid)
}
