package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Vouchers returns a copy of every recorded voucher.
func (s *Store) Vouchers() []Voucher {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Voucher(nil), s.vouchers...)
}

// Voucher looks up a recorded voucher.
func (s *Store) Voucher(id string) (Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, vch := range s.vouchers {
		if vch.ID == id {
			return vch, nil
		}
	}
	return Voucher{}, ErrNotFound
}

// NextVoucherNo suggests a reference for a new voucher.
func (s *Store) NextVoucherNo() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf("VCH-%d", 101+len(s.vouchers))
}

// PostVoucher records a voucher and applies its debit/credit pair. A missing
// account on either side silently skips that side's delta.
func (s *Store) PostVoucher(ctx context.Context, vch Voucher) (Voucher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prepared, err := prepareVoucher(vch)
	if err != nil {
		return Voucher{}, err
	}
	s.postVoucherLocked(prepared)
	return prepared, s.flush(ctx)
}

// DeleteVoucher reverses a voucher and removes it; absent ids are a no-op.
func (s *Store) DeleteVoucher(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.deleteVoucherLocked(id) {
		return nil
	}
	return s.flush(ctx)
}

// UpdateVoucher is reversal-then-repost, matching the invoice contract.
func (s *Store) UpdateVoucher(ctx context.Context, vch Voucher) (Voucher, error) {
	if vch.ID == "" {
		return Voucher{}, fmt.Errorf("%w: voucher id required", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prepared, err := prepareVoucher(vch)
	if err != nil {
		return Voucher{}, err
	}
	s.deleteVoucherLocked(vch.ID)
	s.postVoucherLocked(prepared)
	return prepared, s.flush(ctx)
}

func prepareVoucher(vch Voucher) (Voucher, error) {
	if vch.DrAccountID == "" {
		return Voucher{}, fmt.Errorf("%w: debit account required", ErrValidation)
	}
	if vch.CrAccountID == "" {
		return Voucher{}, fmt.Errorf("%w: credit account required", ErrValidation)
	}
	if vch.DrAccountID == vch.CrAccountID {
		return Voucher{}, fmt.Errorf("%w: debit and credit account must differ", ErrValidation)
	}
	if vch.Amount <= 0 {
		return Voucher{}, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if vch.ID == "" {
		vch.ID = uuid.NewString()
	}
	if vch.Date == "" {
		vch.Date = time.Now().Format("2006-01-02")
	}
	if vch.Type == "" {
		vch.Type = VoucherTypeJournal
	}
	return vch, nil
}

func (s *Store) postVoucherLocked(vch Voucher) {
	s.vouchers = append(s.vouchers, vch)
	s.applyVoucherEffects(vch, 1)
}

func (s *Store) deleteVoucherLocked(id string) bool {
	for i := range s.vouchers {
		if s.vouchers[i].ID == id {
			s.applyVoucherEffects(s.vouchers[i], -1)
			s.vouchers = append(s.vouchers[:i], s.vouchers[i+1:]...)
			return true
		}
	}
	return false
}

// applyVoucherEffects posts or reverses the debit/credit pair. Every tag
// posts the same journal shape.
func (s *Store) applyVoucherEffects(vch Voucher, sign float64) {
	s.applyBalanceDelta(vch.DrAccountID, sign*vch.Amount)
	s.applyBalanceDelta(vch.CrAccountID, -sign*vch.Amount)
}
