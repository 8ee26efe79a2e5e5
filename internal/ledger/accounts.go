package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Accounts returns a copy of every ledger account.
func (s *Store) Accounts() []Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Account(nil), s.accounts...)
}

// Account looks up a single account.
func (s *Store) Account(id string) (Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.ID == id {
			return acc, nil
		}
	}
	return Account{}, ErrNotFound
}

// AccountBalance reports the running balance for an account, zero when the
// account does not exist.
func (s *Store) AccountBalance(id string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, acc := range s.accounts {
		if acc.ID == id {
			return acc.Balance
		}
	}
	return 0
}

// AddAccount opens a ledger account. The running balance starts at the
// opening balance.
func (s *Store) AddAccount(ctx context.Context, acc Account) (Account, error) {
	if strings.TrimSpace(acc.Name) == "" {
		return Account{}, fmt.Errorf("%w: account name required", ErrValidation)
	}
	if acc.Type == "" {
		return Account{}, fmt.Errorf("%w: account type required", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if acc.ID == "" {
		acc.ID = uuid.NewString()
	}
	acc.Balance = acc.OpeningBalance
	s.accounts = append(s.accounts, acc)
	return acc, s.flush(ctx)
}

// UpdateAccount replaces the profile fields of an account. The running
// balance is carried over: only posted transactions move it.
func (s *Store) UpdateAccount(ctx context.Context, acc Account) (Account, error) {
	if acc.ID == "" {
		return Account{}, fmt.Errorf("%w: account id required", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == acc.ID {
			acc.Balance = s.accounts[i].Balance + (acc.OpeningBalance - s.accounts[i].OpeningBalance)
			s.accounts[i] = acc
			return acc, s.flush(ctx)
		}
	}
	return Account{}, ErrNotFound
}

// DeleteAccount removes an account. Documents referencing it are left in
// place; subsequent ledger effects against the id silently no-op.
func (s *Store) DeleteAccount(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.accounts {
		if s.accounts[i].ID == id {
			s.accounts = append(s.accounts[:i], s.accounts[i+1:]...)
			return s.flush(ctx)
		}
	}
	return nil
}
