package ledger

import (
	"context"
	"errors"
	"sync"
)

// Snapshot is the aggregate persisted after every mutation. It mirrors the
// on-disk JSON blob key for key.
type Snapshot struct {
	Items    []Item    `json:"items"`
	Accounts []Account `json:"accounts"`
	Invoices []Invoice `json:"invoices"`
	Vouchers []Voucher `json:"vouchers"`
	BOMs     []BOM     `json:"boms"`
}

// ErrSnapshotNotFound signals a gateway with no persisted state yet.
var ErrSnapshotNotFound = errors.New("ledger: snapshot not found")

// SnapshotStore abstracts the persistence gateway. The store treats it as an
// opaque load-at-startup/save-on-change blob; no transactional guarantees are
// assumed.
type SnapshotStore interface {
	Load(ctx context.Context) (Snapshot, error)
	Save(ctx context.Context, snap Snapshot) error
	LoadSettings(ctx context.Context) (CompanySettings, error)
	SaveSettings(ctx context.Context, settings CompanySettings) error
}

// Store owns every ledger collection and serialises all mutations. The
// business model is single-writer; the mutex exists because the HTTP surface
// above it is not.
type Store struct {
	mu sync.Mutex

	items    []Item
	accounts []Account
	invoices []Invoice
	vouchers []Voucher
	boms     []BOM
	settings CompanySettings

	gateway SnapshotStore
}

// NewStore builds an empty store flushing to the given gateway. A nil
// gateway keeps everything in memory.
func NewStore(gateway SnapshotStore) *Store {
	return &Store{gateway: gateway, settings: DefaultSettings()}
}

// Hydrate loads persisted state, seeding the sample dataset when the gateway
// holds nothing yet.
func (s *Store) Hydrate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gateway == nil {
		s.applySeed()
		return nil
	}
	if settings, err := s.gateway.LoadSettings(ctx); err == nil {
		s.settings = settings
	} else if !errors.Is(err, ErrSnapshotNotFound) {
		return err
	}
	snap, err := s.gateway.Load(ctx)
	if errors.Is(err, ErrSnapshotNotFound) {
		s.applySeed()
		return s.flush(ctx)
	}
	if err != nil {
		return err
	}
	s.replaceAll(snap)
	return nil
}

// flush persists the aggregate. Callers must hold the mutex.
func (s *Store) flush(ctx context.Context) error {
	if s.gateway == nil {
		return nil
	}
	return s.gateway.Save(ctx, s.snapshot())
}

// snapshot copies the aggregate. Callers must hold the mutex.
func (s *Store) snapshot() Snapshot {
	return Snapshot{
		Items:    append([]Item(nil), s.items...),
		Accounts: append([]Account(nil), s.accounts...),
		Invoices: cloneInvoices(s.invoices),
		Vouchers: append([]Voucher(nil), s.vouchers...),
		BOMs:     cloneBOMs(s.boms),
	}
}

func (s *Store) replaceAll(snap Snapshot) {
	s.items = snap.Items
	s.accounts = snap.Accounts
	s.invoices = snap.Invoices
	s.vouchers = snap.Vouchers
	s.boms = snap.BOMs
}

func cloneInvoices(in []Invoice) []Invoice {
	out := make([]Invoice, len(in))
	for i, inv := range in {
		inv.Items = append([]InvoiceItem(nil), inv.Items...)
		out[i] = inv
	}
	return out
}

func cloneBOMs(in []BOM) []BOM {
	out := make([]BOM, len(in))
	for i, b := range in {
		b.Components = append([]BOMComponent(nil), b.Components...)
		out[i] = b
	}
	return out
}

// Snapshot returns a copy of the current aggregate for read-only consumers.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Settings returns the current company profile.
func (s *Store) Settings() CompanySettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// UpdateSettings replaces the company profile.
func (s *Store) UpdateSettings(ctx context.Context, settings CompanySettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
	if s.gateway == nil {
		return nil
	}
	return s.gateway.SaveSettings(ctx, settings)
}

// applyBalanceDelta moves an account balance by a signed amount. Unknown
// account ids are a deliberate no-op: a dangling reference must never brick
// the engine.
func (s *Store) applyBalanceDelta(accountID string, amount float64) {
	for i := range s.accounts {
		if s.accounts[i].ID == accountID {
			s.accounts[i].Balance += amount
			return
		}
	}
}

// applyStockDelta moves an item's on-hand quantity by a signed amount.
// Unknown item ids are a no-op; no stock floor is enforced.
func (s *Store) applyStockDelta(itemID string, qty float64) {
	for i := range s.items {
		if s.items[i].ID == itemID {
			s.items[i].Stock += qty
			return
		}
	}
}

func (s *Store) stockOf(itemID string) (float64, bool) {
	for i := range s.items {
		if s.items[i].ID == itemID {
			return s.items[i].Stock, true
		}
	}
	return 0, false
}
