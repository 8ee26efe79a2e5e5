package ledger

import (
	"context"
	"encoding/json"
	"fmt"
)

// exportEnvelope is the canonical backup document shape.
type exportEnvelope struct {
	Items           []Item           `json:"items"`
	Accounts        []Account        `json:"accounts"`
	Invoices        []Invoice        `json:"invoices"`
	Vouchers        []Voucher        `json:"vouchers"`
	BOMs            []BOM            `json:"boms"`
	CompanySettings *CompanySettings `json:"companySettings,omitempty"`
}

// Export serialises the full aggregate, company settings included, as
// pretty-printed JSON.
func (s *Store) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.snapshot()
	settings := s.settings
	env := exportEnvelope{
		Items:           snap.Items,
		Accounts:        snap.Accounts,
		Invoices:        snap.Invoices,
		Vouchers:        snap.Vouchers,
		BOMs:            snap.BOMs,
		CompanySettings: &settings,
	}
	return json.MarshalIndent(env, "", "  ")
}

// Import replaces the whole aggregate with a previously exported document.
// All-or-nothing: a payload that fails to parse leaves every collection and
// the settings untouched. Missing collections default to empty; settings are
// replaced only when present.
func (s *Store) Import(ctx context.Context, data []byte) error {
	var env exportEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedImport, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replaceAll(Snapshot{
		Items:    emptyIfNil(env.Items),
		Accounts: emptyIfNil(env.Accounts),
		Invoices: emptyIfNil(env.Invoices),
		Vouchers: emptyIfNil(env.Vouchers),
		BOMs:     emptyIfNil(env.BOMs),
	})
	if env.CompanySettings != nil {
		s.settings = *env.CompanySettings
		if s.gateway != nil {
			if err := s.gateway.SaveSettings(ctx, s.settings); err != nil {
				return err
			}
		}
	}
	return s.flush(ctx)
}

func emptyIfNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
