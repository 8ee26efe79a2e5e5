package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/veewell/veewell-erp/internal/gst"
)

// Invoices returns a copy of every recorded invoice.
func (s *Store) Invoices() []Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneInvoices(s.invoices)
}

// Invoice looks up a recorded invoice.
func (s *Store) Invoice(id string) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			inv.Items = append([]InvoiceItem(nil), inv.Items...)
			return inv, nil
		}
	}
	return Invoice{}, ErrNotFound
}

// NextInvoiceNo suggests a document number for a new invoice. Suggestions
// are convenience only: caller-supplied numbers may be blank or collide.
func (s *Store) NextInvoiceNo(invType InvoiceType) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, inv := range s.invoices {
		if inv.Type == invType {
			count++
		}
	}
	if invType == InvoiceTypePurchase {
		return fmt.Sprintf("PR-%d", 101+count)
	}
	prefix := s.settings.InvoicePrefix
	if prefix == "" {
		prefix = "INV"
	}
	return fmt.Sprintf("%s-%d", prefix, 1001+count)
}

// PostInvoice records an invoice and applies its ledger and stock effects in
// one step. Line rows without an item reference are dropped before totals
// are computed. Tax is recomputed server-side from the company state and the
// counterparty account's state.
func (s *Store) PostInvoice(ctx context.Context, inv Invoice) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prepared, err := s.prepareInvoice(inv)
	if err != nil {
		return Invoice{}, err
	}
	s.postInvoiceLocked(prepared)
	return prepared, s.flush(ctx)
}

// DeleteInvoice reverses an invoice's effects and removes it. Deleting an
// absent id is tolerated as a no-op.
func (s *Store) DeleteInvoice(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.deleteInvoiceLocked(id) {
		return nil
	}
	return s.flush(ctx)
}

// UpdateInvoice is defined as full reversal of the stored version followed
// by a fresh post of the new version, never a partial diff. Moving the
// document to another account or changing quantities nets out correctly as a
// consequence.
func (s *Store) UpdateInvoice(ctx context.Context, inv Invoice) (Invoice, error) {
	if inv.ID == "" {
		return Invoice{}, fmt.Errorf("%w: invoice id required", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	prepared, err := s.prepareInvoice(inv)
	if err != nil {
		return Invoice{}, err
	}
	s.deleteInvoiceLocked(inv.ID)
	s.postInvoiceLocked(prepared)
	return prepared, s.flush(ctx)
}

// prepareInvoice validates and normalises a caller-supplied invoice.
// Callers must hold the mutex.
func (s *Store) prepareInvoice(inv Invoice) (Invoice, error) {
	if strings.TrimSpace(inv.AccountID) == "" {
		return Invoice{}, fmt.Errorf("%w: account required", ErrValidation)
	}
	switch inv.Type {
	case InvoiceTypeSales, InvoiceTypePurchase, InvoiceTypeProforma:
	default:
		return Invoice{}, fmt.Errorf("%w: unknown invoice type %q", ErrValidation, inv.Type)
	}
	lines := make([]InvoiceItem, 0, len(inv.Items))
	taxLines := make([]gst.Line, 0, len(inv.Items))
	for _, line := range inv.Items {
		if line.ItemID == "" {
			continue
		}
		line.Amount = gst.LineAmount(line.Qty, line.Rate)
		lines = append(lines, line)
		taxLines = append(taxLines, gst.Line{ItemID: line.ItemID, Qty: line.Qty, Rate: line.Rate, GSTRate: line.GSTRate})
	}
	if len(lines) == 0 {
		return Invoice{}, fmt.Errorf("%w: at least one line item required", ErrValidation)
	}
	inv.Items = lines

	counterpartyState := ""
	for _, acc := range s.accounts {
		if acc.ID == inv.AccountID {
			counterpartyState = acc.State
			if inv.AccountName == "" {
				inv.AccountName = acc.Name
			}
			break
		}
	}
	breakup := gst.Compute(s.settings.State, counterpartyState, taxLines)
	inv.SubTotal = breakup.SubTotal
	inv.CGST = breakup.CGST
	inv.SGST = breakup.SGST
	inv.IGST = breakup.IGST
	inv.RoundOff = breakup.RoundOff
	inv.Total = breakup.Total

	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.Date == "" {
		inv.Date = time.Now().Format("2006-01-02")
	}
	if inv.Status == "" {
		inv.Status = InvoiceStatusUnpaid
	}
	return inv, nil
}

// postInvoiceLocked appends and applies effects. Callers must hold the mutex.
func (s *Store) postInvoiceLocked(inv Invoice) {
	s.invoices = append(s.invoices, inv)
	s.applyInvoiceEffects(inv, 1)
}

// deleteInvoiceLocked reverses and removes; reports whether anything changed.
// Callers must hold the mutex.
func (s *Store) deleteInvoiceLocked(id string) bool {
	for i := range s.invoices {
		if s.invoices[i].ID == id {
			s.applyInvoiceEffects(s.invoices[i], -1)
			s.invoices = append(s.invoices[:i], s.invoices[i+1:]...)
			return true
		}
	}
	return false
}

// applyInvoiceEffects posts (sign=+1) or reverses (sign=-1) an invoice's
// account and stock deltas. Proforma documents carry no ledger effect.
func (s *Store) applyInvoiceEffects(inv Invoice, sign float64) {
	switch inv.Type {
	case InvoiceTypeSales:
		s.applyBalanceDelta(inv.AccountID, sign*inv.Total)
		for _, line := range inv.Items {
			s.applyStockDelta(line.ItemID, -sign*line.Qty)
		}
	case InvoiceTypePurchase:
		s.applyBalanceDelta(inv.AccountID, -sign*inv.Total)
		for _, line := range inv.Items {
			s.applyStockDelta(line.ItemID, sign*line.Qty)
		}
	}
}
