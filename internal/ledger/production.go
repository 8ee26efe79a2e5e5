package ledger

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// BOMs returns a copy of every production recipe.
func (s *Store) BOMs() []BOM {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneBOMs(s.boms)
}

// AddBOM defines a production recipe. Recipes are immutable once defined.
func (s *Store) AddBOM(ctx context.Context, bom BOM) (BOM, error) {
	if strings.TrimSpace(bom.Name) == "" {
		return BOM{}, fmt.Errorf("%w: bom name required", ErrValidation)
	}
	if bom.FinishedItemID == "" {
		return BOM{}, fmt.Errorf("%w: finished item required", ErrValidation)
	}
	if len(bom.Components) == 0 {
		return BOM{}, fmt.Errorf("%w: at least one component required", ErrValidation)
	}
	for i, c := range bom.Components {
		if c.ItemID == "" {
			return BOM{}, fmt.Errorf("%w: component %d missing item", ErrValidation, i)
		}
		if c.Qty <= 0 {
			return BOM{}, fmt.Errorf("%w: component %d quantity must be positive", ErrValidation, i)
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if bom.ID == "" {
		bom.ID = uuid.NewString()
	}
	s.boms = append(s.boms, bom)
	return bom, s.flush(ctx)
}

// Produce consumes one recipe's worth of raw material and adds one finished
// unit. Every component precondition is evaluated against the same stock
// snapshot before any delta is applied: a shortfall on any component leaves
// all stock untouched. Production is not reversible and stores no record
// beyond the stock deltas.
func (s *Store) Produce(ctx context.Context, bomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var bom *BOM
	for i := range s.boms {
		if s.boms[i].ID == bomID {
			bom = &s.boms[i]
			break
		}
	}
	if bom == nil {
		return ErrNotFound
	}
	for _, c := range bom.Components {
		stock, ok := s.stockOf(c.ItemID)
		if !ok || stock < c.Qty {
			return fmt.Errorf("%w: component %s", ErrInsufficientStock, c.ItemID)
		}
	}
	for _, c := range bom.Components {
		s.applyStockDelta(c.ItemID, -c.Qty)
	}
	s.applyStockDelta(bom.FinishedItemID, 1)
	return s.flush(ctx)
}
