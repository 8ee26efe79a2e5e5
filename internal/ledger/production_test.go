package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func productionFixture(t *testing.T) (*Store, BOM) {
	t.Helper()
	s := NewStore(nil)
	ctx := context.Background()
	for _, it := range []Item{
		{ID: "raw-a", Name: "Paracetamol API", Code: "API001", Unit: "KG", Stock: 10},
		{ID: "raw-b", Name: "Binder", Code: "BND001", Unit: "KG", Stock: 10},
		{ID: "fin", Name: "Paracetamol Tablet", Code: "TAB002", Unit: "BOX"},
	} {
		_, err := s.AddItem(ctx, it)
		require.NoError(t, err)
	}
	bom, err := s.AddBOM(ctx, BOM{
		Name:           "Paracetamol Production",
		FinishedItemID: "fin",
		Components: []BOMComponent{
			{ItemID: "raw-a", Qty: 2},
			{ItemID: "raw-b", Qty: 1},
		},
	})
	require.NoError(t, err)
	return s, bom
}

func TestProduceSuccess(t *testing.T) {
	s, bom := productionFixture(t)
	require.NoError(t, s.Produce(context.Background(), bom.ID))

	a, _ := s.Item("raw-a")
	b, _ := s.Item("raw-b")
	fin, _ := s.Item("fin")
	require.InDelta(t, 8.0, a.Stock, 0.0001)
	require.InDelta(t, 9.0, b.Stock, 0.0001)
	require.InDelta(t, 1.0, fin.Stock, 0.0001)
}

func TestProduceAllOrNothing(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()
	for _, it := range []Item{
		{ID: "a", Name: "Component A", Code: "A", Stock: 3},
		{ID: "b", Name: "Component B", Code: "B", Stock: 10},
		{ID: "fin", Name: "Finished", Code: "F"},
	} {
		_, err := s.AddItem(ctx, it)
		require.NoError(t, err)
	}
	bom, err := s.AddBOM(ctx, BOM{
		Name:           "Short Run",
		FinishedItemID: "fin",
		Components: []BOMComponent{
			{ItemID: "a", Qty: 5},
			{ItemID: "b", Qty: 2},
		},
	})
	require.NoError(t, err)

	err = s.Produce(ctx, bom.ID)
	require.ErrorIs(t, err, ErrInsufficientStock)

	// B was sufficient but must not have been consumed before A failed.
	a, _ := s.Item("a")
	b, _ := s.Item("b")
	fin, _ := s.Item("fin")
	require.InDelta(t, 3.0, a.Stock, 0.0001)
	require.InDelta(t, 10.0, b.Stock, 0.0001)
	require.Zero(t, fin.Stock)
}

func TestProduceMissingComponentItem(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()
	_, err := s.AddItem(ctx, Item{ID: "fin", Name: "Finished", Code: "F"})
	require.NoError(t, err)
	bom, err := s.AddBOM(ctx, BOM{
		Name:           "Ghost Components",
		FinishedItemID: "fin",
		Components:     []BOMComponent{{ItemID: "ghost", Qty: 1}},
	})
	require.NoError(t, err)

	require.ErrorIs(t, s.Produce(ctx, bom.ID), ErrInsufficientStock)
}

func TestProduceUnknownBOM(t *testing.T) {
	s := NewStore(nil)
	require.ErrorIs(t, s.Produce(context.Background(), "missing"), ErrNotFound)
}

func TestAddBOMValidation(t *testing.T) {
	s := NewStore(nil)
	ctx := context.Background()

	_, err := s.AddBOM(ctx, BOM{FinishedItemID: "x", Components: []BOMComponent{{ItemID: "y", Qty: 1}}})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.AddBOM(ctx, BOM{Name: "n", Components: []BOMComponent{{ItemID: "y", Qty: 1}}})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.AddBOM(ctx, BOM{Name: "n", FinishedItemID: "x"})
	require.ErrorIs(t, err, ErrValidation)

	_, err = s.AddBOM(ctx, BOM{Name: "n", FinishedItemID: "x", Components: []BOMComponent{{ItemID: "y", Qty: 0}}})
	require.ErrorIs(t, err, ErrValidation)
}
