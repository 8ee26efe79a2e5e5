package ledger

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.PostInvoice(ctx, salesInvoice())
	require.NoError(t, err)
	_, err = s.PostVoucher(ctx, Voucher{DrAccountID: "acc1", CrAccountID: "acc2", Amount: 100})
	require.NoError(t, err)
	_, err = s.AddBOM(ctx, BOM{Name: "Mix", FinishedItemID: "i1", Components: []BOMComponent{{ItemID: "i2", Qty: 2}}})
	require.NoError(t, err)

	before := s.Snapshot()
	settingsBefore := s.Settings()

	blob, err := s.Export()
	require.NoError(t, err)
	require.NoError(t, s.Import(ctx, blob))

	require.Equal(t, before, s.Snapshot())
	require.Equal(t, settingsBefore, s.Settings())
}

func TestExportIsPrettyPrintedEnvelope(t *testing.T) {
	s := newTestStore(t)

	blob, err := s.Export()
	require.NoError(t, err)
	require.Contains(t, string(blob), "\n  \"items\"")

	var env map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(blob, &env))
	for _, key := range []string{"items", "accounts", "invoices", "vouchers", "boms", "companySettings"} {
		require.Contains(t, env, key)
	}
}

func TestImportMalformedLeavesStateUntouched(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.PostInvoice(ctx, salesInvoice())
	require.NoError(t, err)
	before := s.Snapshot()
	settingsBefore := s.Settings()

	err = s.Import(ctx, []byte("not json"))
	require.ErrorIs(t, err, ErrMalformedImport)

	require.Equal(t, before, s.Snapshot())
	require.Equal(t, settingsBefore, s.Settings())
}

func TestImportMissingCollectionsDefaultEmpty(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Import(ctx, []byte(`{"items":[{"id":"x","name":"Only Item"}]}`)))

	snap := s.Snapshot()
	require.Len(t, snap.Items, 1)
	require.Empty(t, snap.Accounts)
	require.Empty(t, snap.Invoices)
	require.Empty(t, snap.Vouchers)
	require.Empty(t, snap.BOMs)
	// Settings untouched when the payload omits them.
	require.Equal(t, DefaultSettings(), s.Settings())
}

func TestImportReplacesSettingsWhenPresent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Import(ctx, []byte(`{"companySettings":{"name":"Acme Pharma","state":"Delhi"}}`)))
	settings := s.Settings()
	require.Equal(t, "Acme Pharma", settings.Name)
	require.Equal(t, "Delhi", settings.State)
}
