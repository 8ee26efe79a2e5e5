package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veewell/veewell-erp/internal/ledger"
)

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	snap := ledger.Snapshot{
		Items:    []ledger.Item{{ID: "i1", Name: "Sample Tablet", Stock: 12.5}},
		Accounts: []ledger.Account{{ID: "a1", Name: "Acme", Type: ledger.AccountTypeCustomer}},
		Invoices: []ledger.Invoice{},
		Vouchers: []ledger.Voucher{},
		BOMs:     []ledger.BOM{},
	}
	require.NoError(t, fs.Save(ctx, snap))

	loaded, err := fs.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, snap, loaded)
}

func TestFileStoreSettingsRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	settings := ledger.DefaultSettings()
	require.NoError(t, fs.SaveSettings(ctx, settings))
	loaded, err := fs.LoadSettings(ctx)
	require.NoError(t, err)
	require.Equal(t, settings, loaded)
}

func TestFileStoreMissingSnapshot(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = fs.Load(context.Background())
	require.ErrorIs(t, err, ledger.ErrSnapshotNotFound)
	_, err = fs.LoadSettings(context.Background())
	require.ErrorIs(t, err, ledger.ErrSnapshotNotFound)
}

func TestFileStoreOverwrites(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, ledger.Snapshot{Items: []ledger.Item{{ID: "old"}}}))
	require.NoError(t, fs.Save(ctx, ledger.Snapshot{Items: []ledger.Item{{ID: "new"}}}))

	loaded, err := fs.Load(ctx)
	require.NoError(t, err)
	require.Len(t, loaded.Items, 1)
	require.Equal(t, "new", loaded.Items[0].ID)
}
