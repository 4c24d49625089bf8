package memory

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
)

// 快照往返：客戶、帳戶 (含 variant 欄位) 與交易日誌完整重建
func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	m, c1 := newLedgerWithCustomer(t)
	c2, _ := m.CreateCustomer(ctx, "Rahul Verma", "rahul@example.com", "8880022222")

	s1, _ := m.CreateSavingsAccount(ctx, c1.CustomerID, 5000, 3.5)
	k1, _ := m.CreateCurrentAccount(ctx, c1.CustomerID, 2000, 1000)
	_, err := m.CreateSavingsAccount(ctx, c2.CustomerID, 15000, 4.0)
	require.NoError(t, err)

	_, err = m.Deposit(ctx, k1.AccountID, 1000, "Top-up")
	require.NoError(t, err)
	_, err = m.Transfer(ctx, s1.AccountID, k1.AccountID, 500, "Internal transfer")
	require.NoError(t, err)
	require.NoError(t, m.CloseAccount(ctx, k1.AccountID))

	path := filepath.Join(t.TempDir(), "bank.json")
	require.NoError(t, m.SaveToFile(ctx, path))

	restored, err := LoadFromFile(path)
	require.NoError(t, err)

	// 客戶完整重建
	origCustomers, _ := m.ListCustomers(ctx)
	gotCustomers, _ := restored.ListCustomers(ctx)
	assert.ElementsMatch(t, origCustomers, gotCustomers)

	// 帳戶逐一比對 (含 variant 欄位、時間戳與 active 旗標)
	origAccounts, _ := m.ListAccountsForCustomer(ctx, c1.CustomerID)
	for _, orig := range origAccounts {
		got, err := restored.GetAccount(ctx, orig.AccountID)
		require.NoError(t, err)
		assert.Equal(t, orig.Type, got.Type)
		assert.Equal(t, orig.Balance, got.Balance)
		assert.Equal(t, orig.InterestRate, got.InterestRate)
		assert.Equal(t, orig.OverdraftLimit, got.OverdraftLimit)
		assert.Equal(t, orig.Active, got.Active)
		assert.True(t, orig.CreatedAt.Equal(got.CreatedAt))
	}

	// 交易日誌順序與內容一致
	origTxs, _ := m.ListAllTransactions(ctx)
	gotTxs, _ := restored.ListAllTransactions(ctx)
	require.Len(t, gotTxs, len(origTxs))
	for i := range origTxs {
		assert.Equal(t, origTxs[i].TransactionID, gotTxs[i].TransactionID)
		assert.Equal(t, origTxs[i].Type, gotTxs[i].Type)
		assert.Equal(t, origTxs[i].From, gotTxs[i].From)
		assert.Equal(t, origTxs[i].To, gotTxs[i].To)
		assert.Equal(t, origTxs[i].Amount, gotTxs[i].Amount)
		assert.Equal(t, origTxs[i].Note, gotTxs[i].Note)
		assert.True(t, origTxs[i].CreatedAt.Equal(gotTxs[i].CreatedAt))
	}

	// 還原出的引擎可以直接繼續操作
	_, err = restored.Transfer(ctx, s1.AccountID, k1.AccountID, 100, "after restore")
	require.NoError(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json"))
	require.ErrorIs(t, err, domain.ErrIO)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadFromFile(path)
	require.ErrorIs(t, err, domain.ErrCorruptData)
}

// 版本或 variant tag 不合法時必須回報 CorruptData，而不是裝沒事
func TestLoadRejectsInvalidStructure(t *testing.T) {
	dir := t.TempDir()

	wrongVersion := []byte(`{"_meta":{"storage":"json_snapshot","version":99},"customers":[],"accounts":[],"transactions":[]}`)
	path := filepath.Join(dir, "v99.json")
	require.NoError(t, os.WriteFile(path, wrongVersion, 0644))
	_, err := LoadFromFile(path)
	require.ErrorIs(t, err, domain.ErrCorruptData)

	badType := []byte(`{"_meta":{"storage":"json_snapshot","version":1},"customers":[{"customer_id":"c1","name":"A","email":"","phone":""}],"accounts":[{"account_id":"a1","customer_id":"c1","type":7,"balance":1,"created_at":"2024-01-01T00:00:00Z","active":true}],"transactions":[]}`)
	path = filepath.Join(dir, "badtype.json")
	require.NoError(t, os.WriteFile(path, badType, 0644))
	_, err = LoadFromFile(path)
	require.ErrorIs(t, err, domain.ErrCorruptData)
}

// 寫檔失敗時回報 IOError，記憶體狀態不受影響
func TestSaveToBadPath(t *testing.T) {
	ctx := context.Background()
	m, c := newLedgerWithCustomer(t)
	_, err := m.CreateSavingsAccount(ctx, c.CustomerID, 100, 1)
	require.NoError(t, err)

	err = m.SaveToFile(ctx, filepath.Join(t.TempDir(), "no-such-dir", "bank.json"))
	require.ErrorIs(t, err, domain.ErrIO)

	// 引擎照常運作
	customers, _ := m.ListCustomers(ctx)
	assert.Len(t, customers, 1)
}
