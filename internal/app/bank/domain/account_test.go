package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 儲蓄帳戶：提款不得超過餘額，餘額不得為負
func TestSavingsWithdrawRules(t *testing.T) {
	acc := NewSavingsAccount("cust-1", 100, 3.5)
	require.Equal(t, AccountTypeSavings, acc.Type)
	require.True(t, acc.Active)
	require.NotEmpty(t, acc.AccountID)

	require.NoError(t, acc.Withdraw(40))
	assert.Equal(t, 60.0, acc.Balance)

	// 超過餘額
	err := acc.Withdraw(61)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 60.0, acc.Balance)

	// 剛好提光
	require.NoError(t, acc.Withdraw(60))
	assert.Equal(t, 0.0, acc.Balance)
}

// 活期帳戶：可透支到 -OverdraftLimit，再多一點就拒絕
func TestCurrentOverdraftBoundary(t *testing.T) {
	acc := NewCurrentAccount("cust-1", 0, 200)
	require.Equal(t, AccountTypeCurrent, acc.Type)

	// 150 >= -200 可以
	require.NoError(t, acc.Withdraw(150))
	assert.Equal(t, -150.0, acc.Balance)

	// 剛好碰到額度邊界
	require.NoError(t, acc.Withdraw(50))
	assert.Equal(t, -200.0, acc.Balance)

	// 超出額度
	err := acc.Withdraw(0.01)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, -200.0, acc.Balance)
}

// 非正數金額一律拒絕且餘額不變
func TestNonPositiveAmounts(t *testing.T) {
	acc := NewSavingsAccount("cust-1", 100, 3.5)

	for _, amt := range []float64{0, -5} {
		require.ErrorIs(t, acc.Deposit(amt), ErrInvalidAmount)
		require.ErrorIs(t, acc.Withdraw(amt), ErrInvalidAmount)
	}
	assert.Equal(t, 100.0, acc.Balance)
}

// 月利息：單利、一次套用整個期間；非儲蓄帳戶拒絕
func TestApplyInterestMonths(t *testing.T) {
	acc := NewSavingsAccount("cust-1", 1200, 10)

	// months <= 0 不做任何事
	require.NoError(t, acc.ApplyInterestMonths(0))
	require.NoError(t, acc.ApplyInterestMonths(-3))
	assert.Equal(t, 1200.0, acc.Balance)

	// 1200 * (10/100/12) * 12 = 120
	require.NoError(t, acc.ApplyInterestMonths(12))
	assert.InDelta(t, 1320.0, acc.Balance, 1e-9)

	cur := NewCurrentAccount("cust-1", 100, 50)
	require.ErrorIs(t, cur.ApplyInterestMonths(1), ErrInvalidArgument)
	assert.Equal(t, 100.0, cur.Balance)
}

// Close 冪等，且關閉後金流路徑不檢查 Active (沿用原始行為)
func TestCloseIsIdempotent(t *testing.T) {
	acc := NewCurrentAccount("cust-1", 100, 0)
	acc.Close()
	require.False(t, acc.Active)
	acc.Close()
	require.False(t, acc.Active)

	require.NoError(t, acc.Deposit(10))
	assert.Equal(t, 110.0, acc.Balance)
}
