package domain

import (
	"time"

	"github.com/google/uuid"
)

// AccountType 帳戶種類
// 封閉的 tagged variant，提款規則依種類分派
type AccountType uint8

const (
	// 儲蓄帳戶 (有年利率，餘額不可為負)
	AccountTypeSavings AccountType = 1
	// 活期帳戶 (可透支至 -OverdraftLimit)
	AccountTypeCurrent AccountType = 2
)

// String 回傳帳戶種類名稱
func (t AccountType) String() string {
	switch t {
	case AccountTypeSavings:
		return "Savings"
	case AccountTypeCurrent:
		return "Current"
	default:
		return "Unknown"
	}
}

// Account 帳戶
// 單一結構承載兩種 variant：Savings 使用 InterestRate，Current 使用 OverdraftLimit。
// Balance 只允許透過 Deposit/Withdraw/ApplyInterestMonths 變動。
type Account struct {
	AccountID  string      `json:"account_id"`
	CustomerID string      `json:"customer_id"`
	Type       AccountType `json:"type"`
	Balance    float64     `json:"balance"`
	CreatedAt  time.Time   `json:"created_at"`
	Active     bool        `json:"active"`

	// InterestRate 年利率 (百分比，如 3.5)，僅 Savings 使用
	InterestRate float64 `json:"interest_rate,omitempty"`
	// OverdraftLimit 透支額度，僅 Current 使用
	OverdraftLimit float64 `json:"overdraft_limit,omitempty"`
}

// NewSavingsAccount 建立儲蓄帳戶
// 初始餘額直接寫入，不經過 Deposit 驗證 (沿用原始行為)
func NewSavingsAccount(customerID string, initialDeposit, annualRate float64) *Account {
	return &Account{
		AccountID:    uuid.NewString(),
		CustomerID:   customerID,
		Type:         AccountTypeSavings,
		Balance:      initialDeposit,
		CreatedAt:    time.Now(),
		Active:       true,
		InterestRate: annualRate,
	}
}

// NewCurrentAccount 建立活期帳戶
func NewCurrentAccount(customerID string, initialDeposit, overdraftLimit float64) *Account {
	return &Account{
		AccountID:      uuid.NewString(),
		CustomerID:     customerID,
		Type:           AccountTypeCurrent,
		Balance:        initialDeposit,
		CreatedAt:      time.Now(),
		Active:         true,
		OverdraftLimit: overdraftLimit,
	}
}

// Deposit 存款
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	a.Balance = a.Balance + amount
	return nil
}

// Withdraw 提款 依帳戶種類套用規則
// Savings: 提款金額不得超過餘額
// Current: 提款後餘額不得低於 -OverdraftLimit
func (a *Account) Withdraw(amount float64) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}

	switch a.Type {
	case AccountTypeCurrent:
		if a.Balance-amount < -a.OverdraftLimit {
			return ErrInsufficientFunds
		}
	default:
		if amount > a.Balance {
			return ErrInsufficientFunds
		}
	}

	a.Balance = a.Balance - amount
	return nil
}

// Close 關閉帳戶 (冪等)
// 注意：關閉後仍可存提款，金流路徑不檢查 Active (沿用原始行為)
func (a *Account) Close() {
	a.Active = false
}

// ApplyInterestMonths 套用 months 個月的單利
// 僅 Savings 可用；months <= 0 時不做任何事
// balance += balance * (rate/100/12) * months
func (a *Account) ApplyInterestMonths(months int) error {
	if a.Type != AccountTypeSavings {
		return ErrInvalidArgument
	}
	if months <= 0 {
		return nil
	}
	monthlyRate := a.InterestRate / 100.0 / 12.0
	a.Balance += a.Balance * monthlyRate * float64(months)
	return nil
}
