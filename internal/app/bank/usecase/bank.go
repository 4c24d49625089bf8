package usecase

import (
	"context"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
)

// Bank 是帳務引擎的介面
// 所有查詢回傳值拷貝，呼叫端不會拿到內部指標
type Bank interface {
	// ----- 客戶操作 -----
	CreateCustomer(ctx context.Context, name, email, phone string) (domain.Customer, error)
	GetCustomer(ctx context.Context, customerID string) (domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)

	// ----- 帳戶操作 -----
	CreateSavingsAccount(ctx context.Context, customerID string, initialDeposit, annualRate float64) (domain.Account, error)
	CreateCurrentAccount(ctx context.Context, customerID string, initialDeposit, overdraftLimit float64) (domain.Account, error)
	GetAccount(ctx context.Context, accountID string) (domain.Account, error)
	ListAccountsForCustomer(ctx context.Context, customerID string) ([]domain.Account, error)
	CloseAccount(ctx context.Context, accountID string) error
	// ApplyInterest 對儲蓄帳戶套用 months 個月單利，回傳套用後餘額
	ApplyInterest(ctx context.Context, accountID string, months int) (float64, error)

	// ----- 金流操作 -----
	Deposit(ctx context.Context, accountID string, amount float64, note string) (domain.Transaction, error)
	Withdraw(ctx context.Context, accountID string, amount float64, note string) (domain.Transaction, error)
	Transfer(ctx context.Context, fromID, toID string, amount float64, note string) (domain.Transaction, error)

	// ----- 查詢 -----
	ListTransactionsForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error)
	ListAllTransactions(ctx context.Context) ([]domain.Transaction, error)

	// ----- 持久化 -----
	// SaveToFile 將整個帳本狀態寫入快照檔
	SaveToFile(ctx context.Context, path string) error
}
