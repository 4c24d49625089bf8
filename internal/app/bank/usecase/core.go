package usecase

import (
	"context"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
)

// CoreUseCase 是核心業務邏輯層
// 目前僅轉拋給 Bank port，保留這一層讓 in-adapter 不直接依賴實作
type CoreUseCase struct {
	bank Bank
}

func NewCoreUseCase(bank Bank) *CoreUseCase {
	return &CoreUseCase{
		bank: bank,
	}
}

// CreateCustomer 建立客戶
func (c *CoreUseCase) CreateCustomer(ctx context.Context, name, email, phone string) (domain.Customer, error) {
	return c.bank.CreateCustomer(ctx, name, email, phone)
}

// GetCustomer 取得客戶
func (c *CoreUseCase) GetCustomer(ctx context.Context, customerID string) (domain.Customer, error) {
	return c.bank.GetCustomer(ctx, customerID)
}

// ListCustomers 列出所有客戶
func (c *CoreUseCase) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return c.bank.ListCustomers(ctx)
}

// CreateSavingsAccount 建立儲蓄帳戶
func (c *CoreUseCase) CreateSavingsAccount(ctx context.Context, customerID string, initialDeposit, annualRate float64) (domain.Account, error) {
	return c.bank.CreateSavingsAccount(ctx, customerID, initialDeposit, annualRate)
}

// CreateCurrentAccount 建立活期帳戶
func (c *CoreUseCase) CreateCurrentAccount(ctx context.Context, customerID string, initialDeposit, overdraftLimit float64) (domain.Account, error) {
	return c.bank.CreateCurrentAccount(ctx, customerID, initialDeposit, overdraftLimit)
}

// GetAccount 取得帳戶
func (c *CoreUseCase) GetAccount(ctx context.Context, accountID string) (domain.Account, error) {
	return c.bank.GetAccount(ctx, accountID)
}

// ListAccountsForCustomer 列出客戶名下所有帳戶
func (c *CoreUseCase) ListAccountsForCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	return c.bank.ListAccountsForCustomer(ctx, customerID)
}

// CloseAccount 關閉帳戶
func (c *CoreUseCase) CloseAccount(ctx context.Context, accountID string) error {
	return c.bank.CloseAccount(ctx, accountID)
}

// ApplyInterest 套用月利息
func (c *CoreUseCase) ApplyInterest(ctx context.Context, accountID string, months int) (float64, error) {
	return c.bank.ApplyInterest(ctx, accountID, months)
}

// Deposit 存款
func (c *CoreUseCase) Deposit(ctx context.Context, accountID string, amount float64, note string) (domain.Transaction, error) {
	return c.bank.Deposit(ctx, accountID, amount, note)
}

// Withdraw 提款
func (c *CoreUseCase) Withdraw(ctx context.Context, accountID string, amount float64, note string) (domain.Transaction, error) {
	return c.bank.Withdraw(ctx, accountID, amount, note)
}

// Transfer 轉帳
func (c *CoreUseCase) Transfer(ctx context.Context, fromID, toID string, amount float64, note string) (domain.Transaction, error) {
	return c.bank.Transfer(ctx, fromID, toID, amount, note)
}

// ListTransactionsForAccount 列出帳戶相關交易
func (c *CoreUseCase) ListTransactionsForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	return c.bank.ListTransactionsForAccount(ctx, accountID)
}

// ListAllTransactions 列出全部交易
func (c *CoreUseCase) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return c.bank.ListAllTransactions(ctx)
}

// SaveToFile 儲存帳本快照
func (c *CoreUseCase) SaveToFile(ctx context.Context, path string) error {
	return c.bank.SaveToFile(ctx, path)
}
