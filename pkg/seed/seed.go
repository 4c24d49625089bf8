package seed

import (
	"context"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
)

// Apply 寫入示範資料：兩位客戶、三個帳戶與幾筆金流
// 只呼叫引擎的公開操作，失敗時回傳第一個錯誤
func Apply(ctx context.Context, core *usecase.CoreUseCase) error {
	c1, err := core.CreateCustomer(ctx, "Aisha Khan", "aisha@example.com", "9990011111")
	if err != nil {
		return err
	}
	c2, err := core.CreateCustomer(ctx, "Rahul Verma", "rahul@example.com", "8880022222")
	if err != nil {
		return err
	}

	a1, err := core.CreateSavingsAccount(ctx, c1.CustomerID, 5000.0, 3.5)
	if err != nil {
		return err
	}
	a2, err := core.CreateCurrentAccount(ctx, c1.CustomerID, 2000.0, 1000.0)
	if err != nil {
		return err
	}
	if _, err := core.CreateSavingsAccount(ctx, c2.CustomerID, 15000.0, 4.0); err != nil {
		return err
	}

	if _, err := core.Deposit(ctx, a2.AccountID, 1000.0, "Top-up"); err != nil {
		return err
	}
	if _, err := core.Transfer(ctx, a1.AccountID, a2.AccountID, 500.0, "Internal transfer"); err != nil {
		return err
	}
	return nil
}
