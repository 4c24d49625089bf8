package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	memory_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/bank/adapter/out/memory"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
)

// CLI 是互動式選單 in-adapter
// 每個選項對應一次引擎操作：讀輸入 -> 呼叫 core -> 印出結果或錯誤。
// 已知的業務錯誤只印訊息，迴圈繼續，不會中斷程序
type CLI struct {
	core *usecase.CoreUseCase
	in   *bufio.Scanner
	out  io.Writer
}

// NewCLI 建立選單介面
func NewCLI(core *usecase.CoreUseCase, in io.Reader, out io.Writer) *CLI {
	return &CLI{
		core: core,
		in:   bufio.NewScanner(in),
		out:  out,
	}
}

// Core 回傳目前使用中的 use case (載入快照後會被替換)
func (c *CLI) Core() *usecase.CoreUseCase {
	return c.core
}

// Run 執行選單迴圈，直到使用者選擇離開或輸入結束
func (c *CLI) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== Bank Ledger ===")
	for {
		c.printMenu()
		opt, ok := c.readLine("Choose option: ")
		if !ok {
			return nil
		}

		var err error
		switch strings.TrimSpace(opt) {
		case "1":
			err = c.listCustomers(ctx)
		case "2":
			err = c.createCustomer(ctx)
		case "3":
			err = c.createAccount(ctx)
		case "4":
			err = c.deposit(ctx)
		case "5":
			err = c.withdraw(ctx)
		case "6":
			err = c.transfer(ctx)
		case "7":
			err = c.listTransactions(ctx)
		case "8":
			err = c.listAccounts(ctx)
		case "9":
			err = c.applyInterest(ctx)
		case "10":
			err = c.closeAccount(ctx)
		case "11":
			err = c.save(ctx)
		case "12":
			err = c.load(ctx)
		case "0":
			return nil
		default:
			fmt.Fprintln(c.out, "Unknown option.")
		}

		if err != nil {
			fmt.Fprintf(c.out, "Operation failed: %v\n", err)
		}
	}
}

func (c *CLI) printMenu() {
	fmt.Fprint(c.out, `
 1) List customers        2) Create customer
 3) Create account        4) Deposit
 5) Withdraw              6) Transfer
 7) List transactions     8) List accounts for customer
 9) Apply interest       10) Close account
11) Save ledger          12) Load ledger
 0) Exit
`)
}

func (c *CLI) listCustomers(ctx context.Context) error {
	customers, err := c.core.ListCustomers(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Customers:")
	for _, cu := range customers {
		fmt.Fprintf(c.out, "  %s  %s  %s  %s\n", cu.CustomerID, cu.Name, cu.Email, cu.Phone)
	}
	return nil
}

func (c *CLI) createCustomer(ctx context.Context) error {
	name, ok := c.readLine("Name: ")
	if !ok {
		return nil
	}
	email, ok := c.readLine("Email: ")
	if !ok {
		return nil
	}
	phone, ok := c.readLine("Phone: ")
	if !ok {
		return nil
	}
	cu, err := c.core.CreateCustomer(ctx, name, email, phone)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Created customer %s\n", cu.CustomerID)
	return nil
}

func (c *CLI) createAccount(ctx context.Context) error {
	customerID, ok := c.readLine("CustomerId: ")
	if !ok {
		return nil
	}
	accType, ok := c.readLine("Type (savings/current): ")
	if !ok {
		return nil
	}
	initial, err := c.readFloat("Initial deposit: ")
	if err != nil {
		return err
	}

	var acc domain.Account
	switch strings.ToLower(strings.TrimSpace(accType)) {
	case "savings":
		rate, err := c.readFloat("Interest rate (annual %): ")
		if err != nil {
			return err
		}
		acc, err = c.core.CreateSavingsAccount(ctx, customerID, initial, rate)
		if err != nil {
			return err
		}
	case "current":
		limit, err := c.readFloat("Overdraft limit: ")
		if err != nil {
			return err
		}
		acc, err = c.core.CreateCurrentAccount(ctx, customerID, initial, limit)
		if err != nil {
			return err
		}
	default:
		return domain.ErrInvalidArgument
	}

	fmt.Fprintf(c.out, "Created %s account %s (balance %.2f)\n", acc.Type, acc.AccountID, acc.Balance)
	return nil
}

func (c *CLI) deposit(ctx context.Context) error {
	accountID, ok := c.readLine("AccountId: ")
	if !ok {
		return nil
	}
	amount, err := c.readFloat("Amount: ")
	if err != nil {
		return err
	}
	if _, err := c.core.Deposit(ctx, accountID, amount, "Manual deposit"); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Deposit successful")
	return nil
}

func (c *CLI) withdraw(ctx context.Context) error {
	accountID, ok := c.readLine("AccountId: ")
	if !ok {
		return nil
	}
	amount, err := c.readFloat("Amount: ")
	if err != nil {
		return err
	}
	if _, err := c.core.Withdraw(ctx, accountID, amount, "Manual withdrawal"); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Withdrawal successful")
	return nil
}

func (c *CLI) transfer(ctx context.Context) error {
	fromID, ok := c.readLine("From account: ")
	if !ok {
		return nil
	}
	toID, ok := c.readLine("To account: ")
	if !ok {
		return nil
	}
	amount, err := c.readFloat("Amount: ")
	if err != nil {
		return err
	}
	if _, err := c.core.Transfer(ctx, fromID, toID, amount, "Manual transfer"); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Transfer successful")
	return nil
}

func (c *CLI) listTransactions(ctx context.Context) error {
	accountID, ok := c.readLine("AccountId: ")
	if !ok {
		return nil
	}
	txs, err := c.core.ListTransactionsForAccount(ctx, accountID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Transactions:")
	for _, tx := range txs {
		fmt.Fprintf(c.out, "  [%s] %-10s %10.2f  from=%s to=%s  %s\n",
			tx.CreatedAt.Format("2006-01-02 15:04:05"), tx.Type, tx.Amount, tx.From, tx.To, tx.Note)
	}
	return nil
}

func (c *CLI) listAccounts(ctx context.Context) error {
	customerID, ok := c.readLine("CustomerId: ")
	if !ok {
		return nil
	}
	accounts, err := c.core.ListAccountsForCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Accounts:")
	for _, acc := range accounts {
		fmt.Fprintf(c.out, "  %s  %-7s balance=%.2f active=%t\n", acc.AccountID, acc.Type, acc.Balance, acc.Active)
	}
	return nil
}

func (c *CLI) applyInterest(ctx context.Context) error {
	accountID, ok := c.readLine("AccountId: ")
	if !ok {
		return nil
	}
	months, err := c.readInt("Months: ")
	if err != nil {
		return err
	}
	balance, err := c.core.ApplyInterest(ctx, accountID, months)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Interest applied, balance is now %.2f\n", balance)
	return nil
}

func (c *CLI) closeAccount(ctx context.Context) error {
	accountID, ok := c.readLine("AccountId: ")
	if !ok {
		return nil
	}
	if err := c.core.CloseAccount(ctx, accountID); err != nil {
		return err
	}
	fmt.Fprintln(c.out, "Account closed")
	return nil
}

func (c *CLI) save(ctx context.Context) error {
	path, ok := c.readLine("Save path (e.g. bank.json): ")
	if !ok {
		return nil
	}
	if err := c.core.SaveToFile(ctx, path); err != nil {
		return err
	}
	fmt.Fprintf(c.out, "Saved to %s\n", path)
	return nil
}

// load 從快照檔重建引擎
// 只有完整解碼成功才會替換使用中的引擎，失敗時保留原狀態
func (c *CLI) load(ctx context.Context) error {
	path, ok := c.readLine("Load path: ")
	if !ok {
		return nil
	}
	loaded, err := memory_adapter.LoadFromFile(path)
	if err != nil {
		return err
	}
	c.core = usecase.NewCoreUseCase(loaded)
	fmt.Fprintf(c.out, "Loaded ledger from %s\n", path)
	return nil
}

// readLine 印出提示並讀一行；輸入結束時回傳 ok=false
func (c *CLI) readLine(prompt string) (string, bool) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

func (c *CLI) readFloat(prompt string) (float64, error) {
	s, ok := c.readLine(prompt)
	if !ok {
		return 0, domain.ErrInvalidArgument
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number input", domain.ErrInvalidArgument)
	}
	return v, nil
}

func (c *CLI) readInt(prompt string) (int, error) {
	s, ok := c.readLine(prompt)
	if !ok {
		return 0, domain.ErrInvalidArgument
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid number input", domain.ErrInvalidArgument)
	}
	return v, nil
}
