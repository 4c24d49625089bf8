package memory

import (
	"context"
	"sync"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
)

// MemoryLedger 是以記憶體為儲存的帳務引擎
//
// 結構:
//
//	customers: 客戶資料 Map (customerID -> *domain.Customer)
//	accounts: 帳戶資料 Map (accountID -> *domain.Account)
//	locks: 每帳戶一把互斥鎖，金流操作以帳戶為粒度上鎖
//	logMu: 保護交易日誌的附加與讀取
//	txLog: append-only 交易日誌，插入順序即時間順序
type MemoryLedger struct {
	customers sync.Map
	accounts  sync.Map
	locks     sync.Map

	logMu sync.Mutex
	txLog []domain.Transaction
}

// NewMemoryLedger 建立一個空的帳務引擎
func NewMemoryLedger() *MemoryLedger {
	return &MemoryLedger{}
}

// lockFor 取得指定帳戶的互斥鎖，不存在則建立
// LoadOrStore 保證同一帳戶永遠拿到同一把鎖
func (m *MemoryLedger) lockFor(accountID string) *sync.Mutex {
	v, _ := m.locks.LoadOrStore(accountID, &sync.Mutex{})
	return v.(*sync.Mutex)
}

// lockOrder 回傳兩個帳戶的鎖定順序
// 依 ID 由小到大取鎖，避免並發轉帳互相等待造成死鎖
func lockOrder(a, b string) (first, second string) {
	if a < b {
		return a, b
	}
	return b, a
}

// getAccountRef 取得帳戶內部指標 (僅供引擎內部使用)
func (m *MemoryLedger) getAccountRef(accountID string) (*domain.Account, error) {
	v, ok := m.accounts.Load(accountID)
	if !ok {
		return nil, domain.ErrEntityNotFound
	}
	return v.(*domain.Account), nil
}

// copyAccount 在帳戶鎖保護下取值拷貝，避免讀到撕裂的餘額
func (m *MemoryLedger) copyAccount(ref *domain.Account) domain.Account {
	mu := m.lockFor(ref.AccountID)
	mu.Lock()
	cp := *ref
	mu.Unlock()
	return cp
}

// appendTransaction 建立並附加一筆交易紀錄
// 交易日誌是唯一的稽核軌跡，每次成功金流恰好附加一筆
func (m *MemoryLedger) appendTransaction(txType domain.TransactionType, from, to string, amount float64, note string) domain.Transaction {
	tx := domain.NewTransaction(txType, from, to, amount, note)
	m.logMu.Lock()
	m.txLog = append(m.txLog, tx)
	m.logMu.Unlock()
	return tx
}

// ----- 客戶操作 -----

// CreateCustomer 建立客戶
//
// 參數:
//
//	ctx: 上下文
//	name, email, phone: 客戶聯絡資料
//
// 回傳:
//
//	domain.Customer: 新客戶 (值拷貝)
//	error: 永遠為 nil，保留給 port 介面
func (m *MemoryLedger) CreateCustomer(ctx context.Context, name, email, phone string) (domain.Customer, error) {
	c := domain.NewCustomer(name, email, phone)
	m.customers.Store(c.CustomerID, c)
	return *c, nil
}

// GetCustomer 取得客戶
func (m *MemoryLedger) GetCustomer(ctx context.Context, customerID string) (domain.Customer, error) {
	v, ok := m.customers.Load(customerID)
	if !ok {
		return domain.Customer{}, domain.ErrEntityNotFound
	}
	return *v.(*domain.Customer), nil
}

// ListCustomers 列出所有客戶 (呼叫當下的快照，順序不定)
func (m *MemoryLedger) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	out := make([]domain.Customer, 0)
	m.customers.Range(func(_, v any) bool {
		out = append(out, *v.(*domain.Customer))
		return true
	})
	return out, nil
}

// ----- 帳戶操作 -----

// CreateSavingsAccount 為既有客戶建立儲蓄帳戶
// initialDeposit 直接寫入初始餘額 (不經 Deposit 驗證，沿用原始行為)；
// 大於 0 時記一筆 "Initial deposit" 存款交易
//
// 參數:
//
//	ctx: 上下文
//	customerID: 帳戶持有人
//	initialDeposit: 初始餘額
//	annualRate: 年利率 (百分比)
//
// 回傳:
//
//	domain.Account: 新帳戶 (值拷貝)
//	error: 客戶不存在時回傳 ErrEntityNotFound
func (m *MemoryLedger) CreateSavingsAccount(ctx context.Context, customerID string, initialDeposit, annualRate float64) (domain.Account, error) {
	if err := m.requireCustomer(customerID); err != nil {
		return domain.Account{}, err
	}
	acc := domain.NewSavingsAccount(customerID, initialDeposit, annualRate)
	m.accounts.Store(acc.AccountID, acc)
	if initialDeposit > 0 {
		m.appendTransaction(domain.TransactionTypeDeposit, "", acc.AccountID, initialDeposit, "Initial deposit")
	}
	return *acc, nil
}

// CreateCurrentAccount 為既有客戶建立活期帳戶
func (m *MemoryLedger) CreateCurrentAccount(ctx context.Context, customerID string, initialDeposit, overdraftLimit float64) (domain.Account, error) {
	if err := m.requireCustomer(customerID); err != nil {
		return domain.Account{}, err
	}
	acc := domain.NewCurrentAccount(customerID, initialDeposit, overdraftLimit)
	m.accounts.Store(acc.AccountID, acc)
	if initialDeposit > 0 {
		m.appendTransaction(domain.TransactionTypeDeposit, "", acc.AccountID, initialDeposit, "Initial deposit")
	}
	return *acc, nil
}

// GetAccount 取得帳戶
func (m *MemoryLedger) GetAccount(ctx context.Context, accountID string) (domain.Account, error) {
	ref, err := m.getAccountRef(accountID)
	if err != nil {
		return domain.Account{}, err
	}
	return m.copyAccount(ref), nil
}

// ListAccountsForCustomer 列出客戶名下所有帳戶 (順序不定)
func (m *MemoryLedger) ListAccountsForCustomer(ctx context.Context, customerID string) ([]domain.Account, error) {
	out := make([]domain.Account, 0)
	m.accounts.Range(func(_, v any) bool {
		ref := v.(*domain.Account)
		if ref.CustomerID == customerID {
			out = append(out, m.copyAccount(ref))
		}
		return true
	})
	return out, nil
}

// CloseAccount 關閉帳戶 (冪等)
// 關閉只撥下 Active 旗標，帳戶不會被刪除
func (m *MemoryLedger) CloseAccount(ctx context.Context, accountID string) error {
	ref, err := m.getAccountRef(accountID)
	if err != nil {
		return err
	}
	mu := m.lockFor(accountID)
	mu.Lock()
	defer mu.Unlock()
	ref.Close()
	return nil
}

// ApplyInterest 對儲蓄帳戶套用 months 個月單利
//
// 回傳:
//
//	float64: 套用後餘額
//	error: 帳戶不存在回傳 ErrEntityNotFound；非儲蓄帳戶回傳 ErrInvalidArgument
func (m *MemoryLedger) ApplyInterest(ctx context.Context, accountID string, months int) (float64, error) {
	ref, err := m.getAccountRef(accountID)
	if err != nil {
		return 0, err
	}
	mu := m.lockFor(accountID)
	mu.Lock()
	defer mu.Unlock()
	if err := ref.ApplyInterestMonths(months); err != nil {
		return 0, err
	}
	return ref.Balance, nil
}

// ----- 金流操作 -----

// Deposit 存款
// 餘額變動與交易附加在同一把帳戶鎖內完成，確保兩者一致
//
// 參數:
//
//	ctx: 上下文
//	accountID: 目標帳戶
//	amount: 金額 (必須 > 0)
//	note: 備註
//
// 回傳:
//
//	domain.Transaction: 成功時附加的存款交易
//	error: ErrEntityNotFound / ErrInvalidAmount
func (m *MemoryLedger) Deposit(ctx context.Context, accountID string, amount float64, note string) (domain.Transaction, error) {
	ref, err := m.getAccountRef(accountID)
	if err != nil {
		return domain.Transaction{}, err
	}

	mu := m.lockFor(accountID)
	mu.Lock()
	defer mu.Unlock()

	if err := ref.Deposit(amount); err != nil {
		return domain.Transaction{}, err
	}
	return m.appendTransaction(domain.TransactionTypeDeposit, "", accountID, amount, note), nil
}

// Withdraw 提款
//
// 回傳:
//
//	domain.Transaction: 成功時附加的提款交易
//	error: ErrEntityNotFound / ErrInvalidAmount / ErrInsufficientFunds
func (m *MemoryLedger) Withdraw(ctx context.Context, accountID string, amount float64, note string) (domain.Transaction, error) {
	ref, err := m.getAccountRef(accountID)
	if err != nil {
		return domain.Transaction{}, err
	}

	mu := m.lockFor(accountID)
	mu.Lock()
	defer mu.Unlock()

	if err := ref.Withdraw(amount); err != nil {
		return domain.Transaction{}, err
	}
	return m.appendTransaction(domain.TransactionTypeWithdrawal, accountID, "", amount, note), nil
}

// Transfer 轉帳
// 兩個帳戶的鎖依 ID 順序取得，先扣款後入帳都在臨界區內完成，
// 對外觀察不到「已扣款未入帳」的中間狀態
//
// 參數:
//
//	ctx: 上下文
//	fromID, toID: 來源與目標帳戶 (不可相同)
//	amount: 金額
//	note: 備註
//
// 回傳:
//
//	domain.Transaction: 成功時附加的唯一一筆轉帳交易
//	error: ErrInvalidArgument / ErrEntityNotFound / ErrInvalidAmount / ErrInsufficientFunds
func (m *MemoryLedger) Transfer(ctx context.Context, fromID, toID string, amount float64, note string) (domain.Transaction, error) {
	if fromID == toID {
		return domain.Transaction{}, domain.ErrInvalidArgument
	}

	fromRef, err := m.getAccountRef(fromID)
	if err != nil {
		return domain.Transaction{}, err
	}
	toRef, err := m.getAccountRef(toID)
	if err != nil {
		return domain.Transaction{}, err
	}

	first, second := lockOrder(fromID, toID)
	firstMu := m.lockFor(first)
	secondMu := m.lockFor(second)
	firstMu.Lock()
	defer firstMu.Unlock()
	secondMu.Lock()
	defer secondMu.Unlock()

	if err := fromRef.Withdraw(amount); err != nil {
		return domain.Transaction{}, err
	}
	// Withdraw 成功代表金額已通過驗證，Deposit 不會失敗
	if err := toRef.Deposit(amount); err != nil {
		return domain.Transaction{}, err
	}
	return m.appendTransaction(domain.TransactionTypeTransfer, fromID, toID, amount, note), nil
}

// ----- 查詢 -----

// ListTransactionsForAccount 列出與帳戶相關的交易 (來源或目標)，維持日誌順序
func (m *MemoryLedger) ListTransactionsForAccount(ctx context.Context, accountID string) ([]domain.Transaction, error) {
	m.logMu.Lock()
	defer m.logMu.Unlock()
	out := make([]domain.Transaction, 0)
	for i := range m.txLog {
		if m.txLog[i].Touches(accountID) {
			out = append(out, m.txLog[i])
		}
	}
	return out, nil
}

// ListAllTransactions 列出全部交易，維持日誌順序
func (m *MemoryLedger) ListAllTransactions(ctx context.Context) ([]domain.Transaction, error) {
	m.logMu.Lock()
	defer m.logMu.Unlock()
	out := make([]domain.Transaction, len(m.txLog))
	copy(out, m.txLog)
	return out, nil
}

// requireCustomer 確認客戶存在
func (m *MemoryLedger) requireCustomer(customerID string) error {
	if _, ok := m.customers.Load(customerID); !ok {
		return domain.ErrEntityNotFound
	}
	return nil
}

var _ usecase.Bank = (*MemoryLedger)(nil)
