package memory

import (
	"context"
	"errors"
	"fmt"

	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-ledger/pkg/snapshot"
)

const (
	snapshotStorage = "json_snapshot"
	snapshotVersion = 1
)

// snapshotMeta 快照檔頭
// 帶版本號讓 Load 能拒絕不相容的格式，而不是解出垃圾資料
type snapshotMeta struct {
	Storage string `json:"storage"`
	Version int    `json:"version"`
}

// snapshotDoc 整個帳本的持久化單位
type snapshotDoc struct {
	Meta         snapshotMeta         `json:"_meta"`
	Customers    []domain.Customer    `json:"customers"`
	Accounts     []domain.Account     `json:"accounts"`
	Transactions []domain.Transaction `json:"transactions"`
}

// SaveToFile 將整個帳本狀態寫入快照檔
// 每個帳戶在自己的鎖內取拷貝、日誌在日誌鎖內取拷貝；
// 與進行中的變更並發時為 best-effort，不做全域凍結
//
// 參數:
//
//	ctx: 上下文
//	path: 快照檔路徑
//
// 回傳:
//
//	error: 寫入失敗回傳包裝過的 ErrIO
func (m *MemoryLedger) SaveToFile(ctx context.Context, path string) error {
	doc := snapshotDoc{
		Meta: snapshotMeta{
			Storage: snapshotStorage,
			Version: snapshotVersion,
		},
		Customers:    make([]domain.Customer, 0),
		Accounts:     make([]domain.Account, 0),
		Transactions: make([]domain.Transaction, 0),
	}

	m.customers.Range(func(_, v any) bool {
		doc.Customers = append(doc.Customers, *v.(*domain.Customer))
		return true
	})
	m.accounts.Range(func(_, v any) bool {
		doc.Accounts = append(doc.Accounts, m.copyAccount(v.(*domain.Account)))
		return true
	})

	m.logMu.Lock()
	doc.Transactions = append(doc.Transactions, m.txLog...)
	m.logMu.Unlock()

	if err := snapshot.Write(path, doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrIO, err)
	}
	return nil
}

// LoadFromFile 從快照檔重建一個新的帳務引擎
// 讀檔失敗回傳 ErrIO；解碼失敗或結構不合法回傳 ErrCorruptData。
// 失敗時不影響呼叫端既有的引擎實例
func LoadFromFile(path string) (*MemoryLedger, error) {
	var doc snapshotDoc
	if err := snapshot.Read(path, &doc); err != nil {
		if errors.Is(err, snapshot.ErrDecode) {
			return nil, fmt.Errorf("%w: %v", domain.ErrCorruptData, err)
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrIO, err)
	}

	if err := validateSnapshot(&doc); err != nil {
		return nil, err
	}

	m := NewMemoryLedger()
	for i := range doc.Customers {
		c := doc.Customers[i]
		m.customers.Store(c.CustomerID, &c)
	}
	for i := range doc.Accounts {
		a := doc.Accounts[i]
		m.accounts.Store(a.AccountID, &a)
	}
	m.txLog = append(m.txLog, doc.Transactions...)
	return m, nil
}

// validateSnapshot 結構檢查：版本、variant tag 與必要識別碼
func validateSnapshot(doc *snapshotDoc) error {
	if doc.Meta.Storage != snapshotStorage || doc.Meta.Version != snapshotVersion {
		return fmt.Errorf("%w: unsupported snapshot format %q v%d",
			domain.ErrCorruptData, doc.Meta.Storage, doc.Meta.Version)
	}
	for i := range doc.Customers {
		if doc.Customers[i].CustomerID == "" {
			return fmt.Errorf("%w: customer without id", domain.ErrCorruptData)
		}
	}
	for i := range doc.Accounts {
		a := &doc.Accounts[i]
		if a.AccountID == "" || a.CustomerID == "" {
			return fmt.Errorf("%w: account without id", domain.ErrCorruptData)
		}
		if a.Type != domain.AccountTypeSavings && a.Type != domain.AccountTypeCurrent {
			return fmt.Errorf("%w: unknown account type %d", domain.ErrCorruptData, a.Type)
		}
	}
	for i := range doc.Transactions {
		if doc.Transactions[i].TransactionID == "" {
			return fmt.Errorf("%w: transaction without id", domain.ErrCorruptData)
		}
	}
	return nil
}
