package domain

import (
	"time"

	"github.com/google/uuid"
)

// TransactionType 交易類型
type TransactionType uint8

const (
	// 存款
	TransactionTypeDeposit TransactionType = 1
	// 提款
	TransactionTypeWithdrawal TransactionType = 2
	// 轉帳
	TransactionTypeTransfer TransactionType = 3
)

// String 回傳交易類型名稱
func (t TransactionType) String() string {
	switch t {
	case TransactionTypeDeposit:
		return "Deposit"
	case TransactionTypeWithdrawal:
		return "Withdrawal"
	case TransactionTypeTransfer:
		return "Transfer"
	default:
		return "Unknown"
	}
}

// Transaction 交易紀錄 建立後不可變
// From 在存款時為空字串，To 在提款時為空字串
type Transaction struct {
	TransactionID string          `json:"transaction_id"`
	Type          TransactionType `json:"type"`
	From          string          `json:"from,omitempty"`
	To            string          `json:"to,omitempty"`
	Amount        float64         `json:"amount"`
	CreatedAt     time.Time       `json:"created_at"`
	Note          string          `json:"note"`
}

// NewTransaction 建立一筆交易紀錄，配發 ID 與時間戳
func NewTransaction(txType TransactionType, from, to string, amount float64, note string) Transaction {
	return Transaction{
		TransactionID: uuid.NewString(),
		Type:          txType,
		From:          from,
		To:            to,
		Amount:        amount,
		CreatedAt:     time.Now(),
		Note:          note,
	}
}

// Touches 回傳此交易是否與指定帳戶相關 (來源或目標)
func (t *Transaction) Touches(accountID string) bool {
	return t.From == accountID || t.To == accountID
}
