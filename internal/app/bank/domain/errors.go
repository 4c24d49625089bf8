package domain

import "errors"

var (
	// ErrEntityNotFound 找不到客戶或帳戶
	ErrEntityNotFound = errors.New("entity not found")

	// ErrInvalidAmount 金額必須為正數
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInsufficientFunds 餘額不足 (或超出透支額度)
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrInvalidArgument 參數不合法 (如來源與目標帳戶相同)
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIO 持久化讀寫失敗
	ErrIO = errors.New("io failure")

	// ErrCorruptData 快照檔無法解碼或結構不合法
	ErrCorruptData = errors.New("corrupt snapshot data")
)
