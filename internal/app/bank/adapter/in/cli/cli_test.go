package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	memory_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/bank/adapter/out/memory"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
)

// runScript 餵一段選單輸入，回傳全部輸出
func runScript(t *testing.T, core *usecase.CoreUseCase, script string) (string, *CLI) {
	t.Helper()
	var out bytes.Buffer
	c := NewCLI(core, strings.NewReader(script), &out)
	require.NoError(t, c.Run(context.Background()))
	return out.String(), c
}

func TestCreateCustomerAndExit(t *testing.T) {
	core := usecase.NewCoreUseCase(memory_adapter.NewMemoryLedger())

	out, _ := runScript(t, core, "2\nAisha Khan\naisha@example.com\n9990011111\n0\n")
	assert.Contains(t, out, "Created customer")

	customers, err := core.ListCustomers(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	assert.Equal(t, "Aisha Khan", customers[0].Name)
}

// 已知業務錯誤只印訊息，迴圈繼續跑到使用者離開
func TestErrorsDoNotBreakLoop(t *testing.T) {
	core := usecase.NewCoreUseCase(memory_adapter.NewMemoryLedger())

	script := strings.Join([]string{
		"4", "no-such-account", "100", // 存款到不存在的帳戶
		"4", "still-missing", "abc", // 金額不是數字
		"1", // 之後仍可列客戶
		"0",
	}, "\n") + "\n"

	out, _ := runScript(t, core, script)
	assert.Contains(t, out, "Operation failed: entity not found")
	assert.Contains(t, out, "invalid number input")
	assert.Contains(t, out, "Customers:")
}

// 選單輸入結束 (EOF) 視同離開，不報錯
func TestEOFExitsCleanly(t *testing.T) {
	core := usecase.NewCoreUseCase(memory_adapter.NewMemoryLedger())
	out, _ := runScript(t, core, "")
	assert.Contains(t, out, "Choose option:")
}
