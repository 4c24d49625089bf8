// 對記憶體帳務引擎做並發轉帳壓測，印出耗時與 TPS。
// 不經過任何網路層，量到的是引擎本身的鎖競爭成本。
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	memory_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/bank/adapter/out/memory"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/domain"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
)

const (
	TotalCount  = 1000000
	Concurrency = 1000
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	ledger := memory_adapter.NewMemoryLedger()
	core := usecase.NewCoreUseCase(ledger)

	c, err := core.CreateCustomer(ctx, "Stress Tester", "stress@example.com", "0000000000")
	if err != nil {
		log.Fatalf("create customer failed: %v", err)
	}
	// 來源帳戶預先放入足額資金，轉帳不會因餘額不足失敗
	a1, err := core.CreateSavingsAccount(ctx, c.CustomerID, float64(TotalCount), 0)
	if err != nil {
		log.Fatalf("create account failed: %v", err)
	}
	a2, err := core.CreateSavingsAccount(ctx, c.CustomerID, 0, 0)
	if err != nil {
		log.Fatalf("create account failed: %v", err)
	}

	var failed atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(Concurrency)

	startTime := time.Now()

	for i := 0; i < TotalCount; i++ {
		g.Go(func() error {
			if _, err := core.Transfer(ctx, a1.AccountID, a2.AccountID, 1, "stress"); err != nil {
				failed.Add(1)
				if !errors.Is(err, domain.ErrInsufficientFunds) {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("stress run failed: %v", err)
	}

	elapsed := time.Since(startTime)
	fmt.Printf("Completed %d transfers in %v (%d failed)\n", TotalCount, elapsed, failed.Load())
	fmt.Printf("TPS: %.2f\n", float64(TotalCount)/elapsed.Seconds())

	dst, _ := core.GetAccount(ctx, a2.AccountID)
	fmt.Printf("Destination balance: %.2f\n", dst.Balance)
}
