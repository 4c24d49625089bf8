package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	cli_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/bank/adapter/in/cli"
	memory_adapter "github.com/JoeShih716/go-bank-ledger/internal/app/bank/adapter/out/memory"
	"github.com/JoeShih716/go-bank-ledger/internal/app/bank/usecase"
	"github.com/JoeShih716/go-bank-ledger/pkg/seed"
)

type Config struct {
	Snapshot struct {
		// Path 開機載入與離開時儲存的快照檔
		Path string `yaml:"path"`
	} `yaml:"snapshot"`
	// Seed 空帳本啟動時是否寫入示範資料
	Seed bool `yaml:"seed"`
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	// 1. 載入設定
	cfg := loadConfig(logger)

	ctx := context.Background()

	// 2. 初始化帳務引擎：有快照就還原，沒有就從空帳本起步
	ledger, err := memory_adapter.LoadFromFile(cfg.Snapshot.Path)
	if err != nil {
		logger.Info("starting with empty ledger", "reason", err)
		ledger = memory_adapter.NewMemoryLedger()
	} else {
		logger.Info("ledger restored", "path", cfg.Snapshot.Path)
	}

	core := usecase.NewCoreUseCase(ledger)

	// 3. 空帳本時寫入示範資料
	if cfg.Seed {
		if customers, _ := core.ListCustomers(ctx); len(customers) == 0 {
			if err := seed.Apply(ctx, core); err != nil {
				logger.Error("seed data failed", "error", err)
			} else {
				logger.Info("seed data applied")
			}
		}
	}

	// 4. 初始化 CLI Adapter (Driving Adapter)
	menu := cli_adapter.NewCLI(core, os.Stdin, os.Stdout)

	// persist 函式：把目前使用中的引擎狀態存回快照檔
	persist := func() error {
		return menu.Core().SaveToFile(ctx, cfg.Snapshot.Path)
	}

	// Graceful Shutdown：收到 SIGINT/SIGTERM 時先保存再離開
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		if err := persist(); err != nil {
			logger.Error("save on shutdown failed", "error", err)
		}
		os.Exit(0)
	}()

	if err := menu.Run(ctx); err != nil {
		logger.Error("menu loop failed", "error", err)
	}

	// 正常離開也保存一次
	if err := persist(); err != nil {
		logger.Error("save on exit failed", "error", err)
	} else {
		logger.Info("ledger saved", "path", cfg.Snapshot.Path)
	}
}

func loadConfig(logger *slog.Logger) Config {
	var cfg Config

	cfgData, err := os.ReadFile("config/config.yaml")
	if err != nil {
		logger.Info("config file not found, using defaults")
	} else if err := yaml.Unmarshal(cfgData, &cfg); err != nil {
		logger.Error("failed to parse config", "error", err)
		os.Exit(1)
	}

	// 補全預設配置 (如果 yaml 沒寫)
	if cfg.Snapshot.Path == "" {
		cfg.Snapshot.Path = "bank.json"
	}
	return cfg
}
