// cmd/dashboard/main.go
package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/altwatt/dexboard/internal/bridge"
	"github.com/altwatt/dexboard/internal/config"
	"github.com/altwatt/dexboard/internal/events"
	"github.com/altwatt/dexboard/internal/logger"
	"github.com/altwatt/dexboard/internal/market"
	"github.com/altwatt/dexboard/internal/price"
	"github.com/altwatt/dexboard/internal/quote"
	"github.com/altwatt/dexboard/internal/registry"
	"github.com/altwatt/dexboard/internal/ui"
	"github.com/altwatt/dexboard/internal/ui/state"
	"github.com/altwatt/dexboard/internal/walletconn"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// File-only logger: console output would corrupt the rendered screen.
	appLogger, err := logger.NewFileOnly(&logger.Config{
		Development: cfg.DebugLogging,
		LogFile:     cfg.LogFile,
		MaxSize:     25,
		MaxBackups:  3,
		MaxAge:      14,
		Compress:    true,
	})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = logger.Sync(appLogger)
	}()

	appLogger.Info("Starting dashboard",
		zap.Int64("default_chain", cfg.DefaultChainID),
		zap.String("ticker_base_url", cfg.TickerBaseURL))

	services, err := buildServices(cfg, appLogger)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}

	program := tea.NewProgram(
		ui.NewModel(services),
		tea.WithAltScreen(),
	)

	// The feed drives the periodic price refresh: each cycle lands on the bus
	// for the state cache and is pushed into the running program for render.
	feed := price.NewFeed(
		services.Prices,
		ui.ChainSymbols(services.Registry, cfg.DefaultChainID),
		cfg.RefreshDelay(),
		appLogger,
		func(records map[string]price.Record) {
			_ = services.Bus.Publish(events.NewPriceUpdated(records))
			program.Send(ui.PricesRefreshedMsg{Records: records})
		},
	)
	services.Feed = feed

	go func() {
		if _, err := program.Run(); err != nil {
			appLogger.Error("Dashboard terminated with error", zap.Error(err))
		}
		stop()
	}()
	go feed.Start()

	<-rootCtx.Done()

	appLogger.Info("Shutting down dashboard")
	feed.Stop()
	program.Quit()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := services.Bus.Shutdown(shutdownCtx); err != nil {
		appLogger.Warn("Event bus did not drain in time", zap.Error(err))
	}
}

// buildServices wires every service the dashboard renders from. All
// dependencies flow through constructors; nothing is a package global.
func buildServices(cfg *config.Config, appLogger *zap.Logger) (*ui.Services, error) {
	store, err := registry.NewStore(afero.NewOsFs(), cfg.DataDir)
	if err != nil {
		return nil, err
	}

	reg := registry.New(store, appLogger)
	pools := market.NewPoolBook()
	positions := market.NewPositionBook()

	tickerClient := price.NewTickerClient(cfg.TickerBaseURL, cfg.TickerAPIKey, appLogger)
	prices := price.NewCache(tickerClient, cfg.PriceTTL(), appLogger)

	bus := events.NewBus(appLogger, 64)
	uiState := state.NewCache(appLogger)
	uiState.Wire(bus)
	subscribeAuditLog(bus, appLogger)

	services := &ui.Services{
		Cfg:       cfg,
		Logger:    appLogger,
		Registry:  reg,
		Engine:    quote.NewEngine(reg, pools, appLogger),
		Prices:    prices,
		Pools:     pools,
		Positions: positions,
		Bridge:    bridge.NewClient(cfg.BridgeBaseURL, appLogger),
		Bus:       bus,
		State:     uiState,
	}

	if cfg.WalletRPCURL != "" {
		services.Wallet = walletconn.NewRPCProvider(cfg.WalletRPCURL, appLogger)
	}

	return services, nil
}

// subscribeAuditLog records chain switches and bridge transfer updates in the
// log file so a session leaves a reviewable trail.
func subscribeAuditLog(bus *events.Bus, appLogger *zap.Logger) {
	audit := appLogger.Named("audit")
	bus.SubscribeFunc(events.TypeNetworkSwitched, func(_ context.Context, e events.Event) error {
		if evt, ok := e.(events.NetworkSwitched); ok {
			audit.Info("Network switched", zap.Int64("chain_id", evt.ChainID))
		}
		return nil
	})
	bus.SubscribeFunc(events.TypeTransferUpdated, func(_ context.Context, e events.Event) error {
		if evt, ok := e.(events.TransferUpdated); ok {
			audit.Info("Bridge transfer updated",
				zap.String("transfer_id", evt.Status.ID),
				zap.String("state", string(evt.Status.State)))
		}
		return nil
	})
}
