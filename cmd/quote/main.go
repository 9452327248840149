// cmd/quote/main.go
// One-shot quote tool: computes a swap quote and prints it to stdout.
// Useful for checking pair rates without launching the dashboard.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/altwatt/dexboard/internal/config"
	"github.com/altwatt/dexboard/internal/market"
	"github.com/altwatt/dexboard/internal/price"
	"github.com/altwatt/dexboard/internal/quote"
	"github.com/altwatt/dexboard/internal/registry"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "Path to config file")
	chain := flag.String("chain", "2330", "Chain id or native symbol")
	from := flag.String("from", "ALT", "Token symbol to sell")
	to := flag.String("to", "WATT", "Token symbol to buy")
	amount := flag.String("amount", "1", "Amount to sell")
	withPrice := flag.Bool("price", false, "Also fetch the live USD price of the sold token")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger := zap.NewNop()
	if cfg.DebugLogging {
		appLogger, err = zap.NewDevelopment()
		if err != nil {
			log.Fatalf("Failed to init logger: %v", err)
		}
	}

	store, err := registry.NewStore(afero.NewOsFs(), cfg.DataDir)
	if err != nil {
		log.Fatalf("Failed to open data dir: %v", err)
	}

	reg := registry.New(store, appLogger)
	engine := quote.NewEngine(reg, market.NewPoolBook(), appLogger)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	q := engine.Quote(ctx, *chain, *from, *to, *amount)
	if q.IsZero() {
		fmt.Fprintf(os.Stderr, "no quote for %s -> %s on chain %s\n", *from, *to, *chain)
		os.Exit(1)
	}

	fmt.Printf("%s %s -> %s %s\n", q.FromAmount, q.FromToken.Symbol, q.ToAmount, q.ToToken.Symbol)
	fmt.Printf("rate: 1 %s = %.6f %s (%s)\n", q.FromToken.Symbol, q.ImpliedRate, q.ToToken.Symbol, q.Mode)

	if *withPrice {
		client := price.NewTickerClient(cfg.TickerBaseURL, cfg.TickerAPIKey, appLogger)
		cache := price.NewCache(client, cfg.PriceTTL(), appLogger)
		rec := cache.RefreshPrice(ctx, q.FromToken.Symbol)
		fmt.Printf("%s price: %.8f USD (%s)\n", rec.Symbol, rec.Price, rec.Source)
	}
}
