// internal/ui/pools.go
package ui

import (
	"fmt"
	"strings"

	"github.com/altwatt/dexboard/internal/ui/style"
)

// renderPools draws the liquidity pools known for the active chain.
func renderPools(services *Services, chainID int64) string {
	pools := services.Pools.PoolsForChain(chainID)
	if len(pools) == 0 {
		return style.Panel.Render("No pools tracked on this chain yet.")
	}

	var b strings.Builder
	b.WriteString(style.Title.Render("Liquidity Pools") + "\n\n")
	b.WriteString(fmt.Sprintf("%-14s %-10s %-14s %-8s\n",
		style.Label.Render("Pair"),
		style.Label.Render("Fee"),
		style.Label.Render("TVL"),
		style.Label.Render("APR")))
	for _, p := range pools {
		pair := tokenPairLabel(services, chainID, p.TokenA, p.TokenB)
		b.WriteString(fmt.Sprintf("%-14s %-10s %-14s %-8s\n",
			pair,
			fmt.Sprintf("%.2f%%", float64(p.FeeBps)/100),
			fmt.Sprintf("$%.0f", p.TVLUSD),
			style.Signed(fmt.Sprintf("%.1f%%", p.APR), true)))
	}
	return style.Panel.Render(b.String())
}

// tokenPairLabel resolves two contract addresses into a SYMBOL/SYMBOL label,
// falling back to truncated addresses for unregistered contracts.
func tokenPairLabel(services *Services, chainID int64, addrA, addrB string) string {
	return shortSymbol(services, chainID, addrA) + "/" + shortSymbol(services, chainID, addrB)
}

func shortSymbol(services *Services, chainID int64, addr string) string {
	chainKey := fmt.Sprintf("%d", chainID)
	for _, t := range services.Registry.GetTokens(chainKey) {
		if strings.EqualFold(t.Address, addr) {
			return t.Symbol
		}
	}
	if len(addr) > 10 {
		return addr[:6] + "…" + addr[len(addr)-4:]
	}
	return addr
}

// renderPositions draws the perpetual positions screen.
func renderPositions(services *Services) string {
	positions := services.Positions.Positions()
	if len(positions) == 0 {
		return style.Panel.Render("No open positions.")
	}

	var b strings.Builder
	b.WriteString(style.Title.Render("Positions") + "\n\n")
	b.WriteString(fmt.Sprintf("%-8s %-7s %-12s %-14s %-14s %-6s %-14s\n",
		style.Label.Render("Symbol"),
		style.Label.Render("Side"),
		style.Label.Render("Size"),
		style.Label.Render("Entry"),
		style.Label.Render("Mark"),
		style.Label.Render("Lev"),
		style.Label.Render("uPnL")))
	for _, p := range positions {
		b.WriteString(fmt.Sprintf("%-8s %-7s %-12s %-14s %-14s %-6s %-14s\n",
			p.Symbol,
			string(p.Side),
			fmt.Sprintf("%.2f", p.Size),
			formatPrice(p.EntryPrice),
			formatPrice(p.MarkPrice),
			fmt.Sprintf("%.0fx", p.Leverage),
			style.Signed(fmt.Sprintf("%+.2f", p.UnrealizedPnL), p.UnrealizedPnL >= 0)))
	}
	return style.Panel.Render(b.String())
}
