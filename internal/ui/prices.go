// internal/ui/prices.go
package ui

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altwatt/dexboard/internal/price"
	"github.com/altwatt/dexboard/internal/ui/style"
)

// priceTable is the prices screen backed by a scrollable table widget.
type priceTable struct {
	table table.Model
}

func newPriceTable() priceTable {
	columns := []table.Column{
		{Title: "Symbol", Width: 8},
		{Title: "Price", Width: 14},
		{Title: "24h %", Width: 9},
		{Title: "High", Width: 12},
		{Title: "Low", Width: 12},
		{Title: "Volume", Width: 14},
		{Title: "Source", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.Bold(true).Foreground(style.ColorAccent)
	s.Selected = s.Selected.Foreground(style.ColorAccent).Bold(true)
	t.SetStyles(s)

	return priceTable{table: t}
}

func (p *priceTable) setSize(width, height int) {
	if height > 8 {
		p.table.SetHeight(height - 8)
	}
}

func (p *priceTable) setRecords(records map[string]price.Record) {
	symbols := make([]string, 0, len(records))
	for symbol := range records {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	rows := make([]table.Row, 0, len(symbols))
	for _, symbol := range symbols {
		rec := records[symbol]
		rows = append(rows, table.Row{
			symbol,
			formatPrice(rec.Price),
			fmt.Sprintf("%+.2f%%", rec.ChangePercent24h),
			formatPrice(rec.High24h),
			formatPrice(rec.Low24h),
			fmt.Sprintf("%.0f", rec.Volume24h),
			string(rec.Source),
		})
	}
	p.table.SetRows(rows)
}

func (p *priceTable) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	p.table, cmd = p.table.Update(msg)
	return cmd
}

func (p *priceTable) view() string {
	return style.Panel.Render(style.Title.Render("Prices") + "\n" + p.table.View())
}

// formatPrice keeps sub-cent assets readable without drowning majors in zeros.
func formatPrice(v float64) string {
	if v != 0 && v < 0.01 {
		return fmt.Sprintf("%.8f", v)
	}
	return fmt.Sprintf("%.2f", v)
}
