// internal/ui/swap.go
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altwatt/dexboard/internal/quote"
	"github.com/altwatt/dexboard/internal/registry"
	"github.com/altwatt/dexboard/internal/ui/style"
)

const (
	defaultSlippageBps = 50
	slippageStepBps    = 10
	maxSlippageBps     = 500
)

// swapForm is the swap screen: an amount input plus from/to token selectors.
type swapForm struct {
	services *Services
	chainID  int64
	tokens   []registry.TokenDescriptor

	fromIdx     int
	toIdx       int
	slippageBps int
	amount      textinput.Model
	quote       quote.SwapQuote
}

func newSwapForm(services *Services, chainID int64) swapForm {
	input := textinput.New()
	input.Placeholder = "0.0"
	input.CharLimit = 24
	input.Width = 20
	input.SetValue("1")
	input.Focus()

	f := swapForm{
		services:    services,
		chainID:     chainID,
		tokens:      services.Registry.GetTokens(strconv.FormatInt(chainID, 10)),
		slippageBps: defaultSlippageBps,
		amount:      input,
	}
	if len(f.tokens) > 1 {
		f.toIdx = 1
	}
	return f
}

func (f *swapForm) initCmd() tea.Cmd {
	return tea.Batch(textinput.Blink, f.quoteCmd())
}

// quoteCmd recomputes the quote for the current form state.
func (f *swapForm) quoteCmd() tea.Cmd {
	from, to, ok := f.pair()
	if !ok {
		return nil
	}
	chainKey := strconv.FormatInt(f.chainID, 10)
	return f.services.quoteCmd(chainKey, from.Symbol, to.Symbol, f.amount.Value(), f.slippageBps)
}

func (f *swapForm) pair() (registry.TokenDescriptor, registry.TokenDescriptor, bool) {
	if len(f.tokens) == 0 || f.fromIdx >= len(f.tokens) || f.toIdx >= len(f.tokens) {
		return registry.TokenDescriptor{}, registry.TokenDescriptor{}, false
	}
	return f.tokens[f.fromIdx], f.tokens[f.toIdx], true
}

func (f *swapForm) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case QuoteMsg:
		f.quote = msg.Quote
		return nil

	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			f.fromIdx = f.next(f.fromIdx, f.toIdx)
			return f.quoteCmd()
		case "shift+tab":
			f.toIdx = f.next(f.toIdx, f.fromIdx)
			return f.quoteCmd()
		case "ctrl+r":
			f.fromIdx, f.toIdx = f.toIdx, f.fromIdx
			return f.quoteCmd()
		case "+":
			if f.slippageBps < maxSlippageBps {
				f.slippageBps += slippageStepBps
			}
			return f.quoteCmd()
		case "-":
			if f.slippageBps > slippageStepBps {
				f.slippageBps -= slippageStepBps
			}
			return f.quoteCmd()
		case "enter":
			return f.quoteCmd()
		}
	}

	var cmd tea.Cmd
	before := f.amount.Value()
	f.amount, cmd = f.amount.Update(msg)
	if f.amount.Value() != before {
		return tea.Batch(cmd, f.quoteCmd())
	}
	return cmd
}

// next advances a selector, skipping over the other side's selection when the
// list is long enough to allow distinct tokens.
func (f *swapForm) next(idx, other int) int {
	n := len(f.tokens)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return idx
	}
	idx = (idx + 1) % n
	if idx == other {
		idx = (idx + 1) % n
	}
	return idx
}

func (f *swapForm) view() string {
	from, to, ok := f.pair()
	if !ok {
		return style.Panel.Render("No tokens registered for this chain.")
	}

	var b strings.Builder
	b.WriteString(style.Title.Render("Swap") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %s\n", style.Label.Render("From:"), tokenLine(from)))
	b.WriteString(fmt.Sprintf("%s %s\n", style.Label.Render("To:  "), tokenLine(to)))
	b.WriteString(fmt.Sprintf("%s %s\n\n", style.Label.Render("Amount:"), f.amount.View()))

	q := f.quote
	switch {
	case q.Mode == "" || q.Mode == quote.ModeNone:
		b.WriteString(style.Warning.Render("Enter a positive amount to see a quote."))
	default:
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			style.Label.Render("You receive:"),
			lipgloss.NewStyle().Bold(true).Render(q.ToAmount),
			to.Symbol))
		b.WriteString(fmt.Sprintf("%s 1 %s = %.6f %s (%s)\n",
			style.Label.Render("Rate:"), from.Symbol, q.ImpliedRate, to.Symbol, string(q.Mode)))
		b.WriteString(fmt.Sprintf("%s %.2f%%  %s %s\n",
			style.Label.Render("Slippage:"), float64(q.SlippageBps)/100,
			style.Label.Render("Deadline:"), q.Deadline))
	}

	b.WriteString("\n" + style.HelpBar.Render("tab: from token • shift+tab: to token • ctrl+r: reverse • +/-: slippage"))
	return style.Panel.Render(b.String())
}

func tokenLine(t registry.TokenDescriptor) string {
	if t.IsNative() {
		return fmt.Sprintf("%s (%s, native)", t.Symbol, t.Name)
	}
	return fmt.Sprintf("%s (%s)", t.Symbol, t.Name)
}
