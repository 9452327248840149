// internal/ui/bridge.go
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/altwatt/dexboard/internal/bridge"
	"github.com/altwatt/dexboard/internal/registry"
	"github.com/altwatt/dexboard/internal/ui/style"
)

// bridgeView is the bridge screen: pick a destination chain and fetch a fee
// estimate for moving the native asset off the active chain, or track an
// in-flight transfer by id.
type bridgeView struct {
	networks    []registry.NetworkDescriptor
	activeChain int64
	destIdx     int
	estimate    *bridge.FeeEstimate
	requested   bool

	idInput   textinput.Model
	focusID   bool
	status    *bridge.TransferStatus
	statusErr string
	tracking  bool
}

func newBridgeView(networks []registry.NetworkDescriptor, activeChain int64) bridgeView {
	input := textinput.New()
	input.Placeholder = "transfer id"
	input.CharLimit = 64
	input.Width = 30

	v := bridgeView{networks: networks, activeChain: activeChain, idInput: input}
	v.ensureDest()
	return v
}

func (v *bridgeView) setActiveChain(chainID int64) {
	v.activeChain = chainID
	v.estimate = nil
	v.requested = false
	v.ensureDest()
}

// ensureDest keeps the destination selector off the active chain.
func (v *bridgeView) ensureDest() {
	for i := 0; i < len(v.networks); i++ {
		idx := (v.destIdx + i) % len(v.networks)
		if v.networks[idx].ChainID != v.activeChain {
			v.destIdx = idx
			return
		}
	}
}

func (v *bridgeView) setEstimate(e bridge.FeeEstimate) {
	v.estimate = &e
}

// typing reports whether keystrokes belong to the transfer id input.
func (v *bridgeView) typing() bool {
	return v.focusID
}

// setStatus records the outcome of a transfer lookup.
func (v *bridgeView) setStatus(msg TransferStatusMsg) {
	v.tracking = false
	if msg.Err != nil {
		v.status = nil
		v.statusErr = fmt.Sprintf("transfer lookup failed: %v", msg.Err)
		return
	}
	status := msg.Status
	v.status = &status
	v.statusErr = ""
}

func (v *bridgeView) update(msg tea.Msg, services *Services) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			v.focusID = !v.focusID
			if v.focusID {
				v.idInput.Focus()
				return textinput.Blink
			}
			v.idInput.Blur()
			return nil
		case "left", "right":
			if v.focusID {
				break
			}
			step := 1
			if msg.String() == "left" {
				step = len(v.networks) - 1
			}
			if len(v.networks) > 0 {
				v.destIdx = (v.destIdx + step) % len(v.networks)
				v.ensureDest()
				v.estimate = nil
				v.requested = false
			}
			return nil
		case "enter":
			if v.focusID {
				id := strings.TrimSpace(v.idInput.Value())
				if id == "" {
					return nil
				}
				v.tracking = true
				v.statusErr = ""
				return services.transferStatusCmd(id)
			}
			from := services.Registry.GetNetwork(v.activeChain)
			if from == nil || len(v.networks) == 0 {
				return nil
			}
			v.requested = true
			dest := v.networks[v.destIdx]
			return services.bridgeFeeCmd(v.activeChain, dest.ChainID, from.NativeCurrency.Symbol, "100")
		}

		if v.focusID {
			var cmd tea.Cmd
			v.idInput, cmd = v.idInput.Update(msg)
			return cmd
		}
	}
	return nil
}

func (v *bridgeView) view() string {
	var b strings.Builder
	b.WriteString(style.Title.Render("Bridge") + "\n\n")

	fromName := fmt.Sprintf("chain %d", v.activeChain)
	symbol := "?"
	if len(v.networks) > 0 {
		for _, n := range v.networks {
			if n.ChainID == v.activeChain {
				fromName = n.Name
				symbol = n.NativeCurrency.Symbol
			}
		}
		dest := v.networks[v.destIdx]
		b.WriteString(fmt.Sprintf("%s %s (%s)\n", style.Label.Render("From:"), fromName, symbol))
		b.WriteString(fmt.Sprintf("%s %s (%d)\n\n", style.Label.Render("To:  "), dest.Name, dest.ChainID))
	}

	switch {
	case v.estimate != nil:
		e := v.estimate
		b.WriteString(fmt.Sprintf("%s %.2f%%\n", style.Label.Render("Fee:"), e.FeePercent))
		b.WriteString(fmt.Sprintf("%s %.2f %s\n", style.Label.Render("Min fee:"), e.MinFee, e.Symbol))
		b.WriteString(fmt.Sprintf("%s %s\n", style.Label.Render("ETA:"), e.EstimatedETA))
		if e.Fallback {
			b.WriteString(style.Warning.Render("Estimate from defaults; bridge indexer unreachable.") + "\n")
		}
	case v.requested:
		b.WriteString(style.Label.Render("Fetching estimate...") + "\n")
	default:
		b.WriteString(style.Label.Render("Press enter to fetch a fee estimate.") + "\n")
	}

	b.WriteString(fmt.Sprintf("\n%s %s\n", style.Label.Render("Track:"), v.idInput.View()))
	switch {
	case v.tracking:
		b.WriteString(style.Label.Render("Looking up transfer...") + "\n")
	case v.statusErr != "":
		b.WriteString(style.Warning.Render(v.statusErr) + "\n")
	case v.status != nil:
		s := v.status
		b.WriteString(fmt.Sprintf("%s %s (%d → %d)\n",
			style.Label.Render("Transfer:"), s.ID, s.FromChainID, s.ToChainID))
		b.WriteString(fmt.Sprintf("%s %s  %s %s %s\n",
			style.Label.Render("State:"), string(s.State),
			style.Label.Render("Amount:"), s.Amount, s.Symbol))
		if s.TxHash != "" {
			b.WriteString(fmt.Sprintf("%s %s\n", style.Label.Render("Tx:"), s.TxHash))
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			style.Label.Render("Updated:"), s.UpdatedAt.Format("15:04:05")))
	}

	b.WriteString("\n" + style.HelpBar.Render("←/→: destination chain • enter: fetch • tab: transfer id"))
	return style.Panel.Render(b.String())
}
