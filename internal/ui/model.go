// internal/ui/model.go
// Package ui implements the terminal dashboard: swap, prices, pools,
// positions and bridge screens rendered over the core services.
package ui

import (
	"fmt"
	"sort"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/altwatt/dexboard/internal/registry"
	"github.com/altwatt/dexboard/internal/ui/style"
)

// Tab indexes the dashboard screens.
type Tab int

const (
	TabSwap Tab = iota
	TabPrices
	TabPools
	TabPositions
	TabBridge
	tabCount
)

var tabNames = [tabCount]string{"Swap", "Prices", "Pools", "Positions", "Bridge"}

// Model is the root bubbletea model for the dashboard.
type Model struct {
	services *Services
	tab      Tab
	width    int
	height   int

	activeChain int64
	networks    []registry.NetworkDescriptor

	swap       swapForm
	priceTable priceTable
	bridgeView bridgeView

	notice string
}

// NewModel builds the root model around the injected services.
func NewModel(services *Services) *Model {
	chainID := services.Cfg.DefaultChainID
	networks := services.Registry.ListNetworks()

	m := &Model{
		services:    services,
		tab:         TabSwap,
		activeChain: chainID,
		networks:    networks,
		swap:        newSwapForm(services, chainID),
		priceTable:  newPriceTable(),
		bridgeView:  newBridgeView(networks, chainID),
	}
	return m
}

// Init starts the tick loops and the first refresh cycle. The periodic price
// refresh itself runs on the price feed; when no feed is attached the model
// issues the first refresh so the tables are never empty.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.services.connectivityCmd(),
		slowTick(m.services.Cfg.RefreshDelay()),
		fastTick(m.services.Cfg.FastFeedDelay()),
		m.swap.initCmd(),
	}
	if m.services.Feed == nil {
		cmds = append(cmds, m.services.refreshPricesCmd(m.symbols()))
	}
	return tea.Batch(cmds...)
}

// ChainSymbols returns the unique token symbols for a chain, sorted.
func ChainSymbols(reg *registry.Registry, chainID int64) []string {
	chainKey := strconv.FormatInt(chainID, 10)
	seen := make(map[string]struct{})
	var out []string
	for _, t := range reg.GetTokens(chainKey) {
		if _, ok := seen[t.Symbol]; ok {
			continue
		}
		seen[t.Symbol] = struct{}{}
		out = append(out, t.Symbol)
	}
	sort.Strings(out)
	return out
}

// symbols returns the unique token symbols for the active chain.
func (m *Model) symbols() []string {
	return ChainSymbols(m.services.Registry, m.activeChain)
}

// Update routes messages to the active screen.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.priceTable.setSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if !m.typing() || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
		case "1", "2", "3", "4", "5":
			// Digits belong to the focused text input, if any.
			if !m.typing() {
				idx, _ := strconv.Atoi(msg.String())
				m.tab = Tab(idx - 1)
				return m, nil
			}
		case "]":
			m.tab = (m.tab + 1) % tabCount
			return m, nil
		case "[":
			m.tab = (m.tab + tabCount - 1) % tabCount
			return m, nil
		case "ctrl+n":
			return m, m.cycleNetwork()
		}

	case SlowTickMsg:
		// Price refresh rides on the feed; the slow loop only probes
		// connectivity for the status header.
		cmds = append(cmds,
			m.services.connectivityCmd(),
			slowTick(m.services.Cfg.RefreshDelay()),
		)
		if m.services.Feed == nil {
			cmds = append(cmds, m.services.refreshPricesCmd(m.symbols()))
		}

	case FastTickMsg:
		m.services.Positions.Tick()
		cmds = append(cmds,
			m.swap.quoteCmd(),
			fastTick(m.services.Cfg.FastFeedDelay()),
		)

	case PricesRefreshedMsg:
		m.priceTable.setRecords(msg.Records)

	case ConnectivityMsg:
		// Rendered straight from the state cache; nothing to store here.

	case NetworkSwitchedMsg:
		if msg.Err != nil {
			m.notice = fmt.Sprintf("network switch failed: %v", msg.Err)
		} else {
			m.notice = ""
			m.activeChain = msg.ChainID
			m.swap = newSwapForm(m.services, msg.ChainID)
			m.bridgeView.setActiveChain(msg.ChainID)
			if m.services.Feed != nil {
				m.services.Feed.SetSymbols(m.symbols())
			}
			cmds = append(cmds, m.services.refreshPricesCmd(m.symbols()), m.swap.initCmd())
		}

	case BridgeFeeMsg:
		m.bridgeView.setEstimate(msg.Estimate)

	case TransferStatusMsg:
		m.bridgeView.setStatus(msg)
	}

	switch m.tab {
	case TabSwap:
		cmd := m.swap.update(msg)
		cmds = append(cmds, cmd)
	case TabPrices:
		cmd := m.priceTable.update(msg)
		cmds = append(cmds, cmd)
	case TabBridge:
		cmd := m.bridgeView.update(msg, m.services)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// typing reports whether the active screen owns printable keystrokes.
func (m *Model) typing() bool {
	if m.tab == TabSwap {
		return true
	}
	return m.tab == TabBridge && m.bridgeView.typing()
}

// cycleNetwork switches to the next chain in table order.
func (m *Model) cycleNetwork() tea.Cmd {
	if len(m.networks) == 0 {
		return nil
	}
	next := m.networks[0].ChainID
	for i, n := range m.networks {
		if n.ChainID == m.activeChain {
			next = m.networks[(i+1)%len(m.networks)].ChainID
			break
		}
	}
	return m.services.switchNetworkCmd(next)
}

// View renders the tab bar, active screen and help line.
func (m *Model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	var tabs []string
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, style.TabActive.Render(name))
		} else {
			tabs = append(tabs, style.TabInactive.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	status := style.StatusOffline.Render("● offline")
	if m.services.State.Online() {
		status = style.StatusOnline.Render("● live")
	}
	network := "unknown network"
	if n := m.services.Registry.GetNetwork(m.activeChain); n != nil {
		network = fmt.Sprintf("%s (%d)", n.Name, n.ChainID)
	}
	statusLine := style.Label.Render(network) + "  " + status

	var body string
	switch m.tab {
	case TabSwap:
		body = m.swap.view()
	case TabPrices:
		body = m.priceTable.view()
	case TabPools:
		body = renderPools(m.services, m.activeChain)
	case TabPositions:
		body = renderPositions(m.services)
	case TabBridge:
		body = m.bridgeView.view()
	}

	help := style.HelpBar.Render("[/]: screens • 1-5: jump • ctrl+n: switch network • ctrl+c: quit")
	if m.notice != "" {
		help = style.Warning.Render(m.notice) + "\n" + help
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, statusLine, body, help)
}
