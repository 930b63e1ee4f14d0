package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/harshadayini/The-Second-Mind/internal/agent"
	"github.com/harshadayini/The-Second-Mind/internal/browser"
	"github.com/harshadayini/The-Second-Mind/internal/report"
)

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Agent *agent.Agent
	Query string
}

type resultMsg struct {
	digest *report.Digest
}

type App struct {
	agent  *agent.Agent
	query  string
	digest *report.Digest
	cursor int

	width  int
	height int

	spinner       spinner.Model
	fetching      bool
	previewScroll int
	status        string
}

func NewApp(opts RunOpts) *App {
	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	return &App{
		agent:    opts.Agent,
		query:    opts.Query,
		spinner:  sp,
		fetching: true,
	}
}

func (a *App) Init() tea.Cmd {
	return tea.Batch(a.spinner.Tick, a.fetchCmd())
}

func (a *App) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		res := a.agent.FetchExternalData(context.Background(), a.query)
		return resultMsg{digest: report.Build(a.query, res)}
	}
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case resultMsg:
		a.fetching = false
		a.digest = msg.digest
		a.cursor = 0
		a.previewScroll = 0
		return a, nil

	case spinner.TickMsg:
		if !a.fetching {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return a, tea.Quit

	case "j", "down":
		if a.digest != nil && a.cursor < len(a.digest.Cards)-1 {
			a.cursor++
			a.previewScroll = 0
		}

	case "k", "up":
		if a.cursor > 0 {
			a.cursor--
			a.previewScroll = 0
		}

	case "pgdown", "J":
		a.previewScroll++

	case "pgup", "K":
		if a.previewScroll > 0 {
			a.previewScroll--
		}

	case "o", "enter":
		if card := a.selectedCard(); card != nil && card.Link != "" {
			if err := browser.Open(card.Link); err != nil {
				a.status = fmt.Sprintf("open failed: %v", err)
			} else {
				a.status = "opened " + card.Link
			}
		}
	}
	return a, nil
}

func (a *App) selectedCard() *report.Card {
	if a.digest == nil || a.cursor < 0 || a.cursor >= len(a.digest.Cards) {
		return nil
	}
	return &a.digest.Cards[a.cursor]
}

func (a *App) View() string {
	if a.width == 0 {
		return ""
	}

	if a.fetching {
		return "\n " + a.spinner.View() + " Fetching external data for " + a.query + "..."
	}

	header := headerStyle.Render("Second Mind · " + a.query)

	contentHeight := a.height - 4
	if contentHeight < 5 {
		contentHeight = 5
	}
	listWidth := a.width * 2 / 5
	previewWidth := a.width - listWidth - 4

	list := listPaneStyle.Width(listWidth).Height(contentHeight).Render(
		renderList(a.digest.Cards, a.cursor, contentHeight, listWidth-2),
	)
	preview := previewPaneStyle.Width(previewWidth).Height(contentHeight).Render(
		renderPreview(a.digest, a.selectedCard(), previewWidth-2, contentHeight, a.previewScroll),
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, list, preview)
	status := renderStatusBar(len(a.digest.Cards), a.status, a.width)

	return lipgloss.JoinVertical(lipgloss.Left, header, body, status)
}

// Run launches the interactive browser for a query.
func Run(opts RunOpts) error {
	p := tea.NewProgram(NewApp(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
