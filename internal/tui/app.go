package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/matheuskafuri/headlines/internal/browser"
	"github.com/matheuskafuri/headlines/internal/dashboard"
	"go.uber.org/zap"
)

type mode int

const (
	modeNormal mode = iota
	modeSearch
	modeHelp
)

// openURL is swapped out in tests.
var openURL = browser.Open

type App struct {
	view    *dashboard.View
	fetcher dashboard.Fetcher
	logger  *zap.Logger

	ctx    context.Context
	cancel context.CancelFunc

	cursor int
	mode   mode

	width  int
	height int

	// Sub-components
	searchInput textinput.Model
	spinner     spinner.Model

	currentDate string
	err         error
}

// RunOpts holds all parameters for launching the TUI.
type RunOpts struct {
	Fetcher dashboard.Fetcher
	Logger  *zap.Logger
}

func NewApp(opts RunOpts) *App {
	ti := textinput.New()
	ti.Placeholder = "Search by title or author"
	ti.Prompt = searchPromptStyle.Render("/ ")
	ti.CharLimit = 100

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = spinnerStyle

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		view:        dashboard.NewView(),
		fetcher:     opts.Fetcher,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
		searchInput: ti,
		spinner:     sp,
		currentDate: time.Now().Format("Jan 2"),
	}
}

// Init starts the one and only fetch.
func (a *App) Init() tea.Cmd {
	a.view.Begin()
	return tea.Batch(a.fetchCmd(), a.spinner.Tick)
}

// fetchCmd captures its dependencies so the closure never touches App state.
func (a *App) fetchCmd() tea.Cmd {
	ctx, f, logger := a.ctx, a.fetcher, a.logger
	return func() tea.Msg {
		return fetchDoneMsg{outcome: dashboard.Fetch(ctx, f, logger)}
	}
}

func openBrowserCmd(url string) tea.Cmd {
	return func() tea.Msg {
		if err := openURL(url); err != nil {
			return openErrMsg{err: err}
		}
		return nil
	}
}

func (a *App) quit() (tea.Model, tea.Cmd) {
	a.cancel()
	return a, tea.Quit
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.searchInput.Width = max(10, msg.Width-4)
		return a, nil

	case tea.KeyMsg:
		// Clear sticky error on any keypress
		a.err = nil
		return a.handleKey(msg)

	case fetchDoneMsg:
		a.view.Settle(msg.outcome)
		a.clampCursor()
		return a, nil

	case openErrMsg:
		a.logger.Warn("failed to open article", zap.Error(msg.err))
		a.err = msg.err
		return a, nil

	case spinner.TickMsg:
		if a.view.Loading() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global keys
	if msg.String() == "ctrl+c" {
		return a.quit()
	}

	switch a.mode {
	case modeSearch:
		return a.handleSearchKey(msg)
	case modeHelp:
		if msg.String() == "?" || msg.String() == "esc" || msg.String() == "q" {
			a.mode = modeNormal
		}
		return a, nil
	}

	cols := gridColumns(a.width)
	filtered := a.view.Filtered()

	switch msg.String() {
	case "q":
		return a.quit()
	case "l", "right":
		a.moveCursor(1)
	case "h", "left":
		a.moveCursor(-1)
	case "j", "down":
		a.moveCursor(cols)
	case "k", "up":
		a.moveCursor(-cols)
	case "o", "enter":
		if a.cursor < len(filtered) {
			return a, openBrowserCmd(filtered[a.cursor].URL)
		}
	case "/":
		a.mode = modeSearch
		a.searchInput.Focus()
		return a, textinput.Blink
	case "esc":
		if a.view.Query() != "" {
			a.searchInput.SetValue("")
			a.applyQuery()
		}
	case "?":
		a.mode = modeHelp
	}
	return a, nil
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		a.mode = modeNormal
		a.searchInput.Blur()
		return a, nil
	}

	before := a.searchInput.Value()
	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	// Only re-filter on actual value changes, not cursor moves etc.
	if a.searchInput.Value() != before {
		a.applyQuery()
	}
	return a, cmd
}

// applyQuery forwards the full field value, not a diff.
func (a *App) applyQuery() {
	a.view.SetQuery(a.searchInput.Value())
	a.cursor = 0
}

func (a *App) moveCursor(delta int) {
	next := a.cursor + delta
	if next < 0 || next >= len(a.view.Filtered()) {
		return
	}
	a.cursor = next
}

func (a *App) clampCursor() {
	if a.cursor >= len(a.view.Filtered()) {
		a.cursor = max(0, len(a.view.Filtered())-1)
	}
}

func (a *App) View() string {
	if a.width == 0 {
		return lipgloss.NewStyle().Foreground(colorAccent).Render("  headlines")
	}

	if a.mode == modeHelp {
		return a.renderHelp()
	}

	headerLeft := headerStyle.Render("headlines")
	headerRight := headerDateStyle.Render(a.currentDate)
	headerGap := a.width - lipgloss.Width(headerLeft) - lipgloss.Width(headerRight)
	if headerGap < 0 {
		headerGap = 0
	}
	header := headerLeft + fmt.Sprintf("%*s", headerGap, "") + headerRight

	search := a.searchInput.View()

	// header, search, status
	bodyHeight := a.height - 3
	if bodyHeight < cardHeight {
		bodyHeight = cardHeight
	}

	filtered := a.view.Filtered()
	outcome := a.view.Outcome()

	var body string
	switch {
	case a.view.Loading():
		body = centerText(a.spinner.View()+" Loading headlines...", a.width, bodyHeight)
	case outcome.Failed():
		body = centerText(warnStyle.Render("Could not reach NewsAPI: ")+outcome.Err.Error(), a.width, bodyHeight)
	case len(filtered) == 0 && a.view.Query() != "":
		body = centerText(fmt.Sprintf("No articles match %q", a.view.Query()), a.width, bodyHeight)
	case len(filtered) == 0:
		body = centerText("No articles found", a.width, bodyHeight)
	default:
		body = renderGrid(dashboard.Cards(filtered), a.cursor, a.width, bodyHeight)
	}
	body = fitHeight(body, bodyHeight)

	status := renderStatusBar(statusInfo{
		shown:     len(filtered),
		total:     len(a.view.Articles()),
		query:     a.view.Query(),
		loading:   a.view.Loading(),
		failed:    outcome.Failed(),
		searching: a.mode == modeSearch,
	}, a.width)

	if a.err != nil {
		status = lipgloss.NewStyle().Foreground(colorAccent).Render(a.err.Error())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, search, body, status)
}

func fitHeight(s string, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderHelp() string {
	title := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render("headlines")
	dim := helpDimStyle

	help := title + dim.Render(" · Keyboard Shortcuts") + "\n\n" +
		dim.Render("Navigation") + "\n" +
		"  ←↓↑→, hjkl   Move between cards\n\n" +
		dim.Render("Actions") + "\n" +
		"  o, enter      Open article in browser\n" +
		"  /             Search by title or author\n" +
		"  esc           Clear the search\n\n" +
		dim.Render("General") + "\n" +
		"  ?             Toggle this help\n" +
		"  q, ctrl+c     Quit"

	card := helpCardStyle.Render(help)

	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, card)
}

// Run starts the TUI application.
func Run(opts RunOpts) error {
	app := NewApp(opts)
	defer app.cancel()
	p := tea.NewProgram(app, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
