package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/matheuskafuri/headlines/internal/newsapi"
)

type stubFetcher struct {
	articles []newsapi.Article
	err      error
}

func (s stubFetcher) TopHeadlines(ctx context.Context) ([]newsapi.Article, error) {
	return s.articles, s.err
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedApp(t *testing.T, f stubFetcher) *App {
	t.Helper()
	app := NewApp(RunOpts{Fetcher: f})
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	if app.Init() == nil {
		t.Fatal("Init should return the fetch command")
	}
	if !app.view.Loading() {
		t.Fatal("expected loading after Init")
	}
	app.Update(app.fetchCmd()())
	return app
}

func twoArticleFetcher() stubFetcher {
	return stubFetcher{articles: []newsapi.Article{
		{Title: "Quantum Leap", Author: "A. Lee", URL: "https://example.com/quantum"},
		{Title: "Battery News", Author: "B. Kim", URL: "https://example.com/battery"},
	}}
}

func TestFetchSettlesView(t *testing.T) {
	app := loadedApp(t, twoArticleFetcher())

	if app.view.Loading() {
		t.Error("expected loading=false after fetch")
	}
	if got := len(app.view.Filtered()); got != 2 {
		t.Errorf("expected 2 articles, got %d", got)
	}
}

func TestSearchFiltersOnEveryKeystroke(t *testing.T) {
	app := loadedApp(t, twoArticleFetcher())

	app.Update(runes("/"))
	if app.mode != modeSearch {
		t.Fatal("expected search mode after /")
	}

	app.Update(runes("L"))
	app.Update(runes("e"))
	if got := len(app.view.Filtered()); got != 1 {
		t.Errorf("after %q expected 1 match, got %d", app.searchInput.Value(), got)
	}
	app.Update(runes("e"))
	if app.view.Query() != "lee" {
		t.Errorf("expected lower-cased query lee, got %q", app.view.Query())
	}
	filtered := app.view.Filtered()
	if len(filtered) != 1 || filtered[0].Title != "Quantum Leap" {
		t.Errorf("expected only Quantum Leap, got %v", filtered)
	}

	// Deleting characters widens the result again
	app.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	app.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	app.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got := len(app.view.Filtered()); got != 2 {
		t.Errorf("expected 2 articles after clearing, got %d", got)
	}
}

func TestEnterLeavesSearchKeepingQuery(t *testing.T) {
	app := loadedApp(t, twoArticleFetcher())

	app.Update(runes("/"))
	app.Update(runes("kim"))
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if app.mode != modeNormal {
		t.Error("expected normal mode after enter")
	}
	if app.view.Query() != "kim" {
		t.Errorf("expected query kim to be kept, got %q", app.view.Query())
	}

	// esc in normal mode clears it
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if app.view.Query() != "" || len(app.view.Filtered()) != 2 {
		t.Errorf("expected cleared query, got %q with %d articles", app.view.Query(), len(app.view.Filtered()))
	}
}

func TestCursorMovement(t *testing.T) {
	f := stubFetcher{articles: []newsapi.Article{{Title: "A"}, {Title: "B"}, {Title: "C"}}}
	app := loadedApp(t, f)
	// 80 columns holds two cards per row

	app.Update(runes("l"))
	if app.cursor != 1 {
		t.Errorf("expected cursor 1, got %d", app.cursor)
	}
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	if app.cursor != 1 {
		t.Errorf("moving past the last card should be ignored, got %d", app.cursor)
	}
	app.Update(runes("h"))
	app.Update(runes("j"))
	if app.cursor != 2 {
		t.Errorf("expected cursor 2 after moving down a row, got %d", app.cursor)
	}
	app.Update(runes("k"))
	if app.cursor != 0 {
		t.Errorf("expected cursor 0 after moving up, got %d", app.cursor)
	}
}

func TestOpenUsesSelectedFilteredArticle(t *testing.T) {
	var opened string
	orig := openURL
	openURL = func(u string) error {
		opened = u
		return nil
	}
	t.Cleanup(func() { openURL = orig })

	app := loadedApp(t, twoArticleFetcher())
	app.Update(runes("/"))
	app.Update(runes("kim"))
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := app.Update(runes("o"))
	if cmd == nil {
		t.Fatal("expected an open command")
	}
	if msg := cmd(); msg != nil {
		t.Errorf("unexpected message %v", msg)
	}
	if opened != "https://example.com/battery" {
		t.Errorf("expected battery URL, got %q", opened)
	}
}

func TestOpenErrorIsShown(t *testing.T) {
	app := loadedApp(t, twoArticleFetcher())
	app.Update(openErrMsg{err: errors.New("no opener available")})

	if !strings.Contains(app.View(), "no opener available") {
		t.Error("expected open error in the status line")
	}
}

func TestFailureRendersDistinctNotice(t *testing.T) {
	app := loadedApp(t, stubFetcher{err: errors.New("connection refused")})

	if app.view.Loading() {
		t.Error("expected loading=false after a failed fetch")
	}
	if len(app.view.Filtered()) != 0 {
		t.Error("expected no articles after a failed fetch")
	}
	view := app.View()
	if !strings.Contains(view, "Could not reach NewsAPI") {
		t.Errorf("expected failure notice, got:\n%s", view)
	}
	if strings.Contains(view, "No articles found") {
		t.Error("failure must not look like an empty result")
	}
}

func TestEmptyResultView(t *testing.T) {
	app := loadedApp(t, stubFetcher{articles: []newsapi.Article{}})
	if !strings.Contains(app.View(), "No articles found") {
		t.Error("expected empty-state message")
	}
}

func TestViewRendersCards(t *testing.T) {
	app := loadedApp(t, stubFetcher{articles: []newsapi.Article{
		{Title: "Chip Breakthrough", Source: newsapi.Source{Name: "TechWire"}},
	}})
	view := app.View()
	for _, want := range []string{"Chip Breakthrough", "Author: Unknown", "Source: TechWire", "No description"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %q in view", want)
		}
	}
}

func TestLoadingView(t *testing.T) {
	app := NewApp(RunOpts{Fetcher: twoArticleFetcher()})
	app.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	app.Init()
	if !strings.Contains(app.View(), "Loading headlines") {
		t.Error("expected loading indicator before the fetch settles")
	}
}

func TestQuitCancelsFetchContext(t *testing.T) {
	app := loadedApp(t, twoArticleFetcher())
	_, cmd := app.Update(runes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if app.ctx.Err() == nil {
		t.Error("expected context to be canceled on quit")
	}
}

func TestHelpToggle(t *testing.T) {
	app := loadedApp(t, twoArticleFetcher())
	app.Update(runes("?"))
	if app.mode != modeHelp {
		t.Fatal("expected help mode")
	}
	if !strings.Contains(app.View(), "Keyboard Shortcuts") {
		t.Error("expected help card")
	}
	app.Update(runes("?"))
	if app.mode != modeNormal {
		t.Error("expected normal mode after closing help")
	}
}

func TestViewFillsTerminalHeight(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*App)
	}{
		{"loaded", func(a *App) {}},
		{"searching", func(a *App) { a.Update(runes("/")) }},
		{"no match", func(a *App) {
			a.Update(runes("/"))
			a.Update(runes("zzz"))
		}},
		{"loading", func(a *App) { a.view.Begin() }},
	}
	for _, tt := range tests {
		app := loadedApp(t, twoArticleFetcher())
		app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
		tt.setup(app)

		out := app.View()
		if got := strings.Count(out, "\n") + 1; got != 40 {
			t.Errorf("%s: expected 40 lines, got %d", tt.name, got)
		}
	}
}

func TestViewFailedFetchFillsTerminalHeight(t *testing.T) {
	app := loadedApp(t, stubFetcher{err: errors.New("boom")})
	app.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := app.View()
	if got := strings.Count(out, "\n") + 1; got != 40 {
		t.Errorf("expected 40 lines, got %d", got)
	}
}
