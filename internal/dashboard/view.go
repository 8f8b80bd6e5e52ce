package dashboard

import (
	"context"
	"strings"

	"github.com/matheuskafuri/headlines/internal/newsapi"
	"go.uber.org/zap"
)

// View holds the dashboard state. It has a single owner and is not safe for
// concurrent use.
type View struct {
	loading   bool
	canonical []newsapi.Article
	filtered  []newsapi.Article
	query     string
	outcome   Outcome
}

// NewView returns a view that is loading with no articles.
func NewView() *View {
	return &View{
		loading:   true,
		canonical: []newsapi.Article{},
		filtered:  []newsapi.Article{},
	}
}

// Begin marks a fetch as in flight.
func (v *View) Begin() {
	v.loading = true
}

// Settle replaces both lists with the outcome's articles and clears the
// loading flag. A query entered while loading is applied to the new list.
func (v *View) Settle(o Outcome) {
	v.outcome = o
	v.canonical = o.Articles
	if v.canonical == nil {
		v.canonical = []newsapi.Article{}
	}
	v.filtered = Filter(v.canonical, v.query)
	v.loading = false
}

// Load fetches once and settles the view. The loading flag is released even
// if the fetcher panics.
func (v *View) Load(ctx context.Context, f Fetcher, logger *zap.Logger) {
	v.Begin()
	defer func() { v.loading = false }()
	v.Settle(Fetch(ctx, f, logger))
}

// SetQuery records the lower-cased query and recomputes the filtered list
// from the canonical one.
func (v *View) SetQuery(raw string) {
	v.query = strings.ToLower(raw)
	v.filtered = Filter(v.canonical, v.query)
}

func (v *View) Loading() bool { return v.loading }

func (v *View) Query() string { return v.query }

func (v *View) Outcome() Outcome { return v.outcome }

// Articles returns the canonical list.
func (v *View) Articles() []newsapi.Article { return v.canonical }

// Filtered returns the list currently on display.
func (v *View) Filtered() []newsapi.Article { return v.filtered }
