package web

import (
	"context"
	"sync"

	"github.com/matheuskafuri/headlines/internal/dashboard"
	"go.uber.org/zap"
)

// Board shares one dashboard.View between request goroutines. The view is
// only written by Load; requests read it and filter their own copy of the
// canonical list, so one visitor's query never affects another's.
type Board struct {
	mu   sync.RWMutex
	view *dashboard.View
}

func NewBoard() *Board {
	return &Board{view: dashboard.NewView()}
}

// Load fetches once and settles the view. The lock is not held while the
// request is in flight.
func (b *Board) Load(ctx context.Context, f dashboard.Fetcher, logger *zap.Logger) {
	b.mu.Lock()
	b.view.Begin()
	b.mu.Unlock()

	outcome := dashboard.Fetch(ctx, f, logger)

	b.mu.Lock()
	b.view.Settle(outcome)
	b.mu.Unlock()
}

type Snapshot struct {
	Loading bool
	Total   int
	Cards   []dashboard.Card
	Err     error
}

func (b *Board) Snapshot(query string) Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	articles := b.view.Articles()
	return Snapshot{
		Loading: b.view.Loading(),
		Total:   len(articles),
		Cards:   dashboard.Cards(dashboard.Filter(articles, query)),
		Err:     b.view.Outcome().Err,
	}
}
