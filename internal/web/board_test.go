package web

import (
	"context"
	"sync"
	"testing"

	"github.com/matheuskafuri/headlines/internal/logging"
	"github.com/matheuskafuri/headlines/internal/newsapi"
)

// blockingFetcher holds the request open until release is closed.
type blockingFetcher struct {
	started chan struct{}
	release chan struct{}
}

func (f blockingFetcher) TopHeadlines(ctx context.Context) ([]newsapi.Article, error) {
	close(f.started)
	<-f.release
	return []newsapi.Article{{Title: "Late Arrival"}}, nil
}

func TestBoardSnapshotWhileLoading(t *testing.T) {
	b := NewBoard()
	f := blockingFetcher{started: make(chan struct{}), release: make(chan struct{})}

	done := make(chan struct{})
	go func() {
		b.Load(context.Background(), f, logging.Nop())
		close(done)
	}()

	<-f.started
	// Readers are not blocked by an in-flight fetch
	snap := b.Snapshot("")
	if !snap.Loading {
		t.Error("expected loading while the fetch is in flight")
	}
	if len(snap.Cards) != 0 {
		t.Errorf("expected no cards yet, got %d", len(snap.Cards))
	}

	close(f.release)
	<-done

	snap = b.Snapshot("")
	if snap.Loading {
		t.Error("expected loading=false after settle")
	}
	if len(snap.Cards) != 1 || snap.Cards[0].Title != "Late Arrival" {
		t.Errorf("unexpected cards: %+v", snap.Cards)
	}
}

func TestBoardConcurrentSnapshots(t *testing.T) {
	b := loadedBoard(sampleFetcher())

	var wg sync.WaitGroup
	for _, q := range []string{"", "lee", "kim", "zzz", "NEWS"} {
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func(q string) {
				defer wg.Done()
				b.Snapshot(q)
			}(q)
		}
	}
	wg.Wait()

	if got := len(b.Snapshot("").Cards); got != 2 {
		t.Errorf("canonical list changed under concurrent reads: %d cards", got)
	}
}
