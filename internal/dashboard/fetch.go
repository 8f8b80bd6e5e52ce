package dashboard

import (
	"context"

	"github.com/matheuskafuri/headlines/internal/newsapi"
	"go.uber.org/zap"
)

// Fetcher is satisfied by *newsapi.Client.
type Fetcher interface {
	TopHeadlines(ctx context.Context) ([]newsapi.Article, error)
}

// Outcome is the settled result of one fetch. Err is nil on success; on
// failure Articles is empty and Err says why, so callers can tell "no news"
// apart from "could not reach the service".
type Outcome struct {
	Articles []newsapi.Article
	Err      error
}

func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Fetch runs one request and never returns an error: failures are logged
// and folded into the Outcome.
func Fetch(ctx context.Context, f Fetcher, logger *zap.Logger) Outcome {
	articles, err := f.TopHeadlines(ctx)
	if err != nil {
		logger.Warn("failed to fetch news articles", zap.Error(err))
		return Outcome{Articles: []newsapi.Article{}, Err: err}
	}
	if articles == nil {
		articles = []newsapi.Article{}
	}
	logger.Info("fetched news articles", zap.Int("count", len(articles)))
	return Outcome{Articles: articles}
}
