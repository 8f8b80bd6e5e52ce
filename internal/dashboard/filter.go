package dashboard

import (
	"strings"

	"github.com/matheuskafuri/headlines/internal/newsapi"
)

// Filter returns the articles whose title, or non-empty author, contains
// query. Matching is case-insensitive and the input order is kept. An empty
// query returns articles unchanged.
func Filter(articles []newsapi.Article, query string) []newsapi.Article {
	term := strings.ToLower(query)
	if term == "" {
		return articles
	}

	out := make([]newsapi.Article, 0, len(articles))
	for _, a := range articles {
		if matches(a, term) {
			out = append(out, a)
		}
	}
	return out
}

func matches(a newsapi.Article, term string) bool {
	if strings.Contains(strings.ToLower(a.Title), term) {
		return true
	}
	return a.Author != "" && strings.Contains(strings.ToLower(a.Author), term)
}
