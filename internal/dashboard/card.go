package dashboard

import "github.com/matheuskafuri/headlines/internal/newsapi"

const (
	DescriptionLimit = 100
	NoDescription    = "No description available..."
	PlaceholderImage = "https://via.placeholder.com/400"
	UnknownAuthor    = "Unknown"
	UnknownSource    = "Unknown"
)

// Card is an article with display fallbacks applied.
type Card struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url"`
	Author      string `json:"author"`
	Source      string `json:"source"`
	URL         string `json:"url"`
}

func NewCard(a newsapi.Article) Card {
	c := Card{
		Title:       a.Title,
		Description: NoDescription,
		ImageURL:    a.ImageURL,
		Author:      a.Author,
		Source:      a.Source.Name,
		URL:         a.URL,
	}
	if a.Description != "" {
		c.Description = excerpt(a.Description, DescriptionLimit)
	}
	if c.ImageURL == "" {
		c.ImageURL = PlaceholderImage
	}
	if c.Author == "" {
		c.Author = UnknownAuthor
	}
	if c.Source == "" {
		c.Source = UnknownSource
	}
	return c
}

func Cards(articles []newsapi.Article) []Card {
	cards := make([]Card, len(articles))
	for i, a := range articles {
		cards[i] = NewCard(a)
	}
	return cards
}

// excerpt cuts s to its first n runes without adding an ellipsis.
func excerpt(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
