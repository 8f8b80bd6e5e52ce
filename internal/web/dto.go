package web

import "github.com/matheuskafuri/headlines/internal/dashboard"

type ArticlesResponse struct {
	Loading  bool             `json:"loading"`
	Query    string           `json:"query"`
	Total    int              `json:"total"`
	Count    int              `json:"count"`
	Error    string           `json:"error,omitempty"`
	Articles []dashboard.Card `json:"articles"`
}

type pageData struct {
	Query   string
	Loading bool
	Failed  bool
	Error   string
	Total   int
	Cards   []dashboard.Card
}
