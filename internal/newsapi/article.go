package newsapi

// Article is one headline as returned by /v2/top-headlines. Optional fields
// that the API sends as null decode to the empty string.
type Article struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	ImageURL    string `json:"urlToImage"`
	Source      Source `json:"source"`
	Author      string `json:"author"`
}

type Source struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

type topHeadlinesResponse struct {
	Status       string    `json:"status"`
	TotalResults int       `json:"totalResults"`
	Articles     []Article `json:"articles"`
}

type errorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}
