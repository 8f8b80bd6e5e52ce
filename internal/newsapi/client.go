package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const DefaultBaseURL = "https://newsapi.org"

const userAgent = "headlines/1.0"

// APIError is returned for non-2xx responses. Code and Message come from the
// NewsAPI error envelope when the body carries one.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code == "" {
		return fmt.Sprintf("newsapi: %d %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("newsapi: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

type Options struct {
	BaseURL  string
	APIKey   string
	Country  string
	Category string
	// Timeout of zero leaves the request unbounded.
	Timeout time.Duration
}

type Client struct {
	baseURL    string
	apiKey     string
	country    string
	category   string
	httpClient *http.Client
}

func NewClient(opts Options) *Client {
	base := opts.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(base, "/"),
		apiKey:     opts.APIKey,
		country:    opts.Country,
		category:   opts.Category,
		httpClient: &http.Client{Timeout: opts.Timeout},
	}
}

func (c *Client) endpoint() string {
	q := url.Values{}
	q.Set("country", c.country)
	q.Set("category", c.category)
	q.Set("apiKey", c.apiKey)
	return c.baseURL + "/v2/top-headlines?" + q.Encode()
}

// TopHeadlines issues a single GET for the configured country and category
// and returns the articles in the order the API sent them.
func (c *Client) TopHeadlines(ctx context.Context) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(), nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi fetch: %w", redactKey(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeError(resp)
	}

	var raw topHeadlinesResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("newsapi decode: %w", err)
	}
	if raw.Articles == nil {
		return []Article{}, nil
	}
	return raw.Articles, nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}
	var env errorResponse
	if json.Unmarshal(body, &env) == nil && env.Message != "" {
		apiErr.Code = env.Code
		apiErr.Message = env.Message
	}
	return apiErr
}

// redactKey keeps the API key out of logged transport errors, which embed
// the full request URL.
func redactKey(err error, key string) error {
	if key == "" {
		return err
	}
	msg := err.Error()
	for _, form := range []string{key, url.QueryEscape(key)} {
		msg = strings.ReplaceAll(msg, form, "REDACTED")
	}
	if msg == err.Error() {
		return err
	}
	return &redactedError{msg: msg, err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }
