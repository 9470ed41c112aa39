package nytimes

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"bookworm/internal/entity"

	"golang.org/x/time/rate"
)

const (
	ratingMin = 1
	ratingMax = 5
	priceMin  = 5
	priceMax  = 20
)

// FetchError wraps any failure to reach or parse the bestseller endpoint.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("nytimes fetch: %v", e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	limiter    *rate.Limiter
	randInt    func(n int) int
}

// NewClient builds a client for the NYT books API. The call is
// timeout-bounded and never retried; callers decide how to degrade.
func NewClient(baseURL, apiKey string, rps int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		apiKey:  apiKey,
		limiter: rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		randInt: rand.Intn,
	}
}

// WithRandInt swaps the placeholder randomness source. Tests use this to
// pin generated ratings and prices.
func (c *Client) WithRandInt(fn func(n int) int) *Client {
	c.randInt = fn
	return c
}

// overviewResponse matches lists/full-overview.json
type overviewResponse struct {
	Results struct {
		Lists []struct {
			ListName        string `json:"list_name"`
			ListNameEncoded string `json:"list_name_encoded"`
			Books           []struct {
				PrimaryISBN13 string `json:"primary_isbn13"`
				Title         string `json:"title"`
				Author        string `json:"author"`
				BookImage     string `json:"book_image"`
				Price         string `json:"price"`
			} `json:"books"`
		} `json:"lists"`
	} `json:"results"`
}

// FetchOverview pulls the full bestseller overview and flattens it into
// candidate records, one per book per list. Duplicate ISBNs across lists
// are kept here; the service dedups when it merges with the store.
func (c *Client) FetchOverview(ctx context.Context) ([]entity.Book, error) {
	u := fmt.Sprintf("%s/lists/full-overview.json?api-key=%s", c.baseURL, url.QueryEscape(c.apiKey))

	var res overviewResponse
	if err := c.get(ctx, u, &res); err != nil {
		return nil, &FetchError{Err: err}
	}

	var books []entity.Book
	for _, list := range res.Results.Lists {
		for _, b := range list.Books {
			books = append(books, entity.Book{
				ISBN:            b.PrimaryISBN13,
				Title:           b.Title,
				Author:          b.Author,
				ImageURL:        b.BookImage,
				Rating:          c.placeholderRating(),
				Price:           c.priceFor(b.Price),
				IsFavourite:     false,
				ListName:        list.ListName,
				EncodedListName: list.ListNameEncoded,
			})
		}
	}
	return books, nil
}

// priceFor parses the wire price. The feed reports unknown prices as
// "0.00"; those (and anything unparsable) get a placeholder so the client
// never shows a free bestseller.
func (c *Client) priceFor(raw string) float64 {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price == 0 {
		return c.placeholderPrice()
	}
	return price
}

func (c *Client) placeholderRating() int {
	return ratingMin + c.randInt(ratingMax-ratingMin+1)
}

func (c *Client) placeholderPrice() float64 {
	return float64(priceMin + c.randInt(priceMax-priceMin+1))
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
