package nytimes

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overviewFixture = `{
	"results": {
		"lists": [
			{
				"list_name": "Hardcover Nonfiction",
				"list_name_encoded": "hardcover-nonfiction",
				"books": [
					{
						"primary_isbn13": "9781541673526",
						"title": "The Dawn of Everything",
						"author": "David Graeber and David Wengrow",
						"book_image": "https://example.com/dawn.jpg",
						"price": "0.00"
					}
				]
			},
			{
				"list_name": "Hardcover Fiction",
				"list_name_encoded": "hardcover-fiction",
				"books": [
					{
						"primary_isbn13": "9780593321201",
						"title": "Lessons in Chemistry",
						"author": "Bonnie Garmus",
						"book_image": "https://example.com/lessons.jpg",
						"price": "17.99"
					}
				]
			}
		]
	}
}`

func newOverviewServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotQuery
}

func TestFetchOverview_FlattensListsAndSendsAPIKey(t *testing.T) {
	srv, gotQuery := newOverviewServer(t, http.StatusOK, overviewFixture)

	client := NewClient(srv.URL, "DUMMY_API_KEY", 100)
	books, err := client.FetchOverview(context.Background())
	require.NoError(t, err)
	require.Len(t, books, 2)

	assert.Equal(t, "api-key=DUMMY_API_KEY", *gotQuery)

	assert.Equal(t, "9781541673526", books[0].ISBN)
	assert.Equal(t, "The Dawn of Everything", books[0].Title)
	assert.Equal(t, "David Graeber and David Wengrow", books[0].Author)
	assert.Equal(t, "https://example.com/dawn.jpg", books[0].ImageURL)
	assert.Equal(t, "Hardcover Nonfiction", books[0].ListName)
	assert.Equal(t, "hardcover-nonfiction", books[0].EncodedListName)
	assert.False(t, books[0].IsFavourite)

	assert.Equal(t, "Hardcover Fiction", books[1].ListName)
	assert.Equal(t, 17.99, books[1].Price)
}

func TestFetchOverview_ZeroPriceGetsPlaceholderInRange(t *testing.T) {
	srv, _ := newOverviewServer(t, http.StatusOK, overviewFixture)

	client := NewClient(srv.URL, "DUMMY_API_KEY", 100)
	books, err := client.FetchOverview(context.Background())
	require.NoError(t, err)

	price := books[0].Price
	assert.GreaterOrEqual(t, price, 5.0)
	assert.LessOrEqual(t, price, 20.0)
}

func TestFetchOverview_RatingIsAlwaysGeneratedInRange(t *testing.T) {
	srv, _ := newOverviewServer(t, http.StatusOK, overviewFixture)

	client := NewClient(srv.URL, "DUMMY_API_KEY", 100)
	books, err := client.FetchOverview(context.Background())
	require.NoError(t, err)

	for _, b := range books {
		assert.GreaterOrEqual(t, b.Rating, 1)
		assert.LessOrEqual(t, b.Rating, 5)
	}
}

func TestFetchOverview_PlaceholdersUseInjectedRandomness(t *testing.T) {
	srv, _ := newOverviewServer(t, http.StatusOK, overviewFixture)

	// Intn pinned to 0 makes both placeholders their range minimum.
	client := NewClient(srv.URL, "DUMMY_API_KEY", 100).
		WithRandInt(func(n int) int { return 0 })

	books, err := client.FetchOverview(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5.0, books[0].Price)
	assert.Equal(t, 1, books[0].Rating)
}

func TestFetchOverview_BadStatusIsFetchError(t *testing.T) {
	srv, _ := newOverviewServer(t, http.StatusTooManyRequests, "")

	client := NewClient(srv.URL, "DUMMY_API_KEY", 100)
	_, err := client.FetchOverview(context.Background())

	var fetchErr *FetchError
	require.Error(t, err)
	assert.True(t, errors.As(err, &fetchErr))
}

func TestFetchOverview_MalformedJSONIsFetchError(t *testing.T) {
	srv, _ := newOverviewServer(t, http.StatusOK, `{"results": {`)

	client := NewClient(srv.URL, "DUMMY_API_KEY", 100)
	_, err := client.FetchOverview(context.Background())

	var fetchErr *FetchError
	require.Error(t, err)
	assert.True(t, errors.As(err, &fetchErr))
}

func TestFetchOverview_UnreachableEndpointIsFetchError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "DUMMY_API_KEY", 100)
	_, err := client.FetchOverview(context.Background())

	var fetchErr *FetchError
	require.Error(t, err)
	assert.True(t, errors.As(err, &fetchErr))
}
