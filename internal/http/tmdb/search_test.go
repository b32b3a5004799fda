package tmdb_test

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hbomb79/mediaconf/internal/http/tmdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testApiKey = "test-api-key"

func newTestSearcher(t *testing.T, handler http.HandlerFunc) *tmdb.Searcher {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return tmdb.NewSearcher(tmdb.Config{
		ApiKey:       testApiKey,
		BaseUrl:      server.URL + "/3",
		ImageBaseUrl: server.URL + "/t/p/w500",
	}).WithClient(server.Client())
}

func Test_SearchForMovie_ReturnsFirstResult(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/3/search/movie", r.URL.Path)
		assert.Equal(t, "The Matrix (1999)", r.URL.Query().Get("query"))
		assert.Equal(t, testApiKey, r.URL.Query().Get("api_key"))
		assert.Equal(t, "false", r.URL.Query().Get("include_adult"))

		fmt.Fprint(w, `{
			"page": 1,
			"results": [
				{"id": 603, "title": "The Matrix", "overview": "Set in the 22nd century...", "release_date": "1999-03-30", "poster_path": "/matrix.jpg"},
				{"id": 604, "title": "The Matrix Reloaded", "overview": "...", "release_date": "2003-05-15", "poster_path": "/reloaded.jpg"}
			],
			"total_pages": 1,
			"total_results": 2
		}`)
	})

	result, err := searcher.SearchForMovie("The Matrix (1999)")
	require.NoError(t, err)
	assert.Equal(t, "603", result.Id.String())
	assert.Equal(t, "The Matrix", result.Title)
	assert.Equal(t, "Set in the 22nd century...", result.Plot)
	assert.Equal(t, "1999-03-30", result.ReleaseDate)
	assert.Equal(t, "/matrix.jpg", result.PosterPath)
}

func Test_SearchForMovie_NullFieldsDecodeEmpty(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [{"id": 1, "title": "Obscure", "overview": "", "release_date": null, "poster_path": null}]}`)
	})

	result, err := searcher.SearchForMovie("Obscure")
	require.NoError(t, err)
	assert.Empty(t, result.ReleaseDate)
	assert.Empty(t, result.PosterPath)
}

func Test_SearchForMovie_NoResults(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [], "total_pages": 0, "total_results": 0}`)
	})

	_, err := searcher.SearchForMovie("Nothing Matches This")
	var noResult *tmdb.NoResultError
	assert.True(t, errors.As(err, &noResult), "expected NoResultError, got %v", err)
}

func Test_SearchForMovie_FailedRequest(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"status_code": 7, "status_message": "Invalid API key: You must be granted a valid key."}`)
	})

	_, err := searcher.SearchForMovie("Anything")
	var failed *tmdb.FailedRequestError
	require.True(t, errors.As(err, &failed), "expected FailedRequestError, got %v", err)
	assert.Equal(t, http.StatusUnauthorized, failed.StatusCode())
	assert.Contains(t, err.Error(), "Invalid API key")
}

func Test_SearchForMovie_MalformedJson(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": [`)
	})

	_, err := searcher.SearchForMovie("Anything")
	var unknown *tmdb.UnknownRequestError
	assert.True(t, errors.As(err, &unknown), "expected UnknownRequestError, got %v", err)
}

func Test_SearchForMovie_EmptyQueryIsIllegal(t *testing.T) {
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request should be made for an empty query")
	})

	_, err := searcher.SearchForMovie("  ")
	var illegal *tmdb.IllegalRequestError
	assert.True(t, errors.As(err, &illegal), "expected IllegalRequestError, got %v", err)
}

func Test_GetPoster(t *testing.T) {
	imageBytes := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10}
	searcher := newTestSearcher(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/t/p/w500/matrix.jpg":
			w.Write(imageBytes)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	t.Run("Found", func(t *testing.T) {
		data, err := searcher.GetPoster("/matrix.jpg")
		require.NoError(t, err)
		assert.Equal(t, imageBytes, data)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := searcher.GetPoster("/missing.jpg")
		var failed *tmdb.FailedRequestError
		require.True(t, errors.As(err, &failed), "expected FailedRequestError, got %v", err)
		assert.Equal(t, http.StatusNotFound, failed.StatusCode())
	})

	t.Run("Empty path", func(t *testing.T) {
		_, err := searcher.GetPoster("")
		var illegal *tmdb.IllegalRequestError
		assert.True(t, errors.As(err, &illegal), "expected IllegalRequestError, got %v", err)
	})
}

func Test_PosterURL(t *testing.T) {
	searcher := tmdb.NewSearcher(tmdb.Config{ImageBaseUrl: "https://image.tmdb.org/t/p/w500"})
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc123.jpg", searcher.PosterURL("/abc123.jpg"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w500/abc123.jpg", searcher.PosterURL("abc123.jpg"))
}
