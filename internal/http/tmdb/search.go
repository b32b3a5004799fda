package tmdb

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const (
	tmdbSearchMovieTemplate = "%s/search/movie?query=%s&api_key=%s&include_adult=%t"
)

type (
	Config struct {
		ApiKey       string `yaml:"api_key" env:"TMDB_API_KEY" env-required:"true" validate:"required"`
		BaseUrl      string `yaml:"base_url" env:"TMDB_BASE_URL" env-default:"https://api.themoviedb.org/3" validate:"required,url"`
		ImageBaseUrl string `yaml:"image_base_url" env:"TMDB_IMAGE_BASE_URL" env-default:"https://image.tmdb.org/t/p/w500" validate:"required,url"`
		IncludeAdult bool   `yaml:"include_adult" env:"TMDB_INCLUDE_ADULT" env-default:"false"`
	}

	SearchResult struct {
		Results      []SearchResultItem `json:"results"`
		TotalPages   int                `json:"total_pages"`
		TotalResults int                `json:"total_results"`
	}

	// SearchResultItem is a single movie stub from a TMDB search. The
	// release date and poster path are frequently null for obscure titles,
	// in which case they decode to empty strings.
	SearchResultItem struct {
		Id          json.Number `json:"id"`
		Adult       bool        `json:"adult"`
		Title       string      `json:"title"`
		Plot        string      `json:"overview"`
		PosterPath  string      `json:"poster_path"`
		ReleaseDate string      `json:"release_date"`
	}

	// Searcher queries the TMDB API for movies by free-text title, and
	// fetches poster images from the TMDB image CDN.
	// See https://developer.themoviedb.org/reference/intro/getting-started for
	// information on the TMDB API.
	Searcher struct {
		config Config
		client *http.Client
	}
)

func NewSearcher(config Config) *Searcher {
	return &Searcher{config: config, client: http.DefaultClient}
}

// WithClient replaces the HTTP client used for all requests.
func (searcher *Searcher) WithClient(client *http.Client) *Searcher {
	searcher.client = client
	return searcher
}

// SearchForMovie will search the TMDB API using the query provided, and return
// the first result TMDB returns. No attempt is made to rank or disambiguate
// the results. An error will be raised if:
//   - The query is empty
//   - A query to TMDB fails
//   - A search returns zero results
func (searcher *Searcher) SearchForMovie(query string) (*SearchResultItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, &IllegalRequestError{"search query must not be empty"}
	}

	path := fmt.Sprintf(tmdbSearchMovieTemplate, searcher.config.BaseUrl, url.QueryEscape(query), searcher.config.ApiKey, searcher.config.IncludeAdult)
	var searchResult SearchResult
	if err := searcher.httpGetJsonResponse(path, &searchResult); err != nil {
		return nil, err
	}

	if len(searchResult.Results) == 0 {
		return nil, &NoResultError{}
	}

	return &searchResult.Results[0], nil
}

// PosterURL returns the URL of the poster image referenced by
// the poster path provided.
func (searcher *Searcher) PosterURL(posterPath string) string {
	return strings.TrimRight(searcher.config.ImageBaseUrl, "/") + "/" + strings.TrimLeft(posterPath, "/")
}

// GetPoster downloads the raw bytes of the poster image referenced by the
// poster path provided. The content is not inspected.
func (searcher *Searcher) GetPoster(posterPath string) ([]byte, error) {
	if posterPath == "" {
		return nil, &IllegalRequestError{"poster path must not be empty"}
	}

	resp, err := searcher.client.Get(searcher.PosterURL(posterPath))
	if err != nil {
		return nil, &UnknownRequestError{fmt.Sprintf("failed to perform GET(%s) to TMDB: %s", posterPath, err.Error())}
	}

	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &FailedRequestError{httpCode: resp.StatusCode, message: "poster could not be downloaded", tmdbCode: -1}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnknownRequestError{fmt.Sprintf("failed to read poster body: %s", err.Error())}
	}

	return data, nil
}

func (searcher *Searcher) httpGetJsonResponse(urlPath string, targetInterface interface{}) error {
	resp, err := searcher.client.Get(urlPath)
	if err != nil {
		return &UnknownRequestError{fmt.Sprintf("failed to perform GET to TMDB: %s", redactApiKey(err.Error(), searcher.config.ApiKey))}
	}

	defer resp.Body.Close()
	respBody, err := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		var tmdbError tmdbError
		if err := json.Unmarshal(respBody, &tmdbError); err != nil {
			return &FailedRequestError{httpCode: resp.StatusCode, message: "non-OK response could not be unmarshalled", tmdbCode: -1}
		}

		return &FailedRequestError{httpCode: resp.StatusCode, message: tmdbError.StatusMessage, tmdbCode: tmdbError.StatusCode}
	}

	if err != nil {
		return &UnknownRequestError{fmt.Sprintf("failed to read response body: %s", err.Error())}
	}

	if err := json.Unmarshal(respBody, targetInterface); err != nil {
		return &UnknownRequestError{fmt.Sprintf("response JSON could not be unmarshalled: %s", err.Error())}
	}

	return nil
}

// redactApiKey strips the API key out of error messages, as
// net/http includes the full request URL in transport errors.
func redactApiKey(message string, apiKey string) string {
	if apiKey == "" {
		return message
	}

	return strings.ReplaceAll(message, apiKey, "<redacted>")
}
