// Package tmdb is a thin client for The Movie Database v3 API.
package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/network"
)

// Kind is the TMDB media kind in URL paths.
type Kind string

const (
	Movie Kind = "movie"
	TV    Kind = "tv"
)

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type Person struct {
	Name string `json:"name"`
	Job  string `json:"job,omitempty"`
}

type Credits struct {
	Cast []Person `json:"cast"`
	Crew []Person `json:"crew"`
}

// Title is a movie or TV show as returned by discover, popular or details.
// List endpoints fill only the summary fields.
type Title struct {
	ID           int     `json:"id"`
	Title        string  `json:"title"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	ReleaseDate  string  `json:"release_date"`
	FirstAirDate string  `json:"first_air_date"`
	VoteAverage  float64 `json:"vote_average"`
	Overview     string  `json:"overview"`
	GenreIDs     []int   `json:"genre_ids"`

	Genres           []Genre  `json:"genres"`
	Runtime          int      `json:"runtime"`
	EpisodeRunTime   []int    `json:"episode_run_time"`
	NumberOfSeasons  int      `json:"number_of_seasons"`
	NumberOfEpisodes int      `json:"number_of_episodes"`
	CreatedBy        []Person `json:"created_by"`
	Credits          *Credits `json:"credits"`
}

// Merge fills t with whatever the details answer d adds.
func (t *Title) Merge(d *Title) {
	if d == nil {
		return
	}

	if d.Title != "" {
		t.Title = d.Title
	}
	if d.Name != "" {
		t.Name = d.Name
	}
	if d.PosterPath != "" {
		t.PosterPath = d.PosterPath
	}
	if d.ReleaseDate != "" {
		t.ReleaseDate = d.ReleaseDate
	}
	if d.FirstAirDate != "" {
		t.FirstAirDate = d.FirstAirDate
	}
	if d.Overview != "" {
		t.Overview = d.Overview
	}
	if d.VoteAverage != 0 {
		t.VoteAverage = d.VoteAverage
	}
	if len(d.Genres) > 0 {
		t.Genres = d.Genres
	}
	if d.Runtime != 0 {
		t.Runtime = d.Runtime
	}
	if len(d.EpisodeRunTime) > 0 {
		t.EpisodeRunTime = d.EpisodeRunTime
	}
	if d.NumberOfSeasons != 0 {
		t.NumberOfSeasons = d.NumberOfSeasons
	}
	if d.NumberOfEpisodes != 0 {
		t.NumberOfEpisodes = d.NumberOfEpisodes
	}
	if len(d.CreatedBy) > 0 {
		t.CreatedBy = d.CreatedBy
	}
	if d.Credits != nil {
		t.Credits = d.Credits
	}
}

type page struct {
	Page         int      `json:"page"`
	Results      []*Title `json:"results"`
	TotalResults int      `json:"total_results"`
}

type Client struct {
	BaseURL  string
	APIKey   string
	Language string
}

func New(baseURL, apiKey, language string) *Client {
	return &Client{
		BaseURL:  strings.TrimSuffix(baseURL, "/"),
		APIKey:   apiKey,
		Language: language,
	}
}

// Discover calls /discover/{kind} with the given filters, e.g. with_keywords or with_genres.
func (c *Client) Discover(ctx context.Context, kind Kind, params url.Values) ([]*Title, error) {
	var p page
	if err := c.get(ctx, "/discover/"+string(kind), params, &p); err != nil {
		return nil, err
	}
	return p.Results, nil
}

// Popular calls /{kind}/popular.
func (c *Client) Popular(ctx context.Context, kind Kind) ([]*Title, error) {
	var p page
	if err := c.get(ctx, "/"+string(kind)+"/popular", nil, &p); err != nil {
		return nil, err
	}
	return p.Results, nil
}

// Details fetches one title together with its credits.
func (c *Client) Details(ctx context.Context, kind Kind, id int) (*Title, error) {
	var t Title
	params := url.Values{"append_to_response": {"credits"}}
	if err := c.get(ctx, fmt.Sprintf("/%s/%d", kind, id), params, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, v any) error {
	query := url.Values{}
	for k, vs := range params {
		query[k] = vs
	}
	query.Set("api_key", c.APIKey)
	if c.Language != "" {
		query.Set("language", c.Language)
	}

	endpoint := c.BaseURL + path + "?" + query.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("tmdb: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	log.Debugf("tmdb: GET %s %s", path, params.Encode())
	if err := network.DoJSON(req, v); err != nil {
		return fmt.Errorf("tmdb %s: %w", path, err)
	}

	return nil
}
