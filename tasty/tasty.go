// Package tasty lists recipes from the Tasty API on RapidAPI.
package tasty

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/network"
)

// RecipeURL is the public page prefix for a recipe slug.
const RecipeURL = "https://tasty.co/recipe/"

// PageSize is how many recipes a list call asks for.
const PageSize = 20

type Tag struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
}

type Component struct {
	RawText string `json:"raw_text"`
}

type Section struct {
	Name       string      `json:"name"`
	Components []Component `json:"components"`
}

type Instruction struct {
	DisplayText string `json:"display_text"`
	Position    int    `json:"position"`
}

type Recipe struct {
	ID               int           `json:"id"`
	Name             string        `json:"name"`
	Slug             string        `json:"slug"`
	Description      string        `json:"description"`
	ThumbnailURL     string        `json:"thumbnail_url"`
	TotalTimeMinutes int           `json:"total_time_minutes"`
	PrepTimeMinutes  int           `json:"prep_time_minutes"`
	CookTimeMinutes  int           `json:"cook_time_minutes"`
	NumServings      int           `json:"num_servings"`
	Tags             []Tag         `json:"tags"`
	Sections         []Section     `json:"sections"`
	Instructions     []Instruction `json:"instructions"`
}

type listResponse struct {
	Count   int       `json:"count"`
	Results []*Recipe `json:"results"`
}

type Client struct {
	BaseURL string
	APIKey  string
}

func New(baseURL, apiKey string) *Client {
	return &Client{BaseURL: strings.TrimSuffix(baseURL, "/"), APIKey: apiKey}
}

// Recipes lists recipes matching q. An empty q lists without a filter.
func (c *Client) Recipes(ctx context.Context, q string) ([]*Recipe, error) {
	query := url.Values{
		"from": {"0"},
		"size": {fmt.Sprint(PageSize)},
		"q":    {q},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/recipes/list?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("tasty: create request: %w", err)
	}

	req.Header.Set("X-RapidAPI-Key", c.APIKey)
	if u, err := url.Parse(c.BaseURL); err == nil {
		req.Header.Set("X-RapidAPI-Host", u.Host)
	}

	log.Debugf("tasty: recipes %q", q)

	var resp listResponse
	if err := network.DoJSON(req, &resp); err != nil {
		return nil, fmt.Errorf("tasty recipes: %w", err)
	}

	return resp.Results, nil
}
