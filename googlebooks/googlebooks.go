// Package googlebooks searches volumes on the Google Books API.
package googlebooks

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/network"
)

// MaxResults is the page size the API allows at most.
const MaxResults = 40

type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}

type VolumeInfo struct {
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle"`
	Authors       []string    `json:"authors"`
	PublishedDate string      `json:"publishedDate"`
	Description   string      `json:"description"`
	Categories    []string    `json:"categories"`
	AverageRating float64     `json:"averageRating"`
	ImageLinks    *ImageLinks `json:"imageLinks"`
	InfoLink      string      `json:"infoLink"`
}

type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

type volumesResponse struct {
	TotalItems int       `json:"totalItems"`
	Items      []*Volume `json:"items"`
}

type Client struct {
	BaseURL string
	// APIKey is optional.
	APIKey string
	// Country is an ISO 3166-1 code, optional.
	Country string
}

func New(baseURL, apiKey, country string) *Client {
	return &Client{BaseURL: strings.TrimSuffix(baseURL, "/"), APIKey: apiKey, Country: country}
}

// Volumes searches for q.
func (c *Client) Volumes(ctx context.Context, q string) ([]*Volume, error) {
	query := url.Values{
		"q":          {q},
		"maxResults": {fmt.Sprint(MaxResults)},
	}
	if c.APIKey != "" {
		query.Set("key", c.APIKey)
	}
	if c.Country != "" {
		query.Set("country", c.Country)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/volumes?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("googlebooks: create request: %w", err)
	}

	log.Debugf("googlebooks: volumes %q", q)

	var resp volumesResponse
	if err := network.DoJSON(req, &resp); err != nil {
		return nil, fmt.Errorf("googlebooks volumes: %w", err)
	}

	return resp.Items, nil
}
