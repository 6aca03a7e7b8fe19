// Package igdb queries the IGDB games API with Apicalypse bodies.
package igdb

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/network"
)

// Fields is the projection every games query asks for.
const Fields = "name,genres.name,platforms.name,rating,first_release_date," +
	"involved_companies.company.name,involved_companies.developer,involved_companies.publisher," +
	"game_modes.name,cover.url,summary,url"

// Limit caps how many games a query returns.
const Limit = 20

type Named struct {
	Name string `json:"name"`
}

type InvolvedCompany struct {
	Company   Named `json:"company"`
	Developer bool  `json:"developer"`
	Publisher bool  `json:"publisher"`
}

type Cover struct {
	URL string `json:"url"`
}

type Game struct {
	ID                int               `json:"id"`
	Name              string            `json:"name"`
	Genres            []Named           `json:"genres"`
	Platforms         []Named           `json:"platforms"`
	Rating            float64           `json:"rating"`
	FirstReleaseDate  int64             `json:"first_release_date"`
	InvolvedCompanies []InvolvedCompany `json:"involved_companies"`
	GameModes         []Named           `json:"game_modes"`
	Cover             *Cover            `json:"cover"`
	Summary           string            `json:"summary"`
	URL               string            `json:"url"`
}

// Query builds an Apicalypse body.
type Query struct {
	Where string
	Sort  string
	Limit int
}

// ByKeyword matches games tagged with the keyword name.
func ByKeyword(keyword string) Query {
	return Query{Where: fmt.Sprintf("keywords.name = %q", keyword), Limit: Limit}
}

// Popular is the fallback query: well-rated games with enough votes.
func Popular() Query {
	return Query{Where: "rating_count > 100", Sort: "rating_count desc", Limit: Limit}
}

func (q Query) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "fields %s;", Fields)
	if q.Where != "" {
		fmt.Fprintf(&b, " where %s;", q.Where)
	}
	if q.Sort != "" {
		fmt.Fprintf(&b, " sort %s;", q.Sort)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = Limit
	}
	fmt.Fprintf(&b, " limit %d;", limit)
	return b.String()
}

type Client struct {
	BaseURL     string
	ClientID    string
	AccessToken string
}

func New(baseURL, clientID, accessToken string) *Client {
	return &Client{
		BaseURL:     strings.TrimSuffix(baseURL, "/"),
		ClientID:    clientID,
		AccessToken: accessToken,
	}
}

// Games posts q to /games.
func (c *Client) Games(ctx context.Context, q Query) ([]*Game, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/games", strings.NewReader(q.String()))
	if err != nil {
		return nil, fmt.Errorf("igdb: create request: %w", err)
	}

	req.Header.Set("Client-ID", c.ClientID)
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "text/plain")

	log.Debugf("igdb: POST /games %s", q.Where)

	var games []*Game
	if err := network.DoJSON(req, &games); err != nil {
		return nil, fmt.Errorf("igdb games: %w", err)
	}

	return games, nil
}
