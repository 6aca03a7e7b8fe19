// Package provider is the registry of catalogs: which one serves which media
// type and which credentials it needs.
package provider

import (
	"strings"

	"github.com/moodbuster/moodbuster/auth"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/media"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Provider describes one catalog.
type Provider struct {
	ID         string
	Name       string
	Website    string
	MediaTypes []media.Type
	// BaseURLKey names the config key holding the API root.
	BaseURLKey string
	// Required credentials must all be present before the catalog is queried.
	Required []string
	Optional []string
}

func (p *Provider) String() string {
	return p.Name
}

// BaseURL is the configured API root.
func (p *Provider) BaseURL() string {
	return viper.GetString(p.BaseURLKey)
}

// Missing lists the required credentials that are not set anywhere.
func (p *Provider) Missing() []string {
	return lo.Filter(p.Required, func(k string, _ int) bool {
		return auth.Get(k) == ""
	})
}

// Configured reports whether every required credential is present.
func (p *Provider) Configured() bool {
	return len(p.Missing()) == 0
}

// Serves reports whether the catalog answers for t.
func (p *Provider) Serves(t media.Type) bool {
	return lo.Contains(p.MediaTypes, t)
}

var (
	TMDB = &Provider{
		ID:         "tmdb",
		Name:       "TMDB",
		Website:    "https://www.themoviedb.org/settings/api",
		MediaTypes: []media.Type{media.Movie, media.TVShow, media.Anime},
		BaseURLKey: key.TMDBBaseURL,
		Required:   []string{key.TMDBAPIKey},
	}
	IGDB = &Provider{
		ID:         "igdb",
		Name:       "IGDB",
		Website:    "https://api-docs.igdb.com/#account-creation",
		MediaTypes: []media.Type{media.Game},
		BaseURLKey: key.IGDBBaseURL,
		Required:   []string{key.IGDBClientID, key.IGDBAccessToken},
	}
	Spotify = &Provider{
		ID:         "spotify",
		Name:       "Spotify (RapidAPI)",
		Website:    "https://rapidapi.com/Glavier/api/spotify23",
		MediaTypes: []media.Type{media.Music, media.Playlist, media.Podcast},
		BaseURLKey: key.SpotifyBaseURL,
		Required:   []string{key.RapidAPIKey},
	}
	Tasty = &Provider{
		ID:         "tasty",
		Name:       "Tasty (RapidAPI)",
		Website:    "https://rapidapi.com/apidojo/api/tasty",
		MediaTypes: []media.Type{media.Food, media.Drink},
		BaseURLKey: key.TastyBaseURL,
		Required:   []string{key.RapidAPIKey},
	}
	GoogleBooks = &Provider{
		ID:         "googlebooks",
		Name:       "Google Books",
		Website:    "https://developers.google.com/books/docs/v1/using#APIKey",
		MediaTypes: []media.Type{media.Book},
		BaseURLKey: key.GoogleBooksBaseURL,
		Optional:   []string{key.GoogleBooksAPIKey},
	}
)

// Builtins returns every catalog.
func Builtins() []*Provider {
	return []*Provider{TMDB, IGDB, Spotify, Tasty, GoogleBooks}
}

// Get finds a catalog by id or name, ignoring case.
func Get(name string) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return strings.EqualFold(p.ID, name) || strings.EqualFold(p.Name, name)
	})
}

// For returns the catalog serving t.
func For(t media.Type) (*Provider, bool) {
	return lo.Find(Builtins(), func(p *Provider) bool {
		return p.Serves(t)
	})
}
