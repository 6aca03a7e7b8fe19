// Package spotify searches Spotify through the RapidAPI spotify23 proxy.
package spotify

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/network"
)

// OpenURL is the base of public Spotify links.
const OpenURL = "https://open.spotify.com"

type Image struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type Sources struct {
	Sources []Image `json:"sources"`
}

// Largest picks the source with the biggest area, or nil.
func (s Sources) Largest() *Image {
	var best *Image
	for i := range s.Sources {
		img := &s.Sources[i]
		if best == nil || img.Width*img.Height > best.Width*best.Height {
			best = img
		}
	}
	return best
}

type Track struct {
	ID      string `json:"id"`
	URI     string `json:"uri"`
	Name    string `json:"name"`
	Artists struct {
		Items []struct {
			Profile struct {
				Name string `json:"name"`
			} `json:"profile"`
		} `json:"items"`
	} `json:"artists"`
	AlbumOfTrack struct {
		Name     string  `json:"name"`
		CoverArt Sources `json:"coverArt"`
		Date     struct {
			Year int `json:"year"`
		} `json:"date"`
		Releases struct {
			Items []struct {
				Date struct {
					Year int `json:"year"`
				} `json:"date"`
			} `json:"items"`
		} `json:"releases"`
	} `json:"albumOfTrack"`
	Previews struct {
		AudioPreview struct {
			URL string `json:"url"`
		} `json:"audioPreview"`
	} `json:"previews"`
	Duration struct {
		TotalMilliseconds int `json:"totalMilliseconds"`
	} `json:"duration"`
	ContentRating struct {
		Label string `json:"label"`
	} `json:"contentRating"`
}

// ArtistNames lists the track's artists in credit order.
func (t *Track) ArtistNames() []string {
	names := make([]string, 0, len(t.Artists.Items))
	for _, a := range t.Artists.Items {
		if a.Profile.Name != "" {
			names = append(names, a.Profile.Name)
		}
	}
	return names
}

// ReleaseYear is the album year, 0 when unknown.
func (t *Track) ReleaseYear() int {
	if items := t.AlbumOfTrack.Releases.Items; len(items) > 0 && items[0].Date.Year != 0 {
		return items[0].Date.Year
	}
	return t.AlbumOfTrack.Date.Year
}

func (t *Track) Explicit() bool {
	return t.ContentRating.Label == "EXPLICIT"
}

type Playlist struct {
	URI         string `json:"uri"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Images      struct {
		Items []Sources `json:"items"`
	} `json:"images"`
	Owner struct {
		Name string `json:"name"`
	} `json:"owner"`
}

// FirstImage is the first source of the first image set.
func (p *Playlist) FirstImage() string {
	for _, set := range p.Images.Items {
		if len(set.Sources) > 0 {
			return set.Sources[0].URL
		}
	}
	return ""
}

// Publisher decodes both "publisher": "Name" and "publisher": {"name": "Name"}.
type Publisher string

func (p *Publisher) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*p = Publisher(s)
		return nil
	}

	var obj struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("publisher: %w", err)
	}
	*p = Publisher(obj.Name)
	return nil
}

type Podcast struct {
	URI       string    `json:"uri"`
	Name      string    `json:"name"`
	Publisher Publisher `json:"publisher"`
	Type      string    `json:"type"`
	MediaType string    `json:"mediaType"`
	CoverArt  Sources   `json:"coverArt"`
}

// IDFromURI returns the last segment of a spotify:kind:id URI.
func IDFromURI(uri string) string {
	if i := strings.LastIndex(uri, ":"); i >= 0 {
		return uri[i+1:]
	}
	return uri
}

type section[T any] struct {
	TotalCount int `json:"totalCount"`
	Items      []struct {
		Data T `json:"data"`
	} `json:"items"`
}

func (s section[T]) data() []*T {
	out := make([]*T, 0, len(s.Items))
	for i := range s.Items {
		out = append(out, &s.Items[i].Data)
	}
	return out
}

// Results is one multi-type search answer.
type Results struct {
	Tracks    []*Track
	Playlists []*Playlist
	Podcasts  []*Podcast
}

type searchResponse struct {
	Tracks    section[Track]    `json:"tracks"`
	Playlists section[Playlist] `json:"playlists"`
	Podcasts  section[Podcast]  `json:"podcasts"`
}

type Client struct {
	BaseURL string
	APIKey  string
}

func New(baseURL, apiKey string) *Client {
	return &Client{BaseURL: strings.TrimSuffix(baseURL, "/"), APIKey: apiKey}
}

// Search runs a multi-type search for q.
func (c *Client) Search(ctx context.Context, q string, limit int) (*Results, error) {
	query := url.Values{
		"type":               {"multi"},
		"offset":             {"0"},
		"limit":              {strconv.Itoa(limit)},
		"numberOfTopResults": {"5"},
		"q":                  {q},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/search/?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("spotify: create request: %w", err)
	}

	req.Header.Set("x-rapidapi-key", c.APIKey)
	if u, err := url.Parse(c.BaseURL); err == nil {
		req.Header.Set("x-rapidapi-host", u.Host)
	}

	log.Debugf("spotify: search %q limit %d", q, limit)

	var resp searchResponse
	if err := network.DoJSON(req, &resp); err != nil {
		return nil, fmt.Errorf("spotify search: %w", err)
	}

	return &Results{
		Tracks:    resp.Tracks.data(),
		Playlists: resp.Playlists.data(),
		Podcasts:  resp.Podcasts.data(),
	}, nil
}
