// Package normalize maps each catalog's payload onto media.Item.
package normalize

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/moodbuster/moodbuster/googlebooks"
	"github.com/moodbuster/moodbuster/igdb"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/spotify"
	"github.com/moodbuster/moodbuster/tasty"
	"github.com/moodbuster/moodbuster/tmdb"
	"github.com/moodbuster/moodbuster/util"
	"github.com/samber/lo"
)

const (
	TMDBImageBase = "https://image.tmdb.org/t/p/w300"
	TMDBSiteURL   = "https://www.themoviedb.org"

	// MaxCast is how many cast members a card lists.
	MaxCast = 5

	NoIngredients  = "No ingredients available."
	NoInstructions = "No instructions available."
)

// Catalog identifiers stored on each item.
const (
	CatalogTMDB        = "tmdb"
	CatalogIGDB        = "igdb"
	CatalogSpotify     = "spotify"
	CatalogTasty       = "tasty"
	CatalogGoogleBooks = "googlebooks"
)

// TMDB converts a movie or TV title. typ decides which URL kind is used.
func TMDB(t *tmdb.Title, typ media.Type) *media.Item {
	kind := tmdb.TV
	if typ == media.Movie {
		kind = tmdb.Movie
	}

	item := &media.Item{
		ID:          strconv.Itoa(t.ID),
		Type:        typ,
		Catalog:     CatalogTMDB,
		Title:       util.FirstNonEmpty(t.Title, t.Name),
		Description: t.Overview,
		ReleaseDate: util.FirstNonEmpty(t.ReleaseDate, t.FirstAirDate),
		Rating:      t.VoteAverage,
		RatingScale: 10,
		URL:         fmt.Sprintf("%s/%s/%d", TMDBSiteURL, kind, t.ID),
		Seasons:     t.NumberOfSeasons,
		Episodes:    t.NumberOfEpisodes,
	}

	if t.PosterPath != "" {
		item.ImageURL = TMDBImageBase + t.PosterPath
	}

	if len(t.Genres) > 0 {
		item.Genres = lo.Map(t.Genres, func(g tmdb.Genre, _ int) string { return g.Name })
	} else {
		item.Genres = lo.Compact(lo.Map(t.GenreIDs, func(id int, _ int) string { return mood.GenreName(id) }))
	}

	switch {
	case t.Runtime > 0:
		item.RuntimeMinutes = t.Runtime
	case len(t.EpisodeRunTime) > 0:
		item.RuntimeMinutes = t.EpisodeRunTime[0]
	}

	item.Creators = lo.Map(t.CreatedBy, func(p tmdb.Person, _ int) string { return p.Name })

	if t.Credits != nil {
		if director, ok := lo.Find(t.Credits.Crew, func(p tmdb.Person) bool { return p.Job == "Director" }); ok {
			item.Director = director.Name
		}

		cast := lo.Map(t.Credits.Cast, func(p tmdb.Person, _ int) string { return p.Name })
		item.Cast = cast[:min(len(cast), MaxCast)]
	}

	return item
}

// Game converts an IGDB game.
func Game(g *igdb.Game) *media.Item {
	item := &media.Item{
		ID:          strconv.Itoa(g.ID),
		Type:        media.Game,
		Catalog:     CatalogIGDB,
		Title:       g.Name,
		Description: g.Summary,
		URL:         g.URL,
		Rating:      g.Rating,
		RatingScale: 100,
		Genres:      names(g.Genres),
		Platforms:   names(g.Platforms),
		GameModes:   names(g.GameModes),
	}

	if g.FirstReleaseDate > 0 {
		item.ReleaseDate = time.Unix(g.FirstReleaseDate, 0).UTC().Format(time.DateOnly)
	}

	if dev, ok := lo.Find(g.InvolvedCompanies, func(c igdb.InvolvedCompany) bool { return c.Developer }); ok {
		item.Developer = dev.Company.Name
	}
	if pub, ok := lo.Find(g.InvolvedCompanies, func(c igdb.InvolvedCompany) bool { return c.Publisher }); ok {
		item.Publisher = pub.Company.Name
	}

	if g.Cover != nil && g.Cover.URL != "" {
		cover := strings.Replace(g.Cover.URL, "t_thumb", "t_cover_big", 1)
		if strings.HasPrefix(cover, "//") {
			cover = "https:" + cover
		}
		item.ImageURL = cover
	}

	return item
}

func names(named []igdb.Named) []string {
	return lo.Map(named, func(n igdb.Named, _ int) string { return n.Name })
}

// Track converts a Spotify track.
func Track(t *spotify.Track) *media.Item {
	explicit := t.Explicit()
	item := &media.Item{
		ID:         t.ID,
		Type:       media.Music,
		Catalog:    CatalogSpotify,
		Title:      t.Name,
		Artists:    t.ArtistNames(),
		Album:      t.AlbumOfTrack.Name,
		DurationMs: t.Duration.TotalMilliseconds,
		Explicit:   &explicit,
		PreviewURL: t.Previews.AudioPreview.URL,
	}

	if item.ID == "" {
		item.ID = spotify.IDFromURI(t.URI)
	}
	item.URL = spotify.OpenURL + "/track/" + item.ID

	if year := t.ReleaseYear(); year > 0 {
		item.ReleaseDate = strconv.Itoa(year)
	}

	if img := t.AlbumOfTrack.CoverArt.Largest(); img != nil {
		item.ImageURL = img.URL
	}

	return item
}

// Playlist converts a Spotify playlist.
func Playlist(p *spotify.Playlist) *media.Item {
	id := spotify.IDFromURI(p.URI)
	return &media.Item{
		ID:          id,
		Type:        media.Playlist,
		Catalog:     CatalogSpotify,
		Title:       p.Name,
		Description: p.Description,
		ImageURL:    p.FirstImage(),
		Owner:       p.Owner.Name,
		URL:         spotify.OpenURL + "/playlist/" + id,
	}
}

// Podcast converts a Spotify show.
func Podcast(p *spotify.Podcast) *media.Item {
	id := spotify.IDFromURI(p.URI)
	item := &media.Item{
		ID:        id,
		Type:      media.Podcast,
		Catalog:   CatalogSpotify,
		Title:     p.Name,
		Publisher: string(p.Publisher),
		ShowKind:  p.Type,
		MediaKind: p.MediaType,
		URL:       spotify.OpenURL + "/show/" + id,
	}

	if img := p.CoverArt.Largest(); img != nil {
		item.ImageURL = img.URL
	}

	return item
}

// Recipe converts a Tasty recipe into a Food or Drink item.
// A missing description is replaced by a sentence naming the mood.
func Recipe(r *tasty.Recipe, typ media.Type, m mood.Mood) *media.Item {
	item := &media.Item{
		ID:           strconv.Itoa(r.ID),
		Type:         typ,
		Catalog:      CatalogTasty,
		Title:        r.Name,
		Description:  r.Description,
		ImageURL:     r.ThumbnailURL,
		TotalMinutes: r.TotalTimeMinutes,
		Servings:     r.NumServings,
		Tags:         lo.Map(r.Tags, func(t tasty.Tag, _ int) string { return t.Name }),
		Ingredients:  NoIngredients,
		Instructions: NoInstructions,
	}

	if item.TotalMinutes == 0 {
		item.TotalMinutes = r.PrepTimeMinutes + r.CookTimeMinutes
	}

	if item.Description == "" {
		if typ == media.Drink {
			item.Description = fmt.Sprintf("A refreshing drink that complements your %s mood.", m)
		} else {
			item.Description = fmt.Sprintf("A delicious dish that perfectly matches your %s mood.", m)
		}
	}

	if len(r.Sections) > 0 {
		raw := lo.Compact(lo.Map(r.Sections[0].Components, func(c tasty.Component, _ int) string { return c.RawText }))
		if len(raw) > 0 {
			item.Ingredients = strings.Join(raw, ", ")
		}
	}

	steps := lo.Compact(lo.Map(r.Instructions, func(i tasty.Instruction, _ int) string { return i.DisplayText }))
	if len(steps) > 0 {
		item.Instructions = strings.Join(steps, " ")
	}

	if r.Slug != "" {
		item.URL = tasty.RecipeURL + r.Slug
	}

	return item
}

// Volume converts a Google Books volume.
func Volume(v *googlebooks.Volume) *media.Item {
	info := v.VolumeInfo
	item := &media.Item{
		ID:          v.ID,
		Type:        media.Book,
		Catalog:     CatalogGoogleBooks,
		Title:       info.Title,
		Authors:     info.Authors,
		ReleaseDate: info.PublishedDate,
		Description: info.Description,
		Categories:  info.Categories,
		Rating:      info.AverageRating,
		RatingScale: 5,
		URL:         info.InfoLink,
	}

	if info.ImageLinks != nil {
		item.ImageURL = util.FirstNonEmpty(info.ImageLinks.Thumbnail, info.ImageLinks.SmallThumbnail)
	}

	return item
}
