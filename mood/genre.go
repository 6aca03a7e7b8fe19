package mood

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Genre is a TMDB movie genre.
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var genres = []Genre{
	{28, "Action"},
	{12, "Adventure"},
	{16, "Animation"},
	{35, "Comedy"},
	{80, "Crime"},
	{99, "Documentary"},
	{18, "Drama"},
	{10751, "Family"},
	{14, "Fantasy"},
	{36, "History"},
	{27, "Horror"},
	{10402, "Music"},
	{9648, "Mystery"},
	{10749, "Romance"},
	{878, "Science Fiction"},
	{10770, "TV Movie"},
	{53, "Thriller"},
	{10752, "War"},
	{37, "Western"},
}

// Genres returns the genre table in menu order.
func Genres() []Genre {
	return append([]Genre(nil), genres...)
}

// GenreName names a genre id, or returns "" if it is not in the table.
func GenreName(id int) string {
	g, _ := lo.Find(genres, func(g Genre) bool { return g.ID == id })
	return g.Name
}

// ParseGenre accepts a genre name (any case) or its numeric id.
func ParseGenre(s string) (Genre, error) {
	s = strings.TrimSpace(s)

	if id, err := strconv.Atoi(s); err == nil {
		if g, ok := lo.Find(genres, func(g Genre) bool { return g.ID == id }); ok {
			return g, nil
		}
		return Genre{}, fmt.Errorf("unknown genre id %d", id)
	}

	if g, ok := lo.Find(genres, func(g Genre) bool { return strings.EqualFold(g.Name, s) }); ok {
		return g, nil
	}

	return Genre{}, fmt.Errorf("unknown genre %q", s)
}
