// Package mood holds the mood vocabulary and the tables that translate a
// mood into catalog queries.
package mood

import (
	"fmt"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

type Mood string

const (
	Cozy          Mood = "Cozy and Comforting"
	Adventure     Mood = "Adventure Craving"
	Heartwarming  Mood = "Heartwarming and Uplifting"
	Intellectual  Mood = "Intellectually Stimulating"
	Nostalgic     Mood = "Nostalgic and Sentimental"
	LaughOutLoud  Mood = "Laugh Out Loud"
	EdgeOfSeat    Mood = "Edge of Your Seat"
	Mysterious    Mood = "Mysteriously Intrigued"
	FeelGood      Mood = "Feel-Good Escape"
	Romantic      Mood = "Romantic and Dreamy"
	Epic          Mood = "Epic and Grandiose"
	Reflective    Mood = "Deep and Reflective"
	Playful       Mood = "Playful and Fun"
	ThrillSeeker  Mood = "Thrill Seeker"
	Inspirational Mood = "Inspirational and Motivating"
	Relaxed       Mood = "Relaxed and Chill"
	Imaginative   Mood = "Imaginative and Fantastical"
	Somber        Mood = "Somber and Thought-Provoking"
	Lighthearted  Mood = "Lighthearted and Breezy"
	MindBending   Mood = "Mind-Bending and Twisty"
)

var moods = []Mood{
	Cozy, Adventure, Heartwarming, Intellectual, Nostalgic,
	LaughOutLoud, EdgeOfSeat, Mysterious, FeelGood, Romantic,
	Epic, Reflective, Playful, ThrillSeeker, Inspirational,
	Relaxed, Imaginative, Somber, Lighthearted, MindBending,
}

// All returns the moods in menu order.
func All() []Mood {
	return append([]Mood(nil), moods...)
}

func (m Mood) String() string {
	return string(m)
}

// Strings returns the labels of All.
func Strings() []string {
	return lo.Map(moods, func(m Mood, _ int) string { return m.String() })
}

// Parse matches a mood label, ignoring case and surrounding space.
func Parse(s string) (Mood, bool) {
	s = strings.TrimSpace(s)
	return lo.Find(moods, func(m Mood) bool {
		return strings.EqualFold(string(m), s)
	})
}

// Resolve is Parse with fuzzy matching on top, so "cozy" or "mind bending"
// find their mood. Ambiguous input picks the closest label by edit distance.
func Resolve(s string) (Mood, error) {
	if m, ok := Parse(s); ok {
		return m, nil
	}

	query := normalize(s)
	if query == "" {
		return "", fmt.Errorf("mood is required")
	}

	labels := lo.Map(moods, func(m Mood, _ int) string { return normalize(m.String()) })
	ranks := fuzzy.RankFindNormalizedFold(query, labels)
	if len(ranks) == 0 {
		// the query might be a typo of a single word
		closest := lo.MinBy(moods, func(a, b Mood) bool {
			return distance(query, a) < distance(query, b)
		})
		return "", fmt.Errorf("unknown mood %q, did you mean %q?", s, closest)
	}

	slices.SortStableFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		return levenshtein.Distance(query, a.Target) - levenshtein.Distance(query, b.Target)
	})

	return moods[ranks[0].OriginalIndex], nil
}

// distance is the smallest edit distance between query and any word or the
// whole label of m.
func distance(query string, m Mood) int {
	label := normalize(m.String())
	best := levenshtein.Distance(query, label)
	for _, word := range strings.Fields(label) {
		best = min(best, levenshtein.Distance(query, word))
	}
	return best
}

func normalize(s string) string {
	s = strings.ToLower(strings.ReplaceAll(s, "-", " "))
	return strings.Join(strings.Fields(s), " ")
}
