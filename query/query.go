// Package query remembers which moods a user picks so menus can offer them first.
package query

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/moodbuster/moodbuster/filesystem"
	"github.com/moodbuster/moodbuster/key"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var suggestionCache = make(map[string][]*queryRecord)

// Remember bumps the rank of mood m by weight.
func Remember(m mood.Mood, weight int) error {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	k := sanitize(m.String())
	if record, ok := cached[k]; ok {
		record.Rank += weight
	} else {
		cached[k] = &queryRecord{Rank: weight, Query: m.String()}
	}

	clear(suggestionCache)
	return cacher.Set(cached)
}

// Suggest returns the highest ranked remembered mood matching q.
func Suggest(q string) mo.Option[mood.Mood] {
	suggestions := SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[mood.Mood]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered moods fuzzily matching q, highest rank first.
func SuggestMany(q string) []mood.Mood {
	if !viper.GetBool(key.MoodsShowSuggestions) {
		return []mood.Mood{}
	}

	q = sanitize(q)
	var records []*queryRecord

	if prev, ok := suggestionCache[q]; ok {
		records = prev
	} else {
		cached, expired, err := cacher.Get()
		if err != nil || expired || cached == nil {
			return []mood.Mood{}
		}

		for _, record := range cached {
			if fuzzy.MatchFold(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		suggestionCache[q] = records
	}

	return lo.FilterMap(records, func(r *queryRecord, _ int) (mood.Mood, bool) {
		return mood.Parse(r.Query)
	})
}

// Ranked reorders moods so remembered ones come first, most picked first.
// The rest keep their order.
func Ranked(moods []mood.Mood) []mood.Mood {
	remembered := lo.Filter(SuggestMany(""), func(m mood.Mood, _ int) bool {
		return lo.Contains(moods, m)
	})
	return append(remembered, lo.Without(moods, remembered...)...)
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
