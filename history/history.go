// Package history keeps the suggestions a user saved for later.
package history

import (
	"time"

	"github.com/metafates/gache"
	"github.com/moodbuster/moodbuster/filesystem"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/where"
	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

var cacher = gache.New[map[string]*SavedPick](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every saved pick keyed by Key.
func Get() (map[string]*SavedPick, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedPick), nil
	}
	return cached, nil
}

// List returns saved picks newest first.
func List() ([]*SavedPick, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	picks := lo.Values(saved)
	slices.SortFunc(picks, func(a, b *SavedPick) int {
		return b.SavedAt.Compare(a.SavedAt)
	})
	return picks, nil
}

// Save stores item. Saving it again only refreshes the timestamp.
func Save(item *media.Item) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	pick := &SavedPick{Item: item, SavedAt: time.Now()}
	saved[pick.encode()] = pick

	return cacher.Set(saved)
}

// Has reports whether item was saved.
func Has(item *media.Item) bool {
	saved, err := Get()
	if err != nil {
		return false
	}
	_, ok := saved[Key(item)]
	return ok
}

// Remove deletes a saved pick.
func Remove(pick *SavedPick) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, pick.encode())
	return cacher.Set(saved)
}
