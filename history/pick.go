package history

import (
	"fmt"
	"time"

	"github.com/moodbuster/moodbuster/media"
)

// SavedPick is a suggestion the user kept.
type SavedPick struct {
	Item    *media.Item `json:"item"`
	SavedAt time.Time   `json:"saved_at"`
}

func (s *SavedPick) encode() string {
	return Key(s.Item)
}

func (s *SavedPick) String() string {
	return fmt.Sprintf("%s (%s)", s.Item.Title, s.Item.Type)
}

// Key identifies an item across saves.
func Key(item *media.Item) string {
	return fmt.Sprintf("%s/%s/%s", item.Type, item.Catalog, item.ID)
}
