package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/mood"
	"github.com/moodbuster/moodbuster/suggest"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Picker narrows the fetched suggestions down to the ones printed.
type Picker func([]*media.Item) []*media.Item

type Options struct {
	Out       io.Writer
	Suggester *suggest.Suggester
	Json      bool
	Mood      mood.Mood
	Type      media.Type
	Genre     mo.Option[mood.Genre]
	Picker    mo.Option[Picker]
}

// ParsePicker understands "first", "last", "random", "all",
// an index like "3" and a range like "0-4".
func ParsePicker(description string) (Picker, error) {
	switch description {
	case "first":
		return func(items []*media.Item) []*media.Item {
			return lo.Subset(items, 0, 1)
		}, nil
	case "last":
		return func(items []*media.Item) []*media.Item {
			return lo.Subset(items, -1, 1)
		}, nil
	case "random":
		return func(items []*media.Item) []*media.Item {
			if len(items) == 0 {
				return items
			}
			return []*media.Item{lo.Sample(items)}
		}, nil
	case "all", "":
		return func(items []*media.Item) []*media.Item {
			return items
		}, nil
	}

	if from, to, ok := strings.Cut(description, "-"); ok {
		start, err1 := strconv.ParseUint(from, 10, 16)
		end, err2 := strconv.ParseUint(to, 10, 16)
		if err1 != nil || err2 != nil || start > end {
			return nil, fmt.Errorf("invalid range: %s", description)
		}
		return func(items []*media.Item) []*media.Item {
			return lo.Subset(items, int(start), uint(end-start+1))
		}, nil
	}

	idx, err := strconv.ParseUint(description, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("unknown picker: %s", description)
	}

	return func(items []*media.Item) []*media.Item {
		return lo.Subset(items, int(idx), 1)
	}, nil
}
