package inline

import (
	"github.com/goccy/go-json"
	"github.com/moodbuster/moodbuster/media"
)

// Output is what --json prints.
type Output struct {
	Mood   string        `json:"mood"`
	Type   string        `json:"type"`
	Genre  string        `json:"genre,omitempty"`
	Result []*media.Item `json:"result"`
}

func asJson(items []*media.Item, options *Options) ([]byte, error) {
	if items == nil {
		items = []*media.Item{}
	}

	return json.Marshal(&Output{
		Mood:   options.Mood.String(),
		Type:   options.Type.String(),
		Genre:  options.Genre.OrEmpty().Name,
		Result: items,
	})
}
