// Package inline runs one suggestion fetch without any interface, for scripts.
package inline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/media"
	"github.com/moodbuster/moodbuster/query"
	"github.com/moodbuster/moodbuster/suggest"
)

func Run(ctx context.Context, options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if options.Suggester == nil {
		options.Suggester = suggest.FromConfig()
	}

	var (
		items []*media.Item
		err   error
	)

	if g, ok := options.Genre.Get(); ok {
		items, err = options.Suggester.SuggestByGenre(ctx, options.Mood, g)
	} else {
		items, err = options.Suggester.Suggest(ctx, options.Mood, options.Type)
	}

	var noResults *suggest.NoResultsError
	switch {
	case errors.As(err, &noResults) && options.Json:
		// an empty result is still a valid answer for scripts
		items = nil
	case err != nil:
		return err
	}

	if err := query.Remember(options.Mood, 1); err != nil {
		log.Warnf("failed to remember mood: %s", err)
	}

	if picker, ok := options.Picker.Get(); ok {
		items = picker(items)
	}

	if options.Json {
		return writeJson(options.Out, items, options)
	}

	for i, item := range items {
		if i > 0 {
			fmt.Fprintln(options.Out)
		}
		writeText(options.Out, item)
	}

	return nil
}

func writeText(out io.Writer, item *media.Item) {
	fmt.Fprintln(out, item.Title)

	if item.Description != "" {
		fmt.Fprintln(out, strings.TrimSpace(item.Description))
	}

	for _, f := range item.Fields() {
		fmt.Fprintf(out, "%s: %s\n", f.Label, f.Value)
	}

	if item.URL != "" {
		fmt.Fprintf(out, "%s: %s\n", item.LinkLabel(), item.URL)
	}
}

func writeJson(out io.Writer, items []*media.Item, options *Options) error {
	data, err := asJson(items, options)
	if err != nil {
		return err
	}
	_, err = out.Write(data)
	return err
}
