package suggest

import (
	"errors"
	"fmt"
	"strings"

	"github.com/moodbuster/moodbuster/media"
)

// ErrNotConfigured is returned when the catalog for a media type lacks credentials.
var ErrNotConfigured = errors.New("catalog is not configured")

// NoResultsError means every step of a chain came back empty.
type NoResultsError struct {
	Type media.Type
}

func (e *NoResultsError) Error() string {
	return fmt.Sprintf("no %s found for the selected mood, try a different mood", e.Type.Noun())
}

// FetchError means a catalog request failed and the chain was abandoned.
type FetchError struct {
	Type media.Type
	Step string
	Err  error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("failed to fetch %s: %v", e.Type.Noun(), e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func notConfigured(catalog string, missing []string) error {
	return fmt.Errorf("%w: %s needs %s, see `moodbuster auth set`", ErrNotConfigured, catalog, strings.Join(missing, ", "))
}
