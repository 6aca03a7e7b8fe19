package suggest

import (
	"context"

	"github.com/moodbuster/moodbuster/log"
	"github.com/moodbuster/moodbuster/media"
)

// step is one query in a fallback chain.
type step[T any] struct {
	name string
	run  func(ctx context.Context) ([]T, error)
}

// runChain runs steps in order and returns the first non-empty answer.
// An error aborts the chain at once; an empty answer moves on to the next step.
func runChain[T any](ctx context.Context, typ media.Type, steps []step[T]) ([]T, error) {
	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, &FetchError{Type: typ, Step: s.name, Err: err}
		}

		results, err := s.run(ctx)
		if err != nil {
			log.With(log.Fields{"type": typ, "step": s.name}).Errorf("fetch failed: %v", err)
			return nil, &FetchError{Type: typ, Step: s.name, Err: err}
		}

		if len(results) > 0 {
			log.With(log.Fields{"type": typ, "step": s.name, "results": len(results)}).Info("fetched suggestions")
			return results, nil
		}

		if i < len(steps)-1 {
			log.With(log.Fields{"type": typ, "step": s.name, "next": steps[i+1].name}).Info("no results, falling back")
		}
	}

	return nil, &NoResultsError{Type: typ}
}
