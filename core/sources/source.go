package sources

import (
	"context"
	"time"

	"roster-hub/core/roster"
)

// Source is implemented once per source system. R is the raw record bundle
// the system returns.
type Source[R any] interface {
	// Name returns the unique name of the source (e.g. "sis", "lms").
	Name() string

	// Fetch retrieves raw records. It fails with ErrSourceUnavailable on
	// transport errors and ErrMalformedPayload on undecodable responses.
	Fetch(ctx context.Context) (R, error)

	// Transform maps raw records into canonical entities. It performs no I/O.
	// passTime is the reconciliation pass clock, used for synthesized data.
	Transform(raw R, passTime time.Time) roster.Entities
}

// Adapter is the type-erased view of a Source used by the reconcile pipeline.
type Adapter interface {
	Name() string
	Load(ctx context.Context, passTime time.Time) (roster.Entities, error)
}

// Bind adapts a Source into an Adapter.
func Bind[R any](s Source[R]) Adapter {
	return bound[R]{src: s}
}

type bound[R any] struct {
	src Source[R]
}

func (b bound[R]) Name() string {
	return b.src.Name()
}

func (b bound[R]) Load(ctx context.Context, passTime time.Time) (roster.Entities, error) {
	raw, err := b.src.Fetch(ctx)
	if err != nil {
		return roster.Entities{}, err
	}
	return b.src.Transform(raw, passTime), nil
}
