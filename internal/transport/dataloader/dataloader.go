// Package dataloader provides per-request DataLoaders that batch lookups
// made while rendering a response into single SQL calls. Loaders call
// repositories directly; callers are responsible for authorization.
package dataloader

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/pentest-stories/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type profileRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error)
}

// Repos holds the repositories required by the loaders.
type Repos struct {
	Profiles profileRepo
}

// Loaders is created per request via NewLoaders.
type Loaders struct {
	// ProfileByID resolves audit actors. Unknown IDs resolve to nil.
	ProfileByID *dataloader.Loader[uuid.UUID, *domain.Profile]
}

// NewLoaders must be called per request; loaders cache within one request.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		ProfileByID: newLoader(newProfilesBatchFn(repos.Profiles)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext returns the request's Loaders, or nil when the middleware
// is not installed on the route.
func FromContext(ctx context.Context) *Loaders {
	l, _ := ctx.Value(loadersKey).(*Loaders)
	return l
}
