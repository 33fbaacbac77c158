package repository

import "context"

// ViewSignal notifies downstream consumers that a cached rendering of a
// view (the task listing, the settings tables) is stale. Implementations
// must be safe to call after every successful mutation.
type ViewSignal interface {
	Invalidate(ctx context.Context, view string) error
}
