package repository

import (
	"context"
	"time"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/internal/query"
)

// TaskCounts are the unfiltered aggregates shown beside every listing.
type TaskCounts struct {
	Total int64
	Done  int64
}

// TaskRepository is the row-store contract for tasks. Mutations that the
// engine requires to be atomic are single statements in every
// implementation, never read-then-write loops.
type TaskRepository interface {
	List(ctx context.Context, params query.Params, sortKey string) ([]domain.Task, error)
	Counts(ctx context.Context) (TaskCounts, error)

	Insert(ctx context.Context, task *domain.Task) error
	// Toggle flips completed in the store itself (completed = NOT completed)
	// so concurrent toggles cannot lose updates.
	Toggle(ctx context.Context, id int64) error
	Delete(ctx context.Context, id int64) error
	UpdateTitle(ctx context.Context, id int64, title string) error
	UpdateDetails(ctx context.Context, id int64, priority domain.Priority, dueAt *time.Time, tags string) error

	CompleteMany(ctx context.Context, ids []int64) error
	DeleteMany(ctx context.Context, ids []int64) error
	DeleteCompleted(ctx context.Context) error
	SetAllCompleted(ctx context.Context, completed bool) error
}
