// Package task implements the task listing and mutation engine.
//
// Mutation entry points accept raw form input and do their own coercion.
// Invalid input that the product treats as harmless (empty title, missing
// id, empty bulk selection) is a soft fail: the operation declines to act
// and returns nil. Store failures always propagate.
package task

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/internal/query"
	"github.com/taskdesk/backend/pkg/forms"
	"github.com/taskdesk/backend/repository"
)

// ListView names the cached rendering invalidated after each task mutation.
const ListView = "tasks"

// Page is one listing result: the filtered, ordered tasks plus the global
// (unfiltered) aggregates.
type Page struct {
	Tasks     []domain.Task `json:"tasks"`
	Total     int64         `json:"total"`
	Done      int64         `json:"done"`
	Remaining int64         `json:"remaining"`
}

type UseCase struct {
	tasks  repository.TaskRepository
	views  repository.ViewSignal
	logger *zap.Logger
}

func New(tasks repository.TaskRepository, views repository.ViewSignal, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		tasks:  tasks,
		views:  views,
		logger: logger,
	}
}

// Query returns the tasks matching params in the order given by sortKey,
// along with the global counts. Counts ignore the active filter so the UI
// can always show "N open / M done / T total". Read-only; zero matches is
// an empty page, not an error.
func (uc *UseCase) Query(ctx context.Context, params query.Params, sortKey string) (*Page, error) {
	tasks, err := uc.tasks.List(ctx, params, sortKey)
	if err != nil {
		return nil, err
	}

	counts, err := uc.tasks.Counts(ctx)
	if err != nil {
		return nil, err
	}

	remaining := counts.Total - counts.Done
	if remaining < 0 {
		remaining = 0
	}

	return &Page{
		Tasks:     tasks,
		Total:     counts.Total,
		Done:      counts.Done,
		Remaining: remaining,
	}, nil
}

// AddTask creates a task from raw form values. A title that is empty after
// trimming is a soft fail: no record, no error.
func (uc *UseCase) AddTask(ctx context.Context, title, priority, dueAt, tags string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		uc.logger.Debug("add task skipped: empty title")
		return nil
	}

	task := &domain.Task{
		Title:    title,
		Priority: forms.ParsePriority(priority),
		DueAt:    forms.ParseDueDate(dueAt),
		Tags:     forms.NormalizeTags(tags),
	}
	if err := uc.tasks.Insert(ctx, task); err != nil {
		return err
	}

	uc.invalidate(ctx)
	return nil
}

// ToggleTask flips completed for one task. The negation happens in the
// store, so two concurrent toggles cannot lose an update.
func (uc *UseCase) ToggleTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	if err := uc.tasks.Toggle(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// DeleteTask removes one task. A nonexistent id is a no-op.
func (uc *UseCase) DeleteTask(ctx context.Context, id int64) error {
	if id <= 0 {
		return nil
	}
	if err := uc.tasks.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// UpdateTitle renames a task. Soft fail when the id is missing or the title
// trims to empty.
func (uc *UseCase) UpdateTitle(ctx context.Context, rawID, title string) error {
	id := forms.ParseID(rawID)
	title = strings.TrimSpace(title)
	if id == 0 || title == "" {
		return nil
	}
	if err := uc.tasks.UpdateTitle(ctx, id, title); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// UpdateDetails overwrites priority, due date and tags wholesale. Soft fail
// when the id is missing.
func (uc *UseCase) UpdateDetails(ctx context.Context, rawID, priority, dueAt, tags string) error {
	id := forms.ParseID(rawID)
	if id == 0 {
		return nil
	}

	err := uc.tasks.UpdateDetails(ctx, id,
		forms.ParsePriority(priority),
		forms.ParseDueDate(dueAt),
		forms.NormalizeTags(tags),
	)
	if err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// BulkComplete marks the selected tasks completed in one statement.
// Duplicate and malformed id tokens are collapsed and dropped; an empty
// selection is a no-op.
func (uc *UseCase) BulkComplete(ctx context.Context, rawIDs []string) error {
	ids := forms.ParseIDs(rawIDs)
	if len(ids) == 0 {
		return nil
	}
	if err := uc.tasks.CompleteMany(ctx, ids); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// BulkDelete removes the selected tasks in one statement.
func (uc *UseCase) BulkDelete(ctx context.Context, rawIDs []string) error {
	ids := forms.ParseIDs(rawIDs)
	if len(ids) == 0 {
		return nil
	}
	if err := uc.tasks.DeleteMany(ctx, ids); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// ClearCompleted deletes every completed task, regardless of selection.
func (uc *UseCase) ClearCompleted(ctx context.Context) error {
	if err := uc.tasks.DeleteCompleted(ctx); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// ToggleAll sets completed for every task unconditionally. A missing value
// means "complete"; only the literal "true" (or absence) completes,
// anything else reopens.
func (uc *UseCase) ToggleAll(ctx context.Context, complete string) error {
	makeComplete := complete == "" || complete == "true"
	if err := uc.tasks.SetAllCompleted(ctx, makeComplete); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// invalidate signals downstream caches after a successful mutation. The
// mutation is already committed, so a failed signal is logged, not
// surfaced.
func (uc *UseCase) invalidate(ctx context.Context) {
	if uc.views == nil {
		return
	}
	if err := uc.views.Invalidate(ctx, ListView); err != nil {
		uc.logger.Warn("view invalidation failed", zap.String("view", ListView), zap.Error(err))
	}
}
