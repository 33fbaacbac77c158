package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/internal/query"
	"github.com/taskdesk/backend/repository"
)

type taskRepository struct {
	pool *pgxpool.Pool
}

// NewTaskRepository returns a Postgres-backed implementation of TaskRepository.
func NewTaskRepository(pool *pgxpool.Pool) repository.TaskRepository {
	return &taskRepository{pool: pool}
}

const taskColumns = "id, title, completed, priority, due_at, tags, created_at, updated_at"

func (r *taskRepository) List(ctx context.Context, params query.Params, sortKey string) ([]domain.Task, error) {
	where, args := query.Compile(params).Where(1)

	sql := fmt.Sprintf(
		"SELECT %s FROM tasks WHERE %s ORDER BY %s",
		taskColumns, where, query.ResolveSort(sortKey),
	)
	if params.Limit > 0 {
		args = append(args, params.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if params.Offset > 0 {
		args = append(args, params.Offset)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *taskRepository) Counts(ctx context.Context) (repository.TaskCounts, error) {
	const sql = `
	SELECT count(*), count(*) FILTER (WHERE completed)
	FROM tasks
	`
	var counts repository.TaskCounts
	if err := r.pool.QueryRow(ctx, sql).Scan(&counts.Total, &counts.Done); err != nil {
		return repository.TaskCounts{}, err
	}
	return counts, nil
}

func (r *taskRepository) Insert(ctx context.Context, task *domain.Task) error {
	if task == nil {
		return domain.ErrInvalidPayload
	}

	const sql = `
	INSERT INTO tasks (title, completed, priority, due_at, tags)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, sql,
		task.Title,
		task.Completed,
		task.Priority,
		nullTime(task.DueAt),
		nullString(task.Tags),
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
}

func (r *taskRepository) Toggle(ctx context.Context, id int64) error {
	const sql = `
	UPDATE tasks
	SET completed = NOT completed,
		updated_at = now()
	WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, sql, id)
	return err
}

func (r *taskRepository) Delete(ctx context.Context, id int64) error {
	// Deleting a row that no longer exists is a no-op.
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	return err
}

func (r *taskRepository) UpdateTitle(ctx context.Context, id int64, title string) error {
	const sql = `
	UPDATE tasks
	SET title = $2,
		updated_at = now()
	WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, sql, id, title)
	return err
}

func (r *taskRepository) UpdateDetails(ctx context.Context, id int64, priority domain.Priority, dueAt *time.Time, tags string) error {
	const sql = `
	UPDATE tasks
	SET priority = $2,
		due_at = $3,
		tags = $4,
		updated_at = now()
	WHERE id = $1
	`
	_, err := r.pool.Exec(ctx, sql, id, priority, nullTime(dueAt), nullString(tags))
	return err
}

func (r *taskRepository) CompleteMany(ctx context.Context, ids []int64) error {
	const sql = `
	UPDATE tasks
	SET completed = TRUE,
		updated_at = now()
	WHERE id = ANY($1)
	`
	_, err := r.pool.Exec(ctx, sql, ids)
	return err
}

func (r *taskRepository) DeleteMany(ctx context.Context, ids []int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE id = ANY($1)`, ids)
	return err
}

func (r *taskRepository) DeleteCompleted(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM tasks WHERE completed = TRUE`)
	return err
}

func (r *taskRepository) SetAllCompleted(ctx context.Context, completed bool) error {
	const sql = `
	UPDATE tasks
	SET completed = $1,
		updated_at = now()
	`
	_, err := r.pool.Exec(ctx, sql, completed)
	return err
}

func scanTask(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Task, error) {
	var (
		task domain.Task
		due  *time.Time
		tags *string
	)
	if err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Completed,
		&task.Priority,
		&due,
		&tags,
		&task.CreatedAt,
		&task.UpdatedAt,
	); err != nil {
		return nil, err
	}

	task.DueAt = due
	if tags != nil {
		task.Tags = *tags
	}
	return &task, nil
}
