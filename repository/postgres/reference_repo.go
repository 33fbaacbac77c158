package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/repository"
)

// upsertByNameSQL builds the atomic insert-or-update statement for a
// reference table keyed by a unique name. The single statement replaces the
// original lookup-then-act sequence, so concurrent upserts for the same
// brand-new name cannot both insert.
func upsertByNameSQL(table string, attrCols []string) string {
	cols := append([]string{"name"}, attrCols...)

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	sets := make([]string, 0, len(attrCols)+1)
	for _, col := range attrCols {
		sets = append(sets, fmt.Sprintf("%s = EXCLUDED.%s", col, col))
	}
	sets = append(sets, "updated_at = now()")

	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s) ON CONFLICT (name) DO UPDATE SET %s RETURNING id, %s, created_at, updated_at",
		table,
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "),
		strings.Join(sets, ", "),
		strings.Join(cols, ", "),
	)
}

// mapWriteError classifies reference-table write failures. A unique
// violation reaching here hit a key other than the upsert's conflict target
// (e.g. a unit abbreviation already taken by another row).
func mapWriteError(err error, notFound *domain.Error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return notFound
	case isUniqueViolation(err):
		return domain.WrapError(domain.ErrCodeConflict, "duplicate key", err)
	default:
		return err
	}
}

type unitRepository struct {
	pool *pgxpool.Pool
}

// NewUnitRepository returns a Postgres-backed implementation of UnitRepository.
func NewUnitRepository(pool *pgxpool.Pool) repository.UnitRepository {
	return &unitRepository{pool: pool}
}

var unitUpsertSQL = upsertByNameSQL("units", []string{"abbreviation", "description"})

func (r *unitRepository) List(ctx context.Context) ([]domain.Unit, error) {
	const sql = `
	SELECT id, name, abbreviation, description, created_at, updated_at
	FROM units
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []domain.Unit
	for rows.Next() {
		var (
			u    domain.Unit
			desc *string
		)
		if err := rows.Scan(&u.ID, &u.Name, &u.Abbreviation, &desc, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		if desc != nil {
			u.Description = *desc
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *unitRepository) UpsertByName(ctx context.Context, name, abbreviation, description string) (*domain.Unit, error) {
	var (
		u    domain.Unit
		desc *string
	)
	err := r.pool.QueryRow(ctx, unitUpsertSQL,
		name, abbreviation, nullString(description),
	).Scan(&u.ID, &u.Name, &u.Abbreviation, &desc, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, mapWriteError(err, domain.ErrUnitNotFound)
	}
	if desc != nil {
		u.Description = *desc
	}
	return &u, nil
}

func (r *unitRepository) Update(ctx context.Context, unit *domain.Unit) error {
	if unit == nil {
		return domain.ErrInvalidPayload
	}

	const sql = `
	UPDATE units
	SET name = $2,
		abbreviation = $3,
		description = $4,
		updated_at = now()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, sql,
		unit.ID, unit.Name, unit.Abbreviation, nullString(unit.Description),
	).Scan(&unit.UpdatedAt)
	return mapWriteError(err, domain.ErrUnitNotFound)
}

func (r *unitRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM units WHERE id = $1`, id)
	return err
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository returns a Postgres-backed implementation of CategoryRepository.
func NewCategoryRepository(pool *pgxpool.Pool) repository.CategoryRepository {
	return &categoryRepository{pool: pool}
}

var categoryUpsertSQL = upsertByNameSQL("product_categories", []string{"color", "description"})

func (r *categoryRepository) List(ctx context.Context) ([]domain.Category, error) {
	const sql = `
	SELECT id, name, color, description, created_at, updated_at
	FROM product_categories
	ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) UpsertByName(ctx context.Context, name, color, description string) (*domain.Category, error) {
	row := r.pool.QueryRow(ctx, categoryUpsertSQL,
		name, nullString(color), nullString(description),
	)
	c, err := scanCategory(row)
	if err != nil {
		return nil, mapWriteError(err, domain.ErrCategoryNotFound)
	}
	return c, nil
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if category == nil {
		return domain.ErrInvalidPayload
	}

	const sql = `
	UPDATE product_categories
	SET name = $2,
		color = $3,
		description = $4,
		updated_at = now()
	WHERE id = $1
	RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, sql,
		category.ID, category.Name, nullString(category.Color), nullString(category.Description),
	).Scan(&category.UpdatedAt)
	return mapWriteError(err, domain.ErrCategoryNotFound)
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM product_categories WHERE id = $1`, id)
	return err
}

func scanCategory(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Category, error) {
	var (
		c           domain.Category
		color, desc *string
	)
	if err := row.Scan(&c.ID, &c.Name, &color, &desc, &c.CreatedAt, &c.UpdatedAt); err != nil {
		return nil, err
	}
	if color != nil {
		c.Color = *color
	}
	if desc != nil {
		c.Description = *desc
	}
	return &c, nil
}
