package repository

import (
	"context"

	"github.com/taskdesk/backend/domain"
)

// UnitRepository manages measurement units keyed by their natural name.
//
// UpsertByName is atomic against concurrent callers: implementations use the
// store's native insert-or-update-on-conflict primitive, not a lookup
// followed by a separate write.
type UnitRepository interface {
	List(ctx context.Context) ([]domain.Unit, error)
	UpsertByName(ctx context.Context, name, abbreviation, description string) (*domain.Unit, error)
	Update(ctx context.Context, unit *domain.Unit) error
	Delete(ctx context.Context, id int64) error
}

// CategoryRepository manages product categories keyed by their natural name.
type CategoryRepository interface {
	List(ctx context.Context) ([]domain.Category, error)
	UpsertByName(ctx context.Context, name, color, description string) (*domain.Category, error)
	Update(ctx context.Context, category *domain.Category) error
	Delete(ctx context.Context, id int64) error
}
