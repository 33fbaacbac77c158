// Package settings manages the reference data behind the settings page:
// measurement units and product categories, both keyed by a unique name.
//
// Saving by name is an upsert: exactly one row per name survives, with the
// secondary attributes overwritten wholesale by the latest call.
package settings

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/taskdesk/backend/domain"
	"github.com/taskdesk/backend/pkg/forms"
	"github.com/taskdesk/backend/repository"
)

// View names the cached rendering invalidated after each settings mutation.
const View = "settings"

type UseCase struct {
	units      repository.UnitRepository
	categories repository.CategoryRepository
	views      repository.ViewSignal
	logger     *zap.Logger
}

func New(units repository.UnitRepository, categories repository.CategoryRepository, views repository.ViewSignal, logger *zap.Logger) *UseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UseCase{
		units:      units,
		categories: categories,
		views:      views,
		logger:     logger,
	}
}

func (uc *UseCase) ListUnits(ctx context.Context) ([]domain.Unit, error) {
	return uc.units.List(ctx)
}

// SaveUnit upserts a unit by name. Name and abbreviation are required;
// unlike the task soft-fails, a missing required field here is a hard
// validation error.
func (uc *UseCase) SaveUnit(ctx context.Context, name, abbreviation, description string) (*domain.Unit, error) {
	name = strings.TrimSpace(name)
	abbreviation = strings.TrimSpace(abbreviation)
	if name == "" || abbreviation == "" {
		return nil, domain.ErrInvalidPayload
	}

	unit, err := uc.units.UpsertByName(ctx, name, abbreviation, strings.TrimSpace(description))
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return unit, nil
}

// UpdateUnit rewrites one unit by id. A missing id is a no-op.
func (uc *UseCase) UpdateUnit(ctx context.Context, rawID, name, abbreviation, description string) error {
	id := forms.ParseID(rawID)
	if id == 0 {
		return nil
	}
	name = strings.TrimSpace(name)
	abbreviation = strings.TrimSpace(abbreviation)
	if name == "" || abbreviation == "" {
		return domain.ErrInvalidPayload
	}

	err := uc.units.Update(ctx, &domain.Unit{
		ID:           id,
		Name:         name,
		Abbreviation: abbreviation,
		Description:  strings.TrimSpace(description),
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// DeleteUnit removes one unit. Missing id or nonexistent row is a no-op.
func (uc *UseCase) DeleteUnit(ctx context.Context, rawID string) error {
	id := forms.ParseID(rawID)
	if id == 0 {
		return nil
	}
	if err := uc.units.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *UseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.categories.List(ctx)
}

// SaveCategory upserts a category by name. Name is required; color and
// description are optional.
func (uc *UseCase) SaveCategory(ctx context.Context, name, color, description string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidPayload
	}

	category, err := uc.categories.UpsertByName(ctx, name, strings.TrimSpace(color), strings.TrimSpace(description))
	if err != nil {
		return nil, err
	}
	uc.invalidate(ctx)
	return category, nil
}

// UpdateCategory rewrites one category by id. A missing id is a no-op.
func (uc *UseCase) UpdateCategory(ctx context.Context, rawID, name, color, description string) error {
	id := forms.ParseID(rawID)
	if id == 0 {
		return nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.ErrInvalidPayload
	}

	err := uc.categories.Update(ctx, &domain.Category{
		ID:          id,
		Name:        name,
		Color:       strings.TrimSpace(color),
		Description: strings.TrimSpace(description),
	})
	if err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

// DeleteCategory removes one category. Missing id or nonexistent row is a no-op.
func (uc *UseCase) DeleteCategory(ctx context.Context, rawID string) error {
	id := forms.ParseID(rawID)
	if id == 0 {
		return nil
	}
	if err := uc.categories.Delete(ctx, id); err != nil {
		return err
	}
	uc.invalidate(ctx)
	return nil
}

func (uc *UseCase) invalidate(ctx context.Context) {
	if uc.views == nil {
		return
	}
	if err := uc.views.Invalidate(ctx, View); err != nil {
		uc.logger.Warn("view invalidation failed", zap.String("view", View), zap.Error(err))
	}
}
