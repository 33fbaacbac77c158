package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/taskdesk/backend/domain"
)

// --- fakes ---

// fakeUnitRepo mirrors the store's upsert contract: at most one unit per
// name, secondary attributes overwritten wholesale.
type fakeUnitRepo struct {
	nextID  int64
	byName  map[string]*domain.Unit
	deleted []int64
	err     error
}

func newFakeUnitRepo() *fakeUnitRepo {
	return &fakeUnitRepo{byName: make(map[string]*domain.Unit)}
}

func (f *fakeUnitRepo) List(context.Context) ([]domain.Unit, error) {
	if f.err != nil {
		return nil, f.err
	}
	var units []domain.Unit
	for _, u := range f.byName {
		units = append(units, *u)
	}
	return units, nil
}

func (f *fakeUnitRepo) UpsertByName(_ context.Context, name, abbreviation, description string) (*domain.Unit, error) {
	if f.err != nil {
		return nil, f.err
	}
	if existing, ok := f.byName[name]; ok {
		existing.Abbreviation = abbreviation
		existing.Description = description
		out := *existing
		return &out, nil
	}
	f.nextID++
	u := &domain.Unit{ID: f.nextID, Name: name, Abbreviation: abbreviation, Description: description}
	f.byName[name] = u
	out := *u
	return &out, nil
}

func (f *fakeUnitRepo) Update(_ context.Context, unit *domain.Unit) error {
	if f.err != nil {
		return f.err
	}
	for name, u := range f.byName {
		if u.ID == unit.ID {
			delete(f.byName, name)
			copied := *unit
			f.byName[unit.Name] = &copied
			return nil
		}
	}
	return domain.ErrUnitNotFound
}

func (f *fakeUnitRepo) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = append(f.deleted, id)
	for name, u := range f.byName {
		if u.ID == id {
			delete(f.byName, name)
		}
	}
	return nil
}

type fakeCategoryRepo struct {
	nextID int64
	byName map[string]*domain.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{byName: make(map[string]*domain.Category)}
}

func (f *fakeCategoryRepo) List(context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	for _, c := range f.byName {
		categories = append(categories, *c)
	}
	return categories, nil
}

func (f *fakeCategoryRepo) UpsertByName(_ context.Context, name, color, description string) (*domain.Category, error) {
	if existing, ok := f.byName[name]; ok {
		existing.Color = color
		existing.Description = description
		out := *existing
		return &out, nil
	}
	f.nextID++
	c := &domain.Category{ID: f.nextID, Name: name, Color: color, Description: description}
	f.byName[name] = c
	out := *c
	return &out, nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *domain.Category) error {
	for name, c := range f.byName {
		if c.ID == category.ID {
			delete(f.byName, name)
			copied := *category
			f.byName[category.Name] = &copied
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id int64) error {
	for name, c := range f.byName {
		if c.ID == id {
			delete(f.byName, name)
		}
	}
	return nil
}

type fakeSignal struct {
	views []string
}

func (s *fakeSignal) Invalidate(_ context.Context, view string) error {
	s.views = append(s.views, view)
	return nil
}

func newUseCase() (*UseCase, *fakeUnitRepo, *fakeCategoryRepo, *fakeSignal) {
	units := newFakeUnitRepo()
	categories := newFakeCategoryRepo()
	signal := &fakeSignal{}
	return New(units, categories, signal, nil), units, categories, signal
}

// --- tests ---

func TestSaveUnit_UpsertKeepsOneRowPerName(t *testing.T) {
	uc, units, _, _ := newUseCase()

	first, err := uc.SaveUnit(context.Background(), "Frasco", "FR", "")
	if err != nil {
		t.Fatalf("SaveUnit() err = %v", err)
	}

	second, err := uc.SaveUnit(context.Background(), "Frasco", "FRC", "frasco plástico")
	if err != nil {
		t.Fatalf("SaveUnit() err = %v", err)
	}

	if len(units.byName) != 1 {
		t.Fatalf("rows = %d, want exactly 1", len(units.byName))
	}
	if second.ID != first.ID {
		t.Errorf("second upsert created a new row: ids %d and %d", first.ID, second.ID)
	}
	got := units.byName["Frasco"]
	if got.Abbreviation != "FRC" || got.Description != "frasco plástico" {
		t.Errorf("row = %+v, want the second call's attributes", got)
	}
}

func TestSaveUnit_TrimsAndValidates(t *testing.T) {
	uc, units, _, signal := newUseCase()

	unit, err := uc.SaveUnit(context.Background(), "  Litro ", " L ", "  ")
	if err != nil {
		t.Fatalf("SaveUnit() err = %v", err)
	}
	if unit.Name != "Litro" || unit.Abbreviation != "L" || unit.Description != "" {
		t.Errorf("unit = %+v, want trimmed fields", unit)
	}
	if len(signal.views) != 1 || signal.views[0] != View {
		t.Errorf("invalidated %v, want [%s]", signal.views, View)
	}

	for _, tc := range []struct{ name, abbr string }{
		{"", "KG"},
		{"  ", "KG"},
		{"Quilo", ""},
	} {
		if _, err := uc.SaveUnit(context.Background(), tc.name, tc.abbr, ""); !domain.IsDomainError(err, domain.ErrCodeInvalid) {
			t.Errorf("SaveUnit(%q, %q) err = %v, want INVALID", tc.name, tc.abbr, err)
		}
	}
	if len(units.byName) != 1 {
		t.Errorf("rows = %d, invalid saves must not write", len(units.byName))
	}
}

func TestSaveUnit_DuplicateKeyPropagates(t *testing.T) {
	uc, units, _, signal := newUseCase()
	units.err = domain.ErrDuplicateKey

	_, err := uc.SaveUnit(context.Background(), "Caixa", "CX", "")
	if !domain.IsDomainError(err, domain.ErrCodeConflict) {
		t.Fatalf("SaveUnit() err = %v, want CONFLICT", err)
	}
	if len(signal.views) != 0 {
		t.Errorf("invalidated %v after a failed save", signal.views)
	}
}

func TestUpdateUnit_MissingIDIsNoOp(t *testing.T) {
	uc, units, _, signal := newUseCase()

	for _, rawID := range []string{"", "0", "x"} {
		if err := uc.UpdateUnit(context.Background(), rawID, "Litro", "L", ""); err != nil {
			t.Fatalf("UpdateUnit(%q) err = %v", rawID, err)
		}
	}
	if len(units.byName) != 0 || len(signal.views) != 0 {
		t.Error("update with missing id must not write")
	}
}

func TestDeleteUnit(t *testing.T) {
	uc, units, _, signal := newUseCase()
	if _, err := uc.SaveUnit(context.Background(), "Frasco", "FR", ""); err != nil {
		t.Fatalf("SaveUnit() err = %v", err)
	}

	if err := uc.DeleteUnit(context.Background(), "1"); err != nil {
		t.Fatalf("DeleteUnit() err = %v", err)
	}
	if len(units.byName) != 0 {
		t.Errorf("rows = %d, want 0 after delete", len(units.byName))
	}

	// bad ids decline silently
	if err := uc.DeleteUnit(context.Background(), "zero"); err != nil {
		t.Fatalf("DeleteUnit(bad id) err = %v", err)
	}
	if len(units.deleted) != 1 {
		t.Errorf("store deletes = %v, want just the valid id", units.deleted)
	}
	if len(signal.views) != 2 {
		t.Errorf("invalidations = %d, want 2 (save + delete)", len(signal.views))
	}
}

func TestSaveCategory_UpsertOverwritesSecondaryAttributes(t *testing.T) {
	uc, _, categories, _ := newUseCase()

	if _, err := uc.SaveCategory(context.Background(), "Limpeza", "emerald", ""); err != nil {
		t.Fatalf("SaveCategory() err = %v", err)
	}
	if _, err := uc.SaveCategory(context.Background(), "Limpeza", "#00A884", "produtos de limpeza"); err != nil {
		t.Fatalf("SaveCategory() err = %v", err)
	}

	if len(categories.byName) != 1 {
		t.Fatalf("rows = %d, want 1", len(categories.byName))
	}
	got := categories.byName["Limpeza"]
	if got.Color != "#00A884" || got.Description != "produtos de limpeza" {
		t.Errorf("row = %+v, want the second call's attributes", got)
	}
}

func TestSaveCategory_EmptyNameIsInvalid(t *testing.T) {
	uc, _, _, _ := newUseCase()

	_, err := uc.SaveCategory(context.Background(), "  ", "red", "")
	if !errors.Is(err, domain.ErrInvalidPayload) {
		t.Fatalf("SaveCategory() err = %v, want ErrInvalidPayload", err)
	}
}
