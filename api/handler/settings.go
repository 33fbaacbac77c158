package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdesk/backend/pkg/httpcontext"
	settingsUC "github.com/taskdesk/backend/usecase/settings"
)

type SettingsHandler struct {
	baseHandler
	uc *settingsUC.UseCase
}

func NewSettingsHandler(uc *settingsUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List units
// @Tags settings
// @Router /api/v1/settings/units [get]
func (h *SettingsHandler) ListUnits(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	units, err := h.uc.ListUnits(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, units)
}

// @Summary Upsert unit by name
// @Tags settings
// @Router /api/v1/settings/units [post]
func (h *SettingsHandler) SaveUnit(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	unit, err := h.uc.SaveUnit(stdCtx,
		formValue(ctx, "name"),
		formValue(ctx, "abbreviation"),
		formValue(ctx, "description"),
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, unit)
}

// @Summary Update unit by id
// @Tags settings
// @Router /api/v1/settings/units/{id} [put]
func (h *SettingsHandler) UpdateUnit(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.UpdateUnit(stdCtx,
		pathID(ctx),
		formValue(ctx, "name"),
		formValue(ctx, "abbreviation"),
		formValue(ctx, "description"),
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Delete unit
// @Tags settings
// @Router /api/v1/settings/units/{id} [delete]
func (h *SettingsHandler) DeleteUnit(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteUnit(stdCtx, pathID(ctx)); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary List categories
// @Tags settings
// @Router /api/v1/settings/categories [get]
func (h *SettingsHandler) ListCategories(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	categories, err := h.uc.ListCategories(stdCtx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, categories)
}

// @Summary Upsert category by name
// @Tags settings
// @Router /api/v1/settings/categories [post]
func (h *SettingsHandler) SaveCategory(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	category, err := h.uc.SaveCategory(stdCtx,
		formValue(ctx, "name"),
		formValue(ctx, "color"),
		formValue(ctx, "description"),
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, category)
}

// @Summary Update category by id
// @Tags settings
// @Router /api/v1/settings/categories/{id} [put]
func (h *SettingsHandler) UpdateCategory(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.UpdateCategory(stdCtx,
		pathID(ctx),
		formValue(ctx, "name"),
		formValue(ctx, "color"),
		formValue(ctx, "description"),
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Delete category
// @Tags settings
// @Router /api/v1/settings/categories/{id} [delete]
func (h *SettingsHandler) DeleteCategory(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteCategory(stdCtx, pathID(ctx)); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}
