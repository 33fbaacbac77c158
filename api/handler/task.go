package handler

import (
	"net/http"
	"strconv"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskdesk/backend/internal/query"
	"github.com/taskdesk/backend/pkg/forms"
	"github.com/taskdesk/backend/pkg/httpcontext"
	taskUC "github.com/taskdesk/backend/usecase/task"
)

type TaskHandler struct {
	baseHandler
	uc *taskUC.UseCase
}

func NewTaskHandler(uc *taskUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List tasks with filters, sort and global counts
// @Tags tasks
// @Router /api/v1/tasks [get]
func (h *TaskHandler) List(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()
	params := query.Params{
		Text:      string(args.Peek("q")),
		Status:    string(args.Peek("filter")),
		Priority:  string(args.Peek("prio")),
		DueBucket: string(args.Peek("due")),
		Tag:       string(args.Peek("tag")),
		Limit:     parseInt(string(args.Peek("limit")), 0),
		Offset:    parseInt(string(args.Peek("offset")), 0),
	}
	sortKey := string(args.Peek("sort"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	page, err := h.uc.Query(stdCtx, params, sortKey)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, page)
}

// @Summary Create task
// @Tags tasks
// @Router /api/v1/tasks [post]
func (h *TaskHandler) Create(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.AddTask(stdCtx,
		formValue(ctx, "title"),
		formValue(ctx, "priority"),
		formValue(ctx, "dueAt"),
		formValue(ctx, "tags"),
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Toggle task completion
// @Tags tasks
// @Router /api/v1/tasks/{id}/toggle [post]
func (h *TaskHandler) Toggle(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.ToggleTask(stdCtx, forms.ParseID(pathID(ctx))); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Delete task
// @Tags tasks
// @Router /api/v1/tasks/{id} [delete]
func (h *TaskHandler) Delete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.DeleteTask(stdCtx, forms.ParseID(pathID(ctx))); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Rename task
// @Tags tasks
// @Router /api/v1/tasks/{id}/title [put]
func (h *TaskHandler) UpdateTitle(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.UpdateTitle(stdCtx, pathID(ctx), formValue(ctx, "title")); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Update task priority, due date and tags
// @Tags tasks
// @Router /api/v1/tasks/{id}/details [put]
func (h *TaskHandler) UpdateDetails(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	err := h.uc.UpdateDetails(stdCtx,
		pathID(ctx),
		formValue(ctx, "priority"),
		formValue(ctx, "dueAt"),
		formValue(ctx, "tags"),
	)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Complete selected tasks
// @Tags tasks
// @Router /api/v1/tasks/bulk/complete [post]
func (h *TaskHandler) BulkComplete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.BulkComplete(stdCtx, formValues(ctx, "ids")); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Delete selected tasks
// @Tags tasks
// @Router /api/v1/tasks/bulk/delete [post]
func (h *TaskHandler) BulkDelete(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.BulkDelete(stdCtx, formValues(ctx, "ids")); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Delete every completed task
// @Tags tasks
// @Router /api/v1/tasks/clear-completed [post]
func (h *TaskHandler) ClearCompleted(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.ClearCompleted(stdCtx); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

// @Summary Complete or reopen every task
// @Tags tasks
// @Router /api/v1/tasks/toggle-all [post]
func (h *TaskHandler) ToggleAll(ctx *fasthttp.RequestCtx) {
	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.ToggleAll(stdCtx, formValue(ctx, "complete")); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusNoContent, nil)
}

func parseInt(value string, fallback int) int {
	if v, err := strconv.Atoi(value); err == nil {
		return v
	}
	return fallback
}
