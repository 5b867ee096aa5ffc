// Package entity exposes one collection over HTTP. The same handler
// serves all nine entity kinds; only the type parameter, the field
// schema and the optional reference expansion differ per registration.
package entity

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/clinicore/admin-api/internal/adapter"
	"github.com/clinicore/admin-api/internal/handler"
	"github.com/clinicore/admin-api/internal/page"
	"github.com/clinicore/admin-api/internal/schema"
	"github.com/clinicore/admin-api/internal/store"
	apperrors "github.com/clinicore/admin-api/pkg/errors"
)

// Expander decorates a raw record with resolved display fields, e.g.
// patient_name next to patient_id.
type Expander func(c *gin.Context, rec store.Record) store.Record

type Handler[T any] struct {
	name    string
	adapter *adapter.Adapter[T]
	entity  schema.Entity
	expand  Expander
}

func NewHandler[T any](name string, a *adapter.Adapter[T], entity schema.Entity) *Handler[T] {
	return &Handler[T]{name: name, adapter: a, entity: entity}
}

// WithExpander enables ?expand=true on the list endpoint.
func (h *Handler[T]) WithExpander(fn Expander) *Handler[T] {
	h.expand = fn
	return h
}

func (h *Handler[T]) RegisterRoutes(rg *gin.RouterGroup) {
	g := rg.Group("/" + h.name)
	{
		g.GET("", h.List)
		g.GET("/schema", h.Schema)
		g.POST("", h.Create)
		g.PUT("/:id", h.Update)
		g.DELETE("/:id", h.Delete)
	}
}

// List renders the adapter snapshot: search-filtered, paginated, with
// the loading and error flags surfaced as distinct fields so a client
// never mistakes stale data for fresh.
func (h *Handler[T]) List(c *gin.Context) {
	search := c.Query("search")
	pageNum, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(page.DefaultPageSize)))

	st := h.adapter.State()
	filtered := page.Filter(st.Records, search)
	view := page.Paginate(filtered, pageNum, pageSize)

	var errMsg string
	if st.Err != nil {
		errMsg = st.Err.Error()
	}

	data := gin.H{
		"records":     h.render(c, view.Items),
		"page":        view.Page,
		"page_size":   view.PageSize,
		"total_pages": view.TotalPages,
		"total":       view.Total,
		"loading":     st.Loading,
		"error":       errMsg,
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(data))
}

// Schema serves the field and column definitions driving the form
// dialog and table layout.
func (h *Handler[T]) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, handler.NewSuccessResponse(h.entity))
}

func (h *Handler[T]) Create(c *gin.Context) {
	fields, ok := h.bindForm(c)
	if !ok {
		return
	}

	id, err := h.adapter.Create(c.Request.Context(), fields)
	if err != nil {
		c.JSON(statusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, handler.NewSuccessResponse(gin.H{"id": id}))
}

func (h *Handler[T]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	fields, ok := h.bindForm(c)
	if !ok {
		return
	}

	if err := h.adapter.Update(c.Request.Context(), id, fields); err != nil {
		c.JSON(statusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"id": id}))
}

// Delete requires confirm=true, the explicit confirmation step the
// dialog used to provide. Deleting an absent id still succeeds.
func (h *Handler[T]) Delete(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("deletion requires confirm=true"))
		return
	}

	if err := h.adapter.Delete(c.Request.Context(), id); err != nil {
		c.JSON(statusOf(err), handler.NewErrorResponse(err.Error()))
		return
	}
	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{"id": id}))
}

// bindForm runs the submitted body through the form dialog semantics:
// every field lands in a draft validated against the field schema, and
// the complete draft is what gets persisted.
func (h *Handler[T]) bindForm(c *gin.Context) (store.Record, bool) {
	var body store.Record
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return nil, false
	}

	form := schema.NewForm(h.entity, nil)
	for name, value := range body {
		if err := form.Set(name, value); err != nil {
			c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
			return nil, false
		}
	}
	fields, err := form.Submit()
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse(err.Error()))
		return nil, false
	}
	delete(fields, "id")
	return fields, true
}

func (h *Handler[T]) parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, handler.NewErrorResponse("invalid id"))
		return 0, false
	}
	return id, true
}

func (h *Handler[T]) render(c *gin.Context, items []T) interface{} {
	if h.expand == nil || c.Query("expand") != "true" {
		return items
	}
	out := make([]store.Record, 0, len(items))
	for _, item := range items {
		rec, err := store.Encode(item)
		if err != nil {
			continue
		}
		out = append(out, h.expand(c, rec))
	}
	return out
}

func statusOf(err error) int {
	switch {
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsDuplicateKey(err):
		return http.StatusConflict
	case apperrors.IsStoreUnavailable(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
