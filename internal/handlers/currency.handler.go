package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hftecno/treasury/internal/model"
)

type CurrencyService interface {
	Create(ctx context.Context, p model.ForeignCurrencyCreateRequest) (*model.ForeignCurrencyEntry, error)
	Get(ctx context.Context, id int64) (*model.ForeignCurrencyEntry, error)
	Update(ctx context.Context, id int64, p model.ForeignCurrencyCreateRequest) (*model.ForeignCurrencyEntry, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.ForeignCurrencyFilter) ([]*model.ForeignCurrencyEntry, int64, error)
}

type CurrencyHandler struct {
	svc CurrencyService
}

func NewCurrencyHandler(svc CurrencyService) *CurrencyHandler {
	return &CurrencyHandler{svc: svc}
}

func RegisterCurrencyRoutes(g *gin.RouterGroup, h *CurrencyHandler) {
	g.POST("/foreign-currency", h.Create)
	g.GET("/foreign-currency", h.List)
	g.GET("/foreign-currency/:id", h.Get)
	g.PUT("/foreign-currency/:id", h.Update)
	g.DELETE("/foreign-currency/:id", h.Delete)
}

func (h *CurrencyHandler) Create(c *gin.Context) {
	var req model.ForeignCurrencyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	entry, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *CurrencyHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	entry, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CurrencyHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.ForeignCurrencyCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	entry, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CurrencyHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CurrencyHandler) List(c *gin.Context) {
	var f model.ForeignCurrencyFilter
	if v := c.Query("code"); v != "" {
		f.Code = &v
	}
	f.StatusID = queryInt64Ptr(c, "status_id")
	f.From = queryTimePtr(c, "from")
	f.To = queryTimePtr(c, "to")
	f.Limit, f.Offset, f.Desc = queryPage(c)

	items, total, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[*model.ForeignCurrencyEntry]{Items: items, Total: total})
}
