package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hftecno/treasury/internal/model"
)

type DueService interface {
	Create(ctx context.Context, p model.DueItemCreateRequest) (*model.DueItem, error)
	Get(ctx context.Context, id int64) (*model.DueItem, error)
	Update(ctx context.Context, id int64, p model.DueItemCreateRequest) (*model.DueItem, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.DueItemFilter) ([]*model.DueItem, int64, error)
}

type DueHandler struct {
	svc DueService
}

func NewDueHandler(svc DueService) *DueHandler {
	return &DueHandler{svc: svc}
}

func RegisterDueRoutes(g *gin.RouterGroup, h *DueHandler) {
	g.POST("/due-items", h.Create)
	g.GET("/due-items", h.List)
	g.GET("/due-items/:id", h.Get)
	g.PUT("/due-items/:id", h.Update)
	g.DELETE("/due-items/:id", h.Delete)
}

func (h *DueHandler) Create(c *gin.Context) {
	var req model.DueItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	item, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *DueHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	item, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *DueHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.DueItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	item, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *DueHandler) Delete(c *gin.Context) {
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

func (h *DueHandler) List(c *gin.Context) {
	var f model.DueItemFilter
	f.ConceptID = queryInt64Ptr(c, "concept_id")
	f.StatusID = queryInt64Ptr(c, "status_id")
	f.SituationID = queryInt64Ptr(c, "situation_id")
	f.LocationID = queryInt64Ptr(c, "location_id")
	f.DueFrom = queryTimePtr(c, "due_from")
	f.DueTo = queryTimePtr(c, "due_to")
	f.Limit, f.Offset, f.Desc = queryPage(c)

	items, total, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[*model.DueItem]{Items: items, Total: total})
}
