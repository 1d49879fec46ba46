package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hftecno/treasury/internal/model"
)

type CatalogService interface {
	Create(ctx context.Context, kind model.CatalogKind, p model.CatalogCreateRequest) (*model.CatalogEntry, error)
	Get(ctx context.Context, kind model.CatalogKind, id int64) (*model.CatalogEntry, error)
	List(ctx context.Context, kind model.CatalogKind) ([]*model.CatalogEntry, error)
	Update(ctx context.Context, kind model.CatalogKind, id int64, p model.CatalogCreateRequest) (*model.CatalogEntry, error)
	Delete(ctx context.Context, kind model.CatalogKind, id int64) error
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// RegisterCatalogRoutes mounts one CRUD surface per lookup table under
// /catalogs/:kind, the kind segment being the catalog identifier.
func RegisterCatalogRoutes(g *gin.RouterGroup, h *CatalogHandler) {
	g.POST("/catalogs/:kind", h.Create)
	g.GET("/catalogs/:kind", h.List)
	g.GET("/catalogs/:kind/:id", h.Get)
	g.PUT("/catalogs/:kind/:id", h.Update)
	g.DELETE("/catalogs/:kind/:id", h.Delete)
}

func catalogKind(c *gin.Context) model.CatalogKind {
	return model.CatalogKind(c.Param("kind"))
}

func (h *CatalogHandler) Create(c *gin.Context) {
	var req model.CatalogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	entry, err := h.svc.Create(c.Request.Context(), catalogKind(c), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *CatalogHandler) List(c *gin.Context) {
	entries, err := h.svc.List(c.Request.Context(), catalogKind(c))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[*model.CatalogEntry]{Items: entries, Total: int64(len(entries))})
}

func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	entry, err := h.svc.Get(c.Request.Context(), catalogKind(c), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CatalogHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.CatalogCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	entry, err := h.svc.Update(c.Request.Context(), catalogKind(c), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), catalogKind(c), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
