package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hftecno/treasury/internal/admin"
)

type MetaHandler struct{}

func NewMetaHandler() *MetaHandler {
	return &MetaHandler{}
}

// RegisterMetaRoutes exposes the presentation descriptors the admin UI renders
// its generated list and edit views from.
func RegisterMetaRoutes(g *gin.RouterGroup, h *MetaHandler) {
	g.GET("/meta", h.List)
	g.GET("/meta/:entity", h.Get)
}

func (h *MetaHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, admin.Descriptors)
}

func (h *MetaHandler) Get(c *gin.Context) {
	d := admin.Find(c.Param("entity"))
	if d == nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "unknown entity"})
		return
	}
	c.JSON(http.StatusOK, d)
}
