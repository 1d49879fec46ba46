package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hftecno/treasury/internal/model"
)

type MembershipService interface {
	Create(ctx context.Context, p model.MembershipFeeCreateRequest) (*model.MembershipFeeRecord, error)
	Get(ctx context.Context, id int64) (*model.MembershipFeeRecord, error)
	Update(ctx context.Context, id int64, p model.MembershipFeeCreateRequest) (*model.MembershipFeeRecord, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.MembershipFeeFilter) ([]*model.MembershipFeeRecord, int64, error)
}

type MembershipHandler struct {
	svc MembershipService
}

func NewMembershipHandler(svc MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

func RegisterMembershipRoutes(g *gin.RouterGroup, h *MembershipHandler) {
	g.POST("/membership-fees", h.Create)
	g.GET("/membership-fees", h.List)
	g.GET("/membership-fees/:id", h.Get)
	g.PUT("/membership-fees/:id", h.Update)
	g.DELETE("/membership-fees/:id", h.Delete)
}

func (h *MembershipHandler) Create(c *gin.Context) {
	var req model.MembershipFeeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	rec, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (h *MembershipHandler) Get(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	rec, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *MembershipHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.MembershipFeeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	rec, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *MembershipHandler) Delete(c *gin.Context) {
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

func (h *MembershipHandler) List(c *gin.Context) {
	var f model.MembershipFeeFilter
	if v := c.Query("assignee_name"); v != "" {
		f.AssigneeName = &v
	}
	f.Month = queryIntPtr(c, "month")
	f.Year = queryIntPtr(c, "year")
	f.Limit, f.Offset, f.Desc = queryPage(c)

	items, total, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[*model.MembershipFeeRecord]{Items: items, Total: total})
}
