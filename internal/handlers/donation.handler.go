package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hftecno/treasury/internal/model"
)

type DonationService interface {
	Create(ctx context.Context, p model.DonationCreateRequest) (*model.DonationEntry, error)
	Get(ctx context.Context, id int64) (*model.DonationEntry, error)
	Update(ctx context.Context, id int64, p model.DonationCreateRequest) (*model.DonationEntry, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.DonationFilter) ([]*model.DonationEntry, int64, error)
}

type DonationHandler struct {
	svc DonationService
}

func NewDonationHandler(svc DonationService) *DonationHandler {
	return &DonationHandler{svc: svc}
}

func RegisterDonationRoutes(g *gin.RouterGroup, h *DonationHandler) {
	g.POST("/donations", h.Create)
	g.GET("/donations", h.List)
	g.GET("/donations/:id", h.Get)
	g.PUT("/donations/:id", h.Update)
	g.DELETE("/donations/:id", h.Delete)
}

func (h *DonationHandler) Create(c *gin.Context) {
	var req model.DonationCreateRequest
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

func (h *DonationHandler) Get(c *gin.Context) {
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

func (h *DonationHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.DonationCreateRequest
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

func (h *DonationHandler) Delete(c *gin.Context) {
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

func (h *DonationHandler) List(c *gin.Context) {
	var f model.DonationFilter
	f.WithdrawalRoleID = queryInt64Ptr(c, "withdrawal_role_id")
	f.DeliveredToID = queryInt64Ptr(c, "delivered_to_id")
	f.From = queryTimePtr(c, "from")
	f.To = queryTimePtr(c, "to")
	f.Limit, f.Offset, f.Desc = queryPage(c)

	items, total, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[*model.DonationEntry]{Items: items, Total: total})
}
