package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hftecno/treasury/internal/model"
)

type LedgerService interface {
	CreateCashEntry(ctx context.Context, p model.CashLedgerCreateRequest) (*model.CashLedgerEntry, error)
	GetCashEntry(ctx context.Context, id int64) (*model.CashLedgerEntry, error)
	UpdateCashEntry(ctx context.Context, id int64, p model.CashLedgerCreateRequest) (*model.CashLedgerEntry, error)
	DeleteCashEntry(ctx context.Context, id int64) error
	ListCashEntries(ctx context.Context, f model.CashLedgerFilter) ([]*model.CashLedgerEntry, int64, error)

	CreateProviderEntry(ctx context.Context, p model.PaymentProviderCreateRequest) (*model.PaymentProviderEntry, error)
	GetProviderEntry(ctx context.Context, id int64) (*model.PaymentProviderEntry, error)
	UpdateProviderEntry(ctx context.Context, id int64, p model.PaymentProviderCreateRequest) (*model.PaymentProviderEntry, error)
	DeleteProviderEntry(ctx context.Context, id int64) error
	ListProviderEntries(ctx context.Context, f model.PaymentProviderFilter) ([]*model.PaymentProviderEntry, int64, error)
}

type LedgerHandler struct {
	svc LedgerService
}

func NewLedgerHandler(svc LedgerService) *LedgerHandler {
	return &LedgerHandler{svc: svc}
}

func RegisterLedgerRoutes(g *gin.RouterGroup, h *LedgerHandler) {
	g.POST("/cash-ledger", h.CreateCash)
	g.GET("/cash-ledger", h.ListCash)
	g.GET("/cash-ledger/:id", h.GetCash)
	g.PUT("/cash-ledger/:id", h.UpdateCash)
	g.DELETE("/cash-ledger/:id", h.DeleteCash)

	g.POST("/provider-account", h.CreateProvider)
	g.GET("/provider-account", h.ListProvider)
	g.GET("/provider-account/:id", h.GetProvider)
	g.PUT("/provider-account/:id", h.UpdateProvider)
	g.DELETE("/provider-account/:id", h.DeleteProvider)
}

/* ------------------------------- Cash book ------------------------------- */

func (h *LedgerHandler) CreateCash(c *gin.Context) {
	var req model.CashLedgerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	entry, err := h.svc.CreateCashEntry(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *LedgerHandler) GetCash(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	entry, err := h.svc.GetCashEntry(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *LedgerHandler) UpdateCash(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.CashLedgerCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	entry, err := h.svc.UpdateCashEntry(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *LedgerHandler) DeleteCash(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteCashEntry(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LedgerHandler) ListCash(c *gin.Context) {
	var f model.CashLedgerFilter
	f.From = queryTimePtr(c, "from")
	f.To = queryTimePtr(c, "to")
	f.Limit, f.Offset, f.Desc = queryPage(c)

	items, total, err := h.svc.ListCashEntries(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[*model.CashLedgerEntry]{Items: items, Total: total})
}

/* --------------------------- Provider account ---------------------------- */

func (h *LedgerHandler) CreateProvider(c *gin.Context) {
	var req model.PaymentProviderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	entry, err := h.svc.CreateProviderEntry(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

func (h *LedgerHandler) GetProvider(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	entry, err := h.svc.GetProviderEntry(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *LedgerHandler) UpdateProvider(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.PaymentProviderCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	entry, err := h.svc.UpdateProviderEntry(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

func (h *LedgerHandler) DeleteProvider(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteProviderEntry(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LedgerHandler) ListProvider(c *gin.Context) {
	var f model.PaymentProviderFilter
	f.From = queryTimePtr(c, "from")
	f.To = queryTimePtr(c, "to")
	f.Limit, f.Offset, f.Desc = queryPage(c)

	items, total, err := h.svc.ListProviderEntries(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[*model.PaymentProviderEntry]{Items: items, Total: total})
}
