package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hftecno/treasury/internal/model"
)

type EnvelopeService interface {
	CreateAssignment(ctx context.Context, p model.EnvelopeAssignmentCreateRequest) (*model.EnvelopeAssignment, error)
	GetAssignment(ctx context.Context, id int64) (*model.EnvelopeAssignment, error)
	UpdateAssignment(ctx context.Context, id int64, p model.EnvelopeAssignmentCreateRequest) (*model.EnvelopeAssignment, error)
	DeleteAssignment(ctx context.Context, id int64) error
	ListAssignments(ctx context.Context) ([]*model.EnvelopeAssignment, error)

	CreatePledge(ctx context.Context, p model.PledgeCommitmentCreateRequest) (*model.PledgeCommitment, error)
	GetPledge(ctx context.Context, id int64) (*model.PledgeCommitment, error)
	UpdatePledge(ctx context.Context, id int64, p model.PledgeCommitmentCreateRequest) (*model.PledgeCommitment, error)
	DeletePledge(ctx context.Context, id int64) error
	ListPledges(ctx context.Context, f model.PledgeCommitmentFilter) ([]*model.PledgeCommitment, int64, error)
}

type EnvelopeHandler struct {
	svc EnvelopeService
}

func NewEnvelopeHandler(svc EnvelopeService) *EnvelopeHandler {
	return &EnvelopeHandler{svc: svc}
}

func RegisterEnvelopeRoutes(g *gin.RouterGroup, h *EnvelopeHandler) {
	g.POST("/envelope-assignments", h.CreateAssignment)
	g.GET("/envelope-assignments", h.ListAssignments)
	g.GET("/envelope-assignments/:id", h.GetAssignment)
	g.PUT("/envelope-assignments/:id", h.UpdateAssignment)
	g.DELETE("/envelope-assignments/:id", h.DeleteAssignment)

	g.POST("/pledge-commitments", h.CreatePledge)
	g.GET("/pledge-commitments", h.ListPledges)
	g.GET("/pledge-commitments/:id", h.GetPledge)
	g.PUT("/pledge-commitments/:id", h.UpdatePledge)
	g.DELETE("/pledge-commitments/:id", h.DeletePledge)
}

/* ------------------------------ Assignments ------------------------------ */

func (h *EnvelopeHandler) CreateAssignment(c *gin.Context) {
	var req model.EnvelopeAssignmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	a, err := h.svc.CreateAssignment(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *EnvelopeHandler) GetAssignment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	a, err := h.svc.GetAssignment(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *EnvelopeHandler) UpdateAssignment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.EnvelopeAssignmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	a, err := h.svc.UpdateAssignment(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *EnvelopeHandler) DeleteAssignment(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteAssignment(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EnvelopeHandler) ListAssignments(c *gin.Context) {
	items, err := h.svc.ListAssignments(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[*model.EnvelopeAssignment]{Items: items, Total: int64(len(items))})
}

/* ------------------------------ Commitments ------------------------------ */

func (h *EnvelopeHandler) CreatePledge(c *gin.Context) {
	var req model.PledgeCommitmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	p, err := h.svc.CreatePledge(c.Request.Context(), req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *EnvelopeHandler) GetPledge(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	p, err := h.svc.GetPledge(c.Request.Context(), id)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *EnvelopeHandler) UpdatePledge(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req model.PledgeCommitmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBadRequest(c, "invalid JSON: "+err.Error())
		return
	}
	p, err := h.svc.UpdatePledge(c.Request.Context(), id, req)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *EnvelopeHandler) DeletePledge(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.svc.DeletePledge(c.Request.Context(), id); err != nil {
		writeServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EnvelopeHandler) ListPledges(c *gin.Context) {
	var f model.PledgeCommitmentFilter
	f.AssignmentID = queryInt64Ptr(c, "assignment_id")
	f.From = queryTimePtr(c, "from")
	f.To = queryTimePtr(c, "to")
	f.Limit, f.Offset, f.Desc = queryPage(c)

	items, total, err := h.svc.ListPledges(c.Request.Context(), f)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse[*model.PledgeCommitment]{Items: items, Total: total})
}
