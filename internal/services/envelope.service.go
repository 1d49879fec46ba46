package services

import (
	"context"
	"errors"
	"strings"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/internal/repository"
	"github.com/hftecno/treasury/pkg/prom"
)

var (
	ErrAssignmentNotFound = errors.New("envelope assignment not found")
	ErrAssignmentInUse    = errors.New("envelope assignment is still referenced")
)

type EnvelopeRepository interface {
	CreateAssignment(ctx context.Context, a *model.EnvelopeAssignment) (*model.EnvelopeAssignment, error)
	GetAssignment(ctx context.Context, id int64) (*model.EnvelopeAssignment, error)
	UpdateAssignment(ctx context.Context, a *model.EnvelopeAssignment) (*model.EnvelopeAssignment, error)
	DeleteAssignment(ctx context.Context, id int64) error
	ListAssignments(ctx context.Context) ([]*model.EnvelopeAssignment, error)

	CreatePledge(ctx context.Context, p *model.PledgeCommitment) (*model.PledgeCommitment, error)
	GetPledge(ctx context.Context, id int64) (*model.PledgeCommitment, error)
	UpdatePledge(ctx context.Context, p *model.PledgeCommitment) (*model.PledgeCommitment, error)
	DeletePledge(ctx context.Context, id int64) error
	ListPledges(ctx context.Context, f model.PledgeCommitmentFilter) ([]*model.PledgeCommitment, int64, error)
}

type EnvelopeService struct {
	repo EnvelopeRepository
}

func NewEnvelopeService(repo EnvelopeRepository) *EnvelopeService {
	return &EnvelopeService{repo: repo}
}

func mapAssignmentErr(err error) error {
	switch {
	case errors.Is(err, repository.ErrAssignmentNotFound):
		return ErrAssignmentNotFound
	case errors.Is(err, repository.ErrAssignmentInUse):
		return ErrAssignmentInUse
	}
	return err
}

func duplicateEnvelopeErr() error {
	return &model.ValidationError{Fields: []model.FieldError{{
		Code:    model.ErrCodeUniqueViolation,
		Field:   "envelope_number",
		Message: "envelope number is already assigned",
	}}}
}

/* ------------------------------ Assignments ------------------------------ */

func (s *EnvelopeService) CreateAssignment(ctx context.Context, p model.EnvelopeAssignmentCreateRequest) (*model.EnvelopeAssignment, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "envelope_assignment", "create")
		return nil, err
	}

	a, err := s.repo.CreateAssignment(ctx, &model.EnvelopeAssignment{
		EnvelopeNumber: p.EnvelopeNumber,
		AssigneeName:   strings.TrimSpace(p.AssigneeName),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEnvelopeNumber) {
			return nil, duplicateEnvelopeErr()
		}
		return nil, err
	}

	prom.Inc(prom.MetricWritesTotal, "envelope_assignment", "create")
	return a, nil
}

func (s *EnvelopeService) GetAssignment(ctx context.Context, id int64) (*model.EnvelopeAssignment, error) {
	a, err := s.repo.GetAssignment(ctx, id)
	return a, mapAssignmentErr(err)
}

func (s *EnvelopeService) UpdateAssignment(ctx context.Context, id int64, p model.EnvelopeAssignmentCreateRequest) (*model.EnvelopeAssignment, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "envelope_assignment", "update")
		return nil, err
	}

	a, err := s.repo.UpdateAssignment(ctx, &model.EnvelopeAssignment{
		ID:             id,
		EnvelopeNumber: p.EnvelopeNumber,
		AssigneeName:   strings.TrimSpace(p.AssigneeName),
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEnvelopeNumber) {
			return nil, duplicateEnvelopeErr()
		}
		return nil, mapAssignmentErr(err)
	}

	prom.Inc(prom.MetricWritesTotal, "envelope_assignment", "update")
	return a, nil
}

func (s *EnvelopeService) DeleteAssignment(ctx context.Context, id int64) error {
	err := s.repo.DeleteAssignment(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentInUse) {
			prom.Inc(prom.MetricIntegrityConflicts, "envelope_assignment", "delete")
		}
		return mapAssignmentErr(err)
	}
	prom.Inc(prom.MetricWritesTotal, "envelope_assignment", "delete")
	return nil
}

func (s *EnvelopeService) ListAssignments(ctx context.Context) ([]*model.EnvelopeAssignment, error) {
	return s.repo.ListAssignments(ctx)
}

/* ------------------------------ Commitments ------------------------------ */

func (s *EnvelopeService) CreatePledge(ctx context.Context, p model.PledgeCommitmentCreateRequest) (*model.PledgeCommitment, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "pledge_commitment", "create")
		return nil, err
	}

	if _, err := s.repo.GetAssignment(ctx, p.AssignmentID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			prom.Inc(prom.MetricValidationRejections, "pledge_commitment", "create")
			return nil, model.RefNotFound("assignment_id")
		}
		return nil, err
	}

	pledge, err := s.repo.CreatePledge(ctx, &model.PledgeCommitment{
		Date:         p.Date,
		AssignmentID: p.AssignmentID,
		Amount:       p.Amount,
		Balance:      p.Balance,
	})
	if err != nil {
		return nil, err
	}

	prom.Inc(prom.MetricWritesTotal, "pledge_commitment", "create")
	return pledge, nil
}

func (s *EnvelopeService) GetPledge(ctx context.Context, id int64) (*model.PledgeCommitment, error) {
	pledge, err := s.repo.GetPledge(ctx, id)
	return pledge, mapEntryErr(err)
}

func (s *EnvelopeService) UpdatePledge(ctx context.Context, id int64, p model.PledgeCommitmentCreateRequest) (*model.PledgeCommitment, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "pledge_commitment", "update")
		return nil, err
	}

	if _, err := s.repo.GetAssignment(ctx, p.AssignmentID); err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			prom.Inc(prom.MetricValidationRejections, "pledge_commitment", "update")
			return nil, model.RefNotFound("assignment_id")
		}
		return nil, err
	}

	pledge, err := s.repo.UpdatePledge(ctx, &model.PledgeCommitment{
		ID:           id,
		Date:         p.Date,
		AssignmentID: p.AssignmentID,
		Amount:       p.Amount,
		Balance:      p.Balance,
	})
	if err != nil {
		return nil, mapEntryErr(err)
	}

	prom.Inc(prom.MetricWritesTotal, "pledge_commitment", "update")
	return pledge, nil
}

func (s *EnvelopeService) DeletePledge(ctx context.Context, id int64) error {
	if err := s.repo.DeletePledge(ctx, id); err != nil {
		return mapEntryErr(err)
	}
	prom.Inc(prom.MetricWritesTotal, "pledge_commitment", "delete")
	return nil
}

func (s *EnvelopeService) ListPledges(ctx context.Context, f model.PledgeCommitmentFilter) ([]*model.PledgeCommitment, int64, error) {
	return s.repo.ListPledges(ctx, f)
}
