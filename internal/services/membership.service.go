package services

import (
	"context"
	"errors"
	"strings"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/internal/repository"
	"github.com/hftecno/treasury/pkg/prom"
)

type MembershipFeeRepository interface {
	Create(ctx context.Context, rec *model.MembershipFeeRecord) (*model.MembershipFeeRecord, error)
	Get(ctx context.Context, id int64) (*model.MembershipFeeRecord, error)
	Update(ctx context.Context, rec *model.MembershipFeeRecord) (*model.MembershipFeeRecord, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.MembershipFeeFilter) ([]*model.MembershipFeeRecord, int64, error)
}

type MembershipService struct {
	repo MembershipFeeRepository
}

func NewMembershipService(repo MembershipFeeRepository) *MembershipService {
	return &MembershipService{repo: repo}
}

func duplicateFeeErr() error {
	return &model.ValidationError{Fields: []model.FieldError{{
		Code:    model.ErrCodeUniqueViolation,
		Field:   "assignee_name",
		Message: "a fee record already exists for this assignee, month and year",
	}}}
}

func (s *MembershipService) Create(ctx context.Context, p model.MembershipFeeCreateRequest) (*model.MembershipFeeRecord, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "membership_fee_record", "create")
		return nil, err
	}

	rec, err := s.repo.Create(ctx, &model.MembershipFeeRecord{
		AssigneeName: strings.TrimSpace(p.AssigneeName),
		Month:        p.Month,
		Year:         p.Year,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateMembershipFee) {
			prom.Inc(prom.MetricValidationRejections, "membership_fee_record", "create")
			return nil, duplicateFeeErr()
		}
		return nil, err
	}

	prom.Inc(prom.MetricWritesTotal, "membership_fee_record", "create")
	return rec, nil
}

func (s *MembershipService) Get(ctx context.Context, id int64) (*model.MembershipFeeRecord, error) {
	rec, err := s.repo.Get(ctx, id)
	return rec, mapEntryErr(err)
}

func (s *MembershipService) Update(ctx context.Context, id int64, p model.MembershipFeeCreateRequest) (*model.MembershipFeeRecord, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "membership_fee_record", "update")
		return nil, err
	}

	rec, err := s.repo.Update(ctx, &model.MembershipFeeRecord{
		ID:           id,
		AssigneeName: strings.TrimSpace(p.AssigneeName),
		Month:        p.Month,
		Year:         p.Year,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateMembershipFee) {
			prom.Inc(prom.MetricValidationRejections, "membership_fee_record", "update")
			return nil, duplicateFeeErr()
		}
		return nil, mapEntryErr(err)
	}

	prom.Inc(prom.MetricWritesTotal, "membership_fee_record", "update")
	return rec, nil
}

func (s *MembershipService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapEntryErr(err)
	}
	prom.Inc(prom.MetricWritesTotal, "membership_fee_record", "delete")
	return nil
}

func (s *MembershipService) List(ctx context.Context, f model.MembershipFeeFilter) ([]*model.MembershipFeeRecord, int64, error) {
	return s.repo.List(ctx, f)
}
