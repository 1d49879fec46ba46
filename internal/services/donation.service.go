package services

import (
	"context"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/prom"
)

type DonationRepository interface {
	Create(ctx context.Context, entry *model.DonationEntry) (*model.DonationEntry, error)
	Get(ctx context.Context, id int64) (*model.DonationEntry, error)
	Update(ctx context.Context, entry *model.DonationEntry) (*model.DonationEntry, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.DonationFilter) ([]*model.DonationEntry, int64, error)
}

type DonationService struct {
	repo     DonationRepository
	catalogs CatalogRepository
}

func NewDonationService(repo DonationRepository, catalogs CatalogRepository) *DonationService {
	return &DonationService{repo: repo, catalogs: catalogs}
}

func (s *DonationService) checkRefs(ctx context.Context, p model.DonationCreateRequest) error {
	ok, err := s.catalogs.Exists(ctx, model.CatalogMailboxWithdrawalRole, p.WithdrawalRoleID)
	if err != nil {
		return err
	}
	if !ok {
		return model.RefNotFound("withdrawal_role_id")
	}

	ok, err = s.catalogs.Exists(ctx, model.CatalogDeliveredToRole, p.DeliveredToID)
	if err != nil {
		return err
	}
	if !ok {
		return model.RefNotFound("delivered_to_id")
	}
	return nil
}

func (s *DonationService) Create(ctx context.Context, p model.DonationCreateRequest) (*model.DonationEntry, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "donation_entry", "create")
		return nil, err
	}
	if err := s.checkRefs(ctx, p); err != nil {
		prom.Inc(prom.MetricValidationRejections, "donation_entry", "create")
		return nil, err
	}

	entry, err := s.repo.Create(ctx, &model.DonationEntry{
		Date:             p.Date,
		WithdrawalRoleID: p.WithdrawalRoleID,
		DeliveredToID:    p.DeliveredToID,
		Amount:           p.Amount,
		Balance:          p.Balance,
		Concept:          p.Concept,
	})
	if err != nil {
		return nil, err
	}

	prom.Inc(prom.MetricWritesTotal, "donation_entry", "create")
	return entry, nil
}

func (s *DonationService) Get(ctx context.Context, id int64) (*model.DonationEntry, error) {
	entry, err := s.repo.Get(ctx, id)
	return entry, mapEntryErr(err)
}

func (s *DonationService) Update(ctx context.Context, id int64, p model.DonationCreateRequest) (*model.DonationEntry, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "donation_entry", "update")
		return nil, err
	}
	if err := s.checkRefs(ctx, p); err != nil {
		prom.Inc(prom.MetricValidationRejections, "donation_entry", "update")
		return nil, err
	}

	entry, err := s.repo.Update(ctx, &model.DonationEntry{
		ID:               id,
		Date:             p.Date,
		WithdrawalRoleID: p.WithdrawalRoleID,
		DeliveredToID:    p.DeliveredToID,
		Amount:           p.Amount,
		Balance:          p.Balance,
		Concept:          p.Concept,
	})
	if err != nil {
		return nil, mapEntryErr(err)
	}

	prom.Inc(prom.MetricWritesTotal, "donation_entry", "update")
	return entry, nil
}

func (s *DonationService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapEntryErr(err)
	}
	prom.Inc(prom.MetricWritesTotal, "donation_entry", "delete")
	return nil
}

func (s *DonationService) List(ctx context.Context, f model.DonationFilter) ([]*model.DonationEntry, int64, error) {
	return s.repo.List(ctx, f)
}
