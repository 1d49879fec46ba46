package services

import (
	"context"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/prom"
)

type ForeignCurrencyRepository interface {
	Create(ctx context.Context, entry *model.ForeignCurrencyEntry) (*model.ForeignCurrencyEntry, error)
	Get(ctx context.Context, id int64) (*model.ForeignCurrencyEntry, error)
	Update(ctx context.Context, entry *model.ForeignCurrencyEntry) (*model.ForeignCurrencyEntry, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.ForeignCurrencyFilter) ([]*model.ForeignCurrencyEntry, int64, error)
}

type CurrencyService struct {
	repo     ForeignCurrencyRepository
	catalogs CatalogRepository
}

func NewCurrencyService(repo ForeignCurrencyRepository, catalogs CatalogRepository) *CurrencyService {
	return &CurrencyService{repo: repo, catalogs: catalogs}
}

func (s *CurrencyService) checkStatus(ctx context.Context, statusID int64) error {
	ok, err := s.catalogs.Exists(ctx, model.CatalogCurrencyStatus, statusID)
	if err != nil {
		return err
	}
	if !ok {
		return model.RefNotFound("status_id")
	}
	return nil
}

func (s *CurrencyService) Create(ctx context.Context, p model.ForeignCurrencyCreateRequest) (*model.ForeignCurrencyEntry, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "foreign_currency_entry", "create")
		return nil, err
	}
	if err := s.checkStatus(ctx, p.StatusID); err != nil {
		prom.Inc(prom.MetricValidationRejections, "foreign_currency_entry", "create")
		return nil, err
	}

	entry, err := s.repo.Create(ctx, &model.ForeignCurrencyEntry{
		Code:            p.Code,
		Date:            p.Date,
		Inflow:          p.Inflow,
		PurchaseForeign: p.PurchaseForeign,
		PurchaseLocal:   p.PurchaseLocal,
		OutflowForeign:  p.OutflowForeign,
		RateOfDay:       p.RateOfDay,
		SaleLocal:       p.SaleLocal,
		BalanceLocal:    p.BalanceLocal,
		StatusID:        p.StatusID,
	})
	if err != nil {
		return nil, err
	}

	prom.Inc(prom.MetricWritesTotal, "foreign_currency_entry", "create")
	return entry, nil
}

func (s *CurrencyService) Get(ctx context.Context, id int64) (*model.ForeignCurrencyEntry, error) {
	entry, err := s.repo.Get(ctx, id)
	return entry, mapEntryErr(err)
}

func (s *CurrencyService) Update(ctx context.Context, id int64, p model.ForeignCurrencyCreateRequest) (*model.ForeignCurrencyEntry, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "foreign_currency_entry", "update")
		return nil, err
	}
	if err := s.checkStatus(ctx, p.StatusID); err != nil {
		prom.Inc(prom.MetricValidationRejections, "foreign_currency_entry", "update")
		return nil, err
	}

	entry, err := s.repo.Update(ctx, &model.ForeignCurrencyEntry{
		ID:              id,
		Code:            p.Code,
		Date:            p.Date,
		Inflow:          p.Inflow,
		PurchaseForeign: p.PurchaseForeign,
		PurchaseLocal:   p.PurchaseLocal,
		OutflowForeign:  p.OutflowForeign,
		RateOfDay:       p.RateOfDay,
		SaleLocal:       p.SaleLocal,
		BalanceLocal:    p.BalanceLocal,
		StatusID:        p.StatusID,
	})
	if err != nil {
		return nil, mapEntryErr(err)
	}

	prom.Inc(prom.MetricWritesTotal, "foreign_currency_entry", "update")
	return entry, nil
}

func (s *CurrencyService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapEntryErr(err)
	}
	prom.Inc(prom.MetricWritesTotal, "foreign_currency_entry", "delete")
	return nil
}

func (s *CurrencyService) List(ctx context.Context, f model.ForeignCurrencyFilter) ([]*model.ForeignCurrencyEntry, int64, error) {
	return s.repo.List(ctx, f)
}
