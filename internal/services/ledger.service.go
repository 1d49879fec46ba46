package services

import (
	"context"
	"errors"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/internal/repository"
	"github.com/hftecno/treasury/pkg/prom"
)

// ErrEntryNotFound is the service-level not-found for every transactional row.
var ErrEntryNotFound = errors.New("entry not found")

type CashLedgerRepository interface {
	Create(ctx context.Context, entry *model.CashLedgerEntry) (*model.CashLedgerEntry, error)
	Get(ctx context.Context, id int64) (*model.CashLedgerEntry, error)
	Update(ctx context.Context, entry *model.CashLedgerEntry) (*model.CashLedgerEntry, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.CashLedgerFilter) ([]*model.CashLedgerEntry, int64, error)
}

type PaymentProviderRepository interface {
	Create(ctx context.Context, entry *model.PaymentProviderEntry) (*model.PaymentProviderEntry, error)
	Get(ctx context.Context, id int64) (*model.PaymentProviderEntry, error)
	Update(ctx context.Context, entry *model.PaymentProviderEntry) (*model.PaymentProviderEntry, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.PaymentProviderFilter) ([]*model.PaymentProviderEntry, int64, error)
}

// LedgerService covers both ledgers: the cash book and the payment-provider
// account. Balances are operator-entered; the service never recomputes them.
type LedgerService struct {
	cashRepo     CashLedgerRepository
	providerRepo PaymentProviderRepository
}

func NewLedgerService(cashRepo CashLedgerRepository, providerRepo PaymentProviderRepository) *LedgerService {
	return &LedgerService{
		cashRepo:     cashRepo,
		providerRepo: providerRepo,
	}
}

func mapEntryErr(err error) error {
	if errors.Is(err, repository.ErrEntryNotFound) {
		return ErrEntryNotFound
	}
	return err
}

/* ------------------------------- Cash book ------------------------------- */

func (s *LedgerService) CreateCashEntry(ctx context.Context, p model.CashLedgerCreateRequest) (*model.CashLedgerEntry, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "cash_ledger_entry", "create")
		return nil, err
	}

	entry, err := s.cashRepo.Create(ctx, &model.CashLedgerEntry{
		Date:        p.Date,
		Description: p.Description,
		Inflow:      p.Inflow,
		Outflow:     p.Outflow,
		Balance:     p.Balance,
	})
	if err != nil {
		return nil, err
	}

	prom.Inc(prom.MetricWritesTotal, "cash_ledger_entry", "create")
	return entry, nil
}

func (s *LedgerService) GetCashEntry(ctx context.Context, id int64) (*model.CashLedgerEntry, error) {
	entry, err := s.cashRepo.Get(ctx, id)
	return entry, mapEntryErr(err)
}

func (s *LedgerService) UpdateCashEntry(ctx context.Context, id int64, p model.CashLedgerCreateRequest) (*model.CashLedgerEntry, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "cash_ledger_entry", "update")
		return nil, err
	}

	entry, err := s.cashRepo.Update(ctx, &model.CashLedgerEntry{
		ID:          id,
		Date:        p.Date,
		Description: p.Description,
		Inflow:      p.Inflow,
		Outflow:     p.Outflow,
		Balance:     p.Balance,
	})
	if err != nil {
		return nil, mapEntryErr(err)
	}

	prom.Inc(prom.MetricWritesTotal, "cash_ledger_entry", "update")
	return entry, nil
}

func (s *LedgerService) DeleteCashEntry(ctx context.Context, id int64) error {
	if err := s.cashRepo.Delete(ctx, id); err != nil {
		return mapEntryErr(err)
	}
	prom.Inc(prom.MetricWritesTotal, "cash_ledger_entry", "delete")
	return nil
}

func (s *LedgerService) ListCashEntries(ctx context.Context, f model.CashLedgerFilter) ([]*model.CashLedgerEntry, int64, error) {
	return s.cashRepo.List(ctx, f)
}

/* --------------------------- Provider account ---------------------------- */

func (s *LedgerService) CreateProviderEntry(ctx context.Context, p model.PaymentProviderCreateRequest) (*model.PaymentProviderEntry, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "payment_provider_entry", "create")
		return nil, err
	}

	entry, err := s.providerRepo.Create(ctx, &model.PaymentProviderEntry{
		Date:     p.Date,
		Inflow:   p.Inflow,
		Outflow:  p.Outflow,
		Interest: p.Interest,
		Balance:  p.Balance,
	})
	if err != nil {
		return nil, err
	}

	prom.Inc(prom.MetricWritesTotal, "payment_provider_entry", "create")
	return entry, nil
}

func (s *LedgerService) GetProviderEntry(ctx context.Context, id int64) (*model.PaymentProviderEntry, error) {
	entry, err := s.providerRepo.Get(ctx, id)
	return entry, mapEntryErr(err)
}

func (s *LedgerService) UpdateProviderEntry(ctx context.Context, id int64, p model.PaymentProviderCreateRequest) (*model.PaymentProviderEntry, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "payment_provider_entry", "update")
		return nil, err
	}

	entry, err := s.providerRepo.Update(ctx, &model.PaymentProviderEntry{
		ID:       id,
		Date:     p.Date,
		Inflow:   p.Inflow,
		Outflow:  p.Outflow,
		Interest: p.Interest,
		Balance:  p.Balance,
	})
	if err != nil {
		return nil, mapEntryErr(err)
	}

	prom.Inc(prom.MetricWritesTotal, "payment_provider_entry", "update")
	return entry, nil
}

func (s *LedgerService) DeleteProviderEntry(ctx context.Context, id int64) error {
	if err := s.providerRepo.Delete(ctx, id); err != nil {
		return mapEntryErr(err)
	}
	prom.Inc(prom.MetricWritesTotal, "payment_provider_entry", "delete")
	return nil
}

func (s *LedgerService) ListProviderEntries(ctx context.Context, f model.PaymentProviderFilter) ([]*model.PaymentProviderEntry, int64, error) {
	return s.providerRepo.List(ctx, f)
}
