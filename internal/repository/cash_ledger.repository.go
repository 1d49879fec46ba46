package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

// ErrEntryNotFound is returned when a ledger row does not exist.
var ErrEntryNotFound = errors.New("ledger entry not found")

type CashLedgerRepository struct {
	*pg.DB
}

func NewCashLedgerRepository(db *pg.DB) *CashLedgerRepository {
	return &CashLedgerRepository{
		db,
	}
}

func (r *CashLedgerRepository) Create(ctx context.Context, entry *model.CashLedgerEntry) (*model.CashLedgerEntry, error) {
	entity := toCashLedgerEntity(entry)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toCashLedgerModel(entity), nil
}

func (r *CashLedgerRepository) Get(ctx context.Context, id int64) (*model.CashLedgerEntry, error) {
	var entity CashLedgerEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return toCashLedgerModel(&entity), nil
}

func (r *CashLedgerRepository) Update(ctx context.Context, entry *model.CashLedgerEntry) (*model.CashLedgerEntry, error) {
	entity := toCashLedgerEntity(entry)

	result := r.Write(ctx).Model(&CashLedgerEntity{}).Where("id = ?", entity.ID).
		Updates(map[string]interface{}{
			"date":        entity.Date,
			"description": entity.Description,
			"inflow":      entity.Inflow,
			"outflow":     entity.Outflow,
			"balance":     entity.Balance,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEntryNotFound
	}
	return r.Get(ctx, entity.ID)
}

func (r *CashLedgerRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id = ?", id).Delete(&CashLedgerEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *CashLedgerRepository) List(ctx context.Context, f model.CashLedgerFilter) ([]*model.CashLedgerEntry, int64, error) {
	q := r.Read(ctx).Model(&CashLedgerEntity{})

	if f.From != nil {
		q = q.Where("date >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("date < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "date ASC, id ASC"
	if f.Desc {
		order = "date DESC, id DESC"
	}

	limit := f.Limit
	if limit <= 0 || limit > 1000 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var entities []*CashLedgerEntity
	if err := q.Order(order).Limit(limit).Offset(offset).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return toCashLedgerModels(entities), total, nil
}
