package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type ForeignCurrencyRepository struct {
	*pg.DB
}

func NewForeignCurrencyRepository(db *pg.DB) *ForeignCurrencyRepository {
	return &ForeignCurrencyRepository{
		db,
	}
}

func (r *ForeignCurrencyRepository) Create(ctx context.Context, entry *model.ForeignCurrencyEntry) (*model.ForeignCurrencyEntry, error) {
	entity := toForeignCurrencyEntity(entry)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return r.Get(ctx, entity.ID)
}

func (r *ForeignCurrencyRepository) Get(ctx context.Context, id int64) (*model.ForeignCurrencyEntry, error) {
	var entity ForeignCurrencyEntity
	err := r.Read(ctx).Preload("Status").Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return toForeignCurrencyModel(&entity), nil
}

func (r *ForeignCurrencyRepository) Update(ctx context.Context, entry *model.ForeignCurrencyEntry) (*model.ForeignCurrencyEntry, error) {
	entity := toForeignCurrencyEntity(entry)

	result := r.Write(ctx).Model(&ForeignCurrencyEntity{}).Where("id = ?", entity.ID).
		Updates(map[string]interface{}{
			"code":             entity.Code,
			"date":             entity.Date,
			"inflow":           entity.Inflow,
			"purchase_foreign": entity.PurchaseForeign,
			"purchase_local":   entity.PurchaseLocal,
			"outflow_foreign":  entity.OutflowForeign,
			"rate_of_day":      entity.RateOfDay,
			"sale_local":       entity.SaleLocal,
			"balance_local":    entity.BalanceLocal,
			"status_id":        entity.StatusID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEntryNotFound
	}
	return r.Get(ctx, entity.ID)
}

func (r *ForeignCurrencyRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id = ?", id).Delete(&ForeignCurrencyEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *ForeignCurrencyRepository) List(ctx context.Context, f model.ForeignCurrencyFilter) ([]*model.ForeignCurrencyEntry, int64, error) {
	q := r.Read(ctx).Model(&ForeignCurrencyEntity{})

	if f.Code != nil && *f.Code != "" {
		q = q.Where("code = ?", *f.Code)
	}
	if f.StatusID != nil {
		q = q.Where("status_id = ?", *f.StatusID)
	}
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

	var entities []*ForeignCurrencyEntity
	if err := q.Preload("Status").Order(order).Limit(limit).Offset(offset).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return toForeignCurrencyModels(entities), total, nil
}
