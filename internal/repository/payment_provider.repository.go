package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type PaymentProviderRepository struct {
	*pg.DB
}

func NewPaymentProviderRepository(db *pg.DB) *PaymentProviderRepository {
	return &PaymentProviderRepository{
		db,
	}
}

func (r *PaymentProviderRepository) Create(ctx context.Context, entry *model.PaymentProviderEntry) (*model.PaymentProviderEntry, error) {
	entity := toPaymentProviderEntity(entry)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return toPaymentProviderModel(entity), nil
}

func (r *PaymentProviderRepository) Get(ctx context.Context, id int64) (*model.PaymentProviderEntry, error) {
	var entity PaymentProviderEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return toPaymentProviderModel(&entity), nil
}

func (r *PaymentProviderRepository) Update(ctx context.Context, entry *model.PaymentProviderEntry) (*model.PaymentProviderEntry, error) {
	entity := toPaymentProviderEntity(entry)

	result := r.Write(ctx).Model(&PaymentProviderEntity{}).Where("id = ?", entity.ID).
		Updates(map[string]interface{}{
			"date":     entity.Date,
			"inflow":   entity.Inflow,
			"outflow":  entity.Outflow,
			"interest": entity.Interest,
			"balance":  entity.Balance,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEntryNotFound
	}
	return r.Get(ctx, entity.ID)
}

func (r *PaymentProviderRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id = ?", id).Delete(&PaymentProviderEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *PaymentProviderRepository) List(ctx context.Context, f model.PaymentProviderFilter) ([]*model.PaymentProviderEntry, int64, error) {
	q := r.Read(ctx).Model(&PaymentProviderEntity{})

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

	var entities []*PaymentProviderEntity
	if err := q.Order(order).Limit(limit).Offset(offset).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return toPaymentProviderModels(entities), total, nil
}
