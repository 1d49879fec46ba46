package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type DonationRepository struct {
	*pg.DB
}

func NewDonationRepository(db *pg.DB) *DonationRepository {
	return &DonationRepository{
		db,
	}
}

func (r *DonationRepository) Create(ctx context.Context, entry *model.DonationEntry) (*model.DonationEntry, error) {
	entity := toDonationEntity(entry)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return r.Get(ctx, entity.ID)
}

func (r *DonationRepository) Get(ctx context.Context, id int64) (*model.DonationEntry, error) {
	var entity DonationEntity
	err := r.Read(ctx).Preload("WithdrawalRole").Preload("DeliveredTo").
		Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return toDonationModel(&entity), nil
}

func (r *DonationRepository) Update(ctx context.Context, entry *model.DonationEntry) (*model.DonationEntry, error) {
	entity := toDonationEntity(entry)

	result := r.Write(ctx).Model(&DonationEntity{}).Where("id = ?", entity.ID).
		Updates(map[string]interface{}{
			"date":               entity.Date,
			"withdrawal_role_id": entity.WithdrawalRoleID,
			"delivered_to_id":    entity.DeliveredToID,
			"amount":             entity.Amount,
			"balance":            entity.Balance,
			"concept":            entity.Concept,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEntryNotFound
	}
	return r.Get(ctx, entity.ID)
}

func (r *DonationRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id = ?", id).Delete(&DonationEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *DonationRepository) List(ctx context.Context, f model.DonationFilter) ([]*model.DonationEntry, int64, error) {
	q := r.Read(ctx).Model(&DonationEntity{})

	if f.WithdrawalRoleID != nil {
		q = q.Where("withdrawal_role_id = ?", *f.WithdrawalRoleID)
	}
	if f.DeliveredToID != nil {
		q = q.Where("delivered_to_id = ?", *f.DeliveredToID)
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

	var entities []*DonationEntity
	err := q.Preload("WithdrawalRole").Preload("DeliveredTo").
		Order(order).Limit(limit).Offset(offset).Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}

	return toDonationModels(entities), total, nil
}
