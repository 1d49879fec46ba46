package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

type DueItemRepository struct {
	*pg.DB
}

func NewDueItemRepository(db *pg.DB) *DueItemRepository {
	return &DueItemRepository{
		db,
	}
}

func (r *DueItemRepository) Create(ctx context.Context, item *model.DueItem) (*model.DueItem, error) {
	entity := toDueItemEntity(item)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return r.Get(ctx, entity.ID)
}

func (r *DueItemRepository) Get(ctx context.Context, id int64) (*model.DueItem, error) {
	var entity DueItemEntity
	err := r.Read(ctx).
		Preload("Concept").Preload("Location").Preload("Status").Preload("Situation").
		Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return toDueItemModel(&entity), nil
}

func (r *DueItemRepository) Update(ctx context.Context, item *model.DueItem) (*model.DueItem, error) {
	entity := toDueItemEntity(item)

	result := r.Write(ctx).Model(&DueItemEntity{}).Where("id = ?", entity.ID).
		Updates(map[string]interface{}{
			"date":         entity.Date,
			"due_date":     entity.DueDate,
			"concept_id":   entity.ConceptID,
			"location_id":  entity.LocationID,
			"amount":       entity.Amount,
			"note":         entity.Note,
			"status_id":    entity.StatusID,
			"situation_id": entity.SituationID,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEntryNotFound
	}
	return r.Get(ctx, entity.ID)
}

func (r *DueItemRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id = ?", id).Delete(&DueItemEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *DueItemRepository) List(ctx context.Context, f model.DueItemFilter) ([]*model.DueItem, int64, error) {
	q := r.Read(ctx).Model(&DueItemEntity{})

	if f.ConceptID != nil {
		q = q.Where("concept_id = ?", *f.ConceptID)
	}
	if f.StatusID != nil {
		q = q.Where("status_id = ?", *f.StatusID)
	}
	if f.SituationID != nil {
		q = q.Where("situation_id = ?", *f.SituationID)
	}
	if f.LocationID != nil {
		q = q.Where("location_id = ?", *f.LocationID)
	}
	if f.DueFrom != nil {
		q = q.Where("due_date >= ?", *f.DueFrom)
	}
	if f.DueTo != nil {
		q = q.Where("due_date < ?", *f.DueTo)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "due_date ASC, id ASC"
	if f.Desc {
		order = "due_date DESC, id DESC"
	}

	limit := f.Limit
	if limit <= 0 || limit > 1000 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var entities []*DueItemEntity
	err := q.Preload("Concept").Preload("Location").Preload("Status").Preload("Situation").
		Order(order).Limit(limit).Offset(offset).Find(&entities).Error
	if err != nil {
		return nil, 0, err
	}

	return toDueItemModels(entities), total, nil
}
