package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

// ErrDuplicateMembershipFee is returned when a record already exists for the
// same (assignee, month, year) triple.
var ErrDuplicateMembershipFee = errors.New("membership fee already recorded for this assignee and month")

type MembershipFeeRepository struct {
	*pg.DB
}

func NewMembershipFeeRepository(db *pg.DB) *MembershipFeeRepository {
	return &MembershipFeeRepository{
		db,
	}
}

func (r *MembershipFeeRepository) Create(ctx context.Context, rec *model.MembershipFeeRecord) (*model.MembershipFeeRecord, error) {
	if err := r.checkUnique(ctx, rec, 0); err != nil {
		return nil, err
	}

	entity := toMembershipFeeEntity(rec)
	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toMembershipFeeModel(entity), nil
}

func (r *MembershipFeeRepository) Get(ctx context.Context, id int64) (*model.MembershipFeeRecord, error) {
	var entity MembershipFeeEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return toMembershipFeeModel(&entity), nil
}

func (r *MembershipFeeRepository) Update(ctx context.Context, rec *model.MembershipFeeRecord) (*model.MembershipFeeRecord, error) {
	if err := r.checkUnique(ctx, rec, rec.ID); err != nil {
		return nil, err
	}

	entity := toMembershipFeeEntity(rec)
	result := r.Write(ctx).Model(&MembershipFeeEntity{}).Where("id = ?", entity.ID).
		Updates(map[string]interface{}{
			"assignee_name": entity.AssigneeName,
			"month":         entity.Month,
			"year":          entity.Year,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEntryNotFound
	}
	return r.Get(ctx, entity.ID)
}

func (r *MembershipFeeRepository) Delete(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id = ?", id).Delete(&MembershipFeeEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *MembershipFeeRepository) List(ctx context.Context, f model.MembershipFeeFilter) ([]*model.MembershipFeeRecord, int64, error) {
	q := r.Read(ctx).Model(&MembershipFeeEntity{})

	if f.AssigneeName != nil && *f.AssigneeName != "" {
		q = q.Where("assignee_name = ?", *f.AssigneeName)
	}
	if f.Month != nil {
		q = q.Where("month = ?", *f.Month)
	}
	if f.Year != nil {
		q = q.Where("year = ?", *f.Year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "year ASC, month ASC, assignee_name ASC"
	if f.Desc {
		order = "year DESC, month DESC, assignee_name ASC"
	}

	limit := f.Limit
	if limit <= 0 || limit > 1000 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var entities []*MembershipFeeEntity
	if err := q.Order(order).Limit(limit).Offset(offset).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return toMembershipFeeModels(entities), total, nil
}

// checkUnique enforces at most one record per (assignee, month, year). The
// unique index backs this up at the storage level; the explicit check keeps
// the error actionable.
func (r *MembershipFeeRepository) checkUnique(ctx context.Context, rec *model.MembershipFeeRecord, excludeID int64) error {
	q := r.Read(ctx).Model(&MembershipFeeEntity{}).
		Where("assignee_name = ? AND month = ? AND year = ?", rec.AssigneeName, rec.Month, rec.Year)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return ErrDuplicateMembershipFee
	}
	return nil
}
