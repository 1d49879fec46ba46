package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

var (
	// ErrAssignmentNotFound is returned when an envelope assignment does not exist.
	ErrAssignmentNotFound = errors.New("envelope assignment not found")
	// ErrAssignmentInUse is returned when commitments still reference an assignment.
	ErrAssignmentInUse = errors.New("envelope assignment is referenced by pledge commitments")
	// ErrDuplicateEnvelopeNumber is returned when the envelope number is taken.
	ErrDuplicateEnvelopeNumber = errors.New("envelope number already assigned")
)

type EnvelopeRepository struct {
	*pg.DB
}

func NewEnvelopeRepository(db *pg.DB) *EnvelopeRepository {
	return &EnvelopeRepository{
		db,
	}
}

/* ------------------------------ Assignments ------------------------------ */

func (r *EnvelopeRepository) CreateAssignment(ctx context.Context, a *model.EnvelopeAssignment) (*model.EnvelopeAssignment, error) {
	var count int64
	err := r.Read(ctx).Model(&EnvelopeAssignmentEntity{}).
		Where("envelope_number = ?", a.EnvelopeNumber).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEnvelopeNumber
	}

	entity := toAssignmentEntity(a)
	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}
	return toAssignmentModel(entity), nil
}

func (r *EnvelopeRepository) GetAssignment(ctx context.Context, id int64) (*model.EnvelopeAssignment, error) {
	var entity EnvelopeAssignmentEntity
	err := r.Read(ctx).Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		return nil, err
	}
	return toAssignmentModel(&entity), nil
}

func (r *EnvelopeRepository) UpdateAssignment(ctx context.Context, a *model.EnvelopeAssignment) (*model.EnvelopeAssignment, error) {
	var count int64
	err := r.Read(ctx).Model(&EnvelopeAssignmentEntity{}).
		Where("envelope_number = ? AND id <> ?", a.EnvelopeNumber, a.ID).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateEnvelopeNumber
	}

	result := r.Write(ctx).Model(&EnvelopeAssignmentEntity{}).Where("id = ?", a.ID).
		Updates(map[string]interface{}{
			"envelope_number": a.EnvelopeNumber,
			"assignee_name":   a.AssigneeName,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrAssignmentNotFound
	}
	return r.GetAssignment(ctx, a.ID)
}

// DeleteAssignment refuses to remove an assignment while commitments point
// at it (protect, not cascade).
func (r *EnvelopeRepository) DeleteAssignment(ctx context.Context, id int64) error {
	var count int64
	err := r.Read(ctx).Model(&PledgeCommitmentEntity{}).
		Where("assignment_id = ?", id).Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrAssignmentInUse
	}

	result := r.Write(ctx).Where("id = ?", id).Delete(&EnvelopeAssignmentEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAssignmentNotFound
	}
	return nil
}

func (r *EnvelopeRepository) ListAssignments(ctx context.Context) ([]*model.EnvelopeAssignment, error) {
	var entities []*EnvelopeAssignmentEntity
	if err := r.Read(ctx).Order("envelope_number ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return toAssignmentModels(entities), nil
}

/* ------------------------------ Commitments ------------------------------ */

func (r *EnvelopeRepository) CreatePledge(ctx context.Context, p *model.PledgeCommitment) (*model.PledgeCommitment, error) {
	entity := toPledgeEntity(p)

	if err := r.Write(ctx).Create(entity).Error; err != nil {
		return nil, err
	}

	return r.GetPledge(ctx, entity.ID)
}

func (r *EnvelopeRepository) GetPledge(ctx context.Context, id int64) (*model.PledgeCommitment, error) {
	var entity PledgeCommitmentEntity
	err := r.Read(ctx).Preload("Assignment").Where("id = ?", id).First(&entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, err
	}
	return toPledgeModel(&entity), nil
}

func (r *EnvelopeRepository) UpdatePledge(ctx context.Context, p *model.PledgeCommitment) (*model.PledgeCommitment, error) {
	entity := toPledgeEntity(p)

	result := r.Write(ctx).Model(&PledgeCommitmentEntity{}).Where("id = ?", entity.ID).
		Updates(map[string]interface{}{
			"date":          entity.Date,
			"assignment_id": entity.AssignmentID,
			"amount":        entity.Amount,
			"balance":       entity.Balance,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrEntryNotFound
	}
	return r.GetPledge(ctx, entity.ID)
}

func (r *EnvelopeRepository) DeletePledge(ctx context.Context, id int64) error {
	result := r.Write(ctx).Where("id = ?", id).Delete(&PledgeCommitmentEntity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (r *EnvelopeRepository) ListPledges(ctx context.Context, f model.PledgeCommitmentFilter) ([]*model.PledgeCommitment, int64, error) {
	q := r.Read(ctx).Model(&PledgeCommitmentEntity{})

	if f.AssignmentID != nil {
		q = q.Where("assignment_id = ?", *f.AssignmentID)
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

	var entities []*PledgeCommitmentEntity
	if err := q.Preload("Assignment").Order(order).Limit(limit).Offset(offset).Find(&entities).Error; err != nil {
		return nil, 0, err
	}

	return toPledgeModels(entities), total, nil
}
