package services

import (
	"context"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/prom"
)

type DueItemRepository interface {
	Create(ctx context.Context, item *model.DueItem) (*model.DueItem, error)
	Get(ctx context.Context, id int64) (*model.DueItem, error)
	Update(ctx context.Context, item *model.DueItem) (*model.DueItem, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, f model.DueItemFilter) ([]*model.DueItem, int64, error)
}

type DueService struct {
	repo     DueItemRepository
	catalogs CatalogRepository
}

func NewDueService(repo DueItemRepository, catalogs CatalogRepository) *DueService {
	return &DueService{repo: repo, catalogs: catalogs}
}

// checkRefs verifies every lookup the item points at before the write; a
// missing reference is a field error, not a storage failure.
func (s *DueService) checkRefs(ctx context.Context, p model.DueItemCreateRequest) error {
	refs := []struct {
		kind  model.CatalogKind
		field string
		id    int64
	}{
		{model.CatalogExpenseConcept, "concept_id", p.ConceptID},
		{model.CatalogLocationDescription, "location_id", p.LocationID},
		{model.CatalogDueStatus, "status_id", p.StatusID},
		{model.CatalogPaymentSituation, "situation_id", p.SituationID},
	}
	for _, ref := range refs {
		ok, err := s.catalogs.Exists(ctx, ref.kind, ref.id)
		if err != nil {
			return err
		}
		if !ok {
			return model.RefNotFound(ref.field)
		}
	}
	return nil
}

func (s *DueService) Create(ctx context.Context, p model.DueItemCreateRequest) (*model.DueItem, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "due_item", "create")
		return nil, err
	}
	if err := s.checkRefs(ctx, p); err != nil {
		prom.Inc(prom.MetricValidationRejections, "due_item", "create")
		return nil, err
	}

	item, err := s.repo.Create(ctx, &model.DueItem{
		Date:        p.Date,
		DueDate:     p.DueDate,
		ConceptID:   p.ConceptID,
		LocationID:  p.LocationID,
		Amount:      p.Amount,
		Note:        p.Note,
		StatusID:    p.StatusID,
		SituationID: p.SituationID,
	})
	if err != nil {
		return nil, err
	}

	prom.Inc(prom.MetricWritesTotal, "due_item", "create")
	return item, nil
}

func (s *DueService) Get(ctx context.Context, id int64) (*model.DueItem, error) {
	item, err := s.repo.Get(ctx, id)
	return item, mapEntryErr(err)
}

func (s *DueService) Update(ctx context.Context, id int64, p model.DueItemCreateRequest) (*model.DueItem, error) {
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, "due_item", "update")
		return nil, err
	}
	if err := s.checkRefs(ctx, p); err != nil {
		prom.Inc(prom.MetricValidationRejections, "due_item", "update")
		return nil, err
	}

	item, err := s.repo.Update(ctx, &model.DueItem{
		ID:          id,
		Date:        p.Date,
		DueDate:     p.DueDate,
		ConceptID:   p.ConceptID,
		LocationID:  p.LocationID,
		Amount:      p.Amount,
		Note:        p.Note,
		StatusID:    p.StatusID,
		SituationID: p.SituationID,
	})
	if err != nil {
		return nil, mapEntryErr(err)
	}

	prom.Inc(prom.MetricWritesTotal, "due_item", "update")
	return item, nil
}

func (s *DueService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return mapEntryErr(err)
	}
	prom.Inc(prom.MetricWritesTotal, "due_item", "delete")
	return nil
}

func (s *DueService) List(ctx context.Context, f model.DueItemFilter) ([]*model.DueItem, int64, error) {
	return s.repo.List(ctx, f)
}
