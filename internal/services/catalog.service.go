package services

import (
	"context"
	"errors"
	"strings"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/internal/repository"
	"github.com/hftecno/treasury/pkg/prom"
)

var (
	ErrUnknownCatalogKind = errors.New("unknown catalog kind")
	ErrCatalogNotFound    = errors.New("catalog entry not found")
	ErrCatalogInUse       = errors.New("catalog entry is still referenced")
)

type CatalogRepository interface {
	Create(ctx context.Context, kind model.CatalogKind, name string) (*model.CatalogEntry, error)
	Get(ctx context.Context, kind model.CatalogKind, id int64) (*model.CatalogEntry, error)
	Exists(ctx context.Context, kind model.CatalogKind, id int64) (bool, error)
	List(ctx context.Context, kind model.CatalogKind) ([]*model.CatalogEntry, error)
	Update(ctx context.Context, kind model.CatalogKind, id int64, name string) (*model.CatalogEntry, error)
	Delete(ctx context.Context, kind model.CatalogKind, id int64) error
}

type CatalogService struct {
	repo CatalogRepository
}

func NewCatalogService(repo CatalogRepository) *CatalogService {
	return &CatalogService{repo: repo}
}

func (s *CatalogService) Create(ctx context.Context, kind model.CatalogKind, p model.CatalogCreateRequest) (*model.CatalogEntry, error) {
	if !kind.Valid() {
		return nil, ErrUnknownCatalogKind
	}
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, string(kind), "create")
		return nil, err
	}

	entry, err := s.repo.Create(ctx, kind, strings.TrimSpace(p.Name))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCatalogName) {
			return nil, &model.ValidationError{Fields: []model.FieldError{{
				Code: model.ErrCodeUniqueViolation, Field: "name", Message: "name must be unique",
			}}}
		}
		return nil, err
	}

	prom.Inc(prom.MetricWritesTotal, string(kind), "create")
	return entry, nil
}

func (s *CatalogService) Get(ctx context.Context, kind model.CatalogKind, id int64) (*model.CatalogEntry, error) {
	if !kind.Valid() {
		return nil, ErrUnknownCatalogKind
	}
	entry, err := s.repo.Get(ctx, kind, id)
	if errors.Is(err, repository.ErrCatalogNotFound) {
		return nil, ErrCatalogNotFound
	}
	return entry, err
}

func (s *CatalogService) List(ctx context.Context, kind model.CatalogKind) ([]*model.CatalogEntry, error) {
	if !kind.Valid() {
		return nil, ErrUnknownCatalogKind
	}
	return s.repo.List(ctx, kind)
}

func (s *CatalogService) Update(ctx context.Context, kind model.CatalogKind, id int64, p model.CatalogCreateRequest) (*model.CatalogEntry, error) {
	if !kind.Valid() {
		return nil, ErrUnknownCatalogKind
	}
	if err := p.Validate(); err != nil {
		prom.Inc(prom.MetricValidationRejections, string(kind), "update")
		return nil, err
	}

	entry, err := s.repo.Update(ctx, kind, id, strings.TrimSpace(p.Name))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCatalogNotFound):
			return nil, ErrCatalogNotFound
		case errors.Is(err, repository.ErrDuplicateCatalogName):
			return nil, &model.ValidationError{Fields: []model.FieldError{{
				Code: model.ErrCodeUniqueViolation, Field: "name", Message: "name must be unique",
			}}}
		}
		return nil, err
	}

	prom.Inc(prom.MetricWritesTotal, string(kind), "update")
	return entry, nil
}

// Delete applies the protect-on-delete policy: a referenced entry is refused,
// nothing cascades.
func (s *CatalogService) Delete(ctx context.Context, kind model.CatalogKind, id int64) error {
	if !kind.Valid() {
		return ErrUnknownCatalogKind
	}

	err := s.repo.Delete(ctx, kind, id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrCatalogNotFound):
			return ErrCatalogNotFound
		case errors.Is(err, repository.ErrCatalogInUse):
			prom.Inc(prom.MetricIntegrityConflicts, string(kind), "delete")
			return ErrCatalogInUse
		}
		return err
	}

	prom.Inc(prom.MetricWritesTotal, string(kind), "delete")
	return nil
}
