package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/pkg/pg"
)

var (
	// ErrCatalogNotFound is returned when a lookup row does not exist.
	ErrCatalogNotFound = errors.New("catalog entry not found")
	// ErrCatalogInUse is returned when a lookup row still has dependents.
	ErrCatalogInUse = errors.New("catalog entry is referenced and cannot be deleted")
	// ErrDuplicateCatalogName is returned on a unique-name conflict.
	ErrDuplicateCatalogName = errors.New("catalog entry with this name already exists")
	// ErrUnknownCatalogKind is returned for a kind outside the registry.
	ErrUnknownCatalogKind = errors.New("unknown catalog kind")
)

type CatalogRepository struct {
	*pg.DB
}

func NewCatalogRepository(db *pg.DB) *CatalogRepository {
	return &CatalogRepository{
		db,
	}
}

func (r *CatalogRepository) schema(kind model.CatalogKind) (catalogSchema, error) {
	s, ok := catalogTables[kind]
	if !ok {
		return catalogSchema{}, fmt.Errorf("%w: %s", ErrUnknownCatalogKind, kind)
	}
	return s, nil
}

func (r *CatalogRepository) Create(ctx context.Context, kind model.CatalogKind, name string) (*model.CatalogEntry, error) {
	s, err := r.schema(kind)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := r.Read(ctx).Table(s.table).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateCatalogName
	}

	row := &catalogRow{Name: name}
	if err := r.Write(ctx).Table(s.table).Create(row).Error; err != nil {
		return nil, err
	}
	return toCatalogModel(row), nil
}

// GetOrCreate is the insert-if-absent primitive the seed bootstrap relies on.
// The bool reports whether a row was created.
func (r *CatalogRepository) GetOrCreate(ctx context.Context, kind model.CatalogKind, name string) (*model.CatalogEntry, bool, error) {
	s, err := r.schema(kind)
	if err != nil {
		return nil, false, err
	}

	var existing catalogRow
	err = r.Read(ctx).Table(s.table).Where("name = ?", name).First(&existing).Error
	if err == nil {
		return toCatalogModel(&existing), false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	row := &catalogRow{Name: name}
	if err := r.Write(ctx).Table(s.table).Create(row).Error; err != nil {
		return nil, false, err
	}
	return toCatalogModel(row), true, nil
}

func (r *CatalogRepository) Get(ctx context.Context, kind model.CatalogKind, id int64) (*model.CatalogEntry, error) {
	s, err := r.schema(kind)
	if err != nil {
		return nil, err
	}

	var row catalogRow
	err = r.Read(ctx).Table(s.table).Where("id = ?", id).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCatalogNotFound
		}
		return nil, err
	}
	return toCatalogModel(&row), nil
}

// Exists reports whether a lookup row with the given id is present. The
// services use it for referential-key existence checks before a write.
func (r *CatalogRepository) Exists(ctx context.Context, kind model.CatalogKind, id int64) (bool, error) {
	s, err := r.schema(kind)
	if err != nil {
		return false, err
	}

	var count int64
	if err := r.Read(ctx).Table(s.table).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *CatalogRepository) List(ctx context.Context, kind model.CatalogKind) ([]*model.CatalogEntry, error) {
	s, err := r.schema(kind)
	if err != nil {
		return nil, err
	}

	var rows []*catalogRow
	if err := r.Read(ctx).Table(s.table).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	return toCatalogModels(rows), nil
}

func (r *CatalogRepository) Update(ctx context.Context, kind model.CatalogKind, id int64, name string) (*model.CatalogEntry, error) {
	s, err := r.schema(kind)
	if err != nil {
		return nil, err
	}

	var count int64
	if err := r.Read(ctx).Table(s.table).Where("name = ? AND id <> ?", name, id).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicateCatalogName
	}

	result := r.Write(ctx).Table(s.table).Where("id = ?", id).
		Updates(map[string]interface{}{"name": name, "updated_at": gorm.Expr("CURRENT_TIMESTAMP")})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrCatalogNotFound
	}
	return r.Get(ctx, kind, id)
}

// Delete enforces the protect-on-delete policy: the row is removed only when
// nothing references it, otherwise ErrCatalogInUse with no side effects.
func (r *CatalogRepository) Delete(ctx context.Context, kind model.CatalogKind, id int64) error {
	s, err := r.schema(kind)
	if err != nil {
		return err
	}

	referenced, err := r.referenced(ctx, s, id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrCatalogInUse
	}

	result := r.Write(ctx).Table(s.table).Where("id = ?", id).Delete(&catalogRow{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCatalogNotFound
	}
	return nil
}

// DeleteByNames removes exactly the rows whose names are listed, used by the
// seed rollback. Referenced rows still refuse deletion.
func (r *CatalogRepository) DeleteByNames(ctx context.Context, kind model.CatalogKind, names []string) error {
	s, err := r.schema(kind)
	if err != nil {
		return err
	}

	var rows []*catalogRow
	if err := r.Read(ctx).Table(s.table).Where("name IN ?", names).Find(&rows).Error; err != nil {
		return err
	}

	for _, row := range rows {
		referenced, err := r.referenced(ctx, s, row.ID)
		if err != nil {
			return err
		}
		if referenced {
			return fmt.Errorf("%w: %s %q", ErrCatalogInUse, kind, row.Name)
		}
	}

	if len(rows) == 0 {
		return nil
	}
	return r.Write(ctx).Table(s.table).Where("name IN ?", names).Delete(&catalogRow{}).Error
}

func (r *CatalogRepository) referenced(ctx context.Context, s catalogSchema, id int64) (bool, error) {
	for _, dep := range s.dependents {
		var count int64
		err := r.Read(ctx).Table(dep.table).Where(dep.column+" = ?", id).Count(&count).Error
		if err != nil {
			return false, err
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
