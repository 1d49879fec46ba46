package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hftecno/treasury/internal/model"
)

type MockDueItemRepository struct {
	mock.Mock
}

func (m *MockDueItemRepository) Create(ctx context.Context, item *model.DueItem) (*model.DueItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DueItem), args.Error(1)
}

func (m *MockDueItemRepository) Get(ctx context.Context, id int64) (*model.DueItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DueItem), args.Error(1)
}

func (m *MockDueItemRepository) Update(ctx context.Context, item *model.DueItem) (*model.DueItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DueItem), args.Error(1)
}

func (m *MockDueItemRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockDueItemRepository) List(ctx context.Context, f model.DueItemFilter) ([]*model.DueItem, int64, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*model.DueItem), args.Get(1).(int64), args.Error(2)
}

func validDueItemRequest() model.DueItemCreateRequest {
	return model.DueItemCreateRequest{
		Date:        time.Now(),
		DueDate:     time.Now().AddDate(0, 0, 14),
		ConceptID:   1,
		LocationID:  2,
		Amount:      decimal.NewFromInt(120),
		StatusID:    3,
		SituationID: 4,
	}
}

func TestDueService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("all references verified before the write", func(t *testing.T) {
		repo := new(MockDueItemRepository)
		catalogs := new(MockCatalogRepository)
		catalogs.On("Exists", ctx, model.CatalogExpenseConcept, int64(1)).Return(true, nil)
		catalogs.On("Exists", ctx, model.CatalogLocationDescription, int64(2)).Return(true, nil)
		catalogs.On("Exists", ctx, model.CatalogDueStatus, int64(3)).Return(true, nil)
		catalogs.On("Exists", ctx, model.CatalogPaymentSituation, int64(4)).Return(true, nil)
		repo.On("Create", ctx, mock.AnythingOfType("*model.DueItem")).
			Return(&model.DueItem{ID: 10}, nil)

		svc := NewDueService(repo, catalogs)
		item, err := svc.Create(ctx, validDueItemRequest())
		require.NoError(t, err)
		assert.EqualValues(t, 10, item.ID)
		catalogs.AssertExpectations(t)
	})

	t.Run("missing status is a field error, not a write", func(t *testing.T) {
		repo := new(MockDueItemRepository)
		catalogs := new(MockCatalogRepository)
		catalogs.On("Exists", ctx, model.CatalogExpenseConcept, int64(1)).Return(true, nil)
		catalogs.On("Exists", ctx, model.CatalogLocationDescription, int64(2)).Return(true, nil)
		catalogs.On("Exists", ctx, model.CatalogDueStatus, int64(3)).Return(false, nil)

		svc := NewDueService(repo, catalogs)
		_, err := svc.Create(ctx, validDueItemRequest())

		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, model.ErrCodeRefNotFound, verr.Fields[0].Code)
		assert.Equal(t, "status_id", verr.Fields[0].Field)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("invalid payload never consults catalogs", func(t *testing.T) {
		repo := new(MockDueItemRepository)
		catalogs := new(MockCatalogRepository)

		svc := NewDueService(repo, catalogs)
		p := validDueItemRequest()
		p.Amount = decimal.NewFromInt(-5)
		_, err := svc.Create(ctx, p)

		var verr *model.ValidationError
		require.ErrorAs(t, err, &verr)
		catalogs.AssertNotCalled(t, "Exists")
		repo.AssertNotCalled(t, "Create")
	})
}
