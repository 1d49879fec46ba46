package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hftecno/treasury/internal/model"
	"github.com/hftecno/treasury/internal/services"
)

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Create(ctx context.Context, kind model.CatalogKind, p model.CatalogCreateRequest) (*model.CatalogEntry, error) {
	args := m.Called(ctx, kind, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogEntry), args.Error(1)
}

func (m *MockCatalogService) Get(ctx context.Context, kind model.CatalogKind, id int64) (*model.CatalogEntry, error) {
	args := m.Called(ctx, kind, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogEntry), args.Error(1)
}

func (m *MockCatalogService) List(ctx context.Context, kind model.CatalogKind) ([]*model.CatalogEntry, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.CatalogEntry), args.Error(1)
}

func (m *MockCatalogService) Update(ctx context.Context, kind model.CatalogKind, id int64, p model.CatalogCreateRequest) (*model.CatalogEntry, error) {
	args := m.Called(ctx, kind, id, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.CatalogEntry), args.Error(1)
}

func (m *MockCatalogService) Delete(ctx context.Context, kind model.CatalogKind, id int64) error {
	args := m.Called(ctx, kind, id)
	return args.Error(0)
}

func setupCatalogRouter(svc CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	g := e.Group("/api/v1")
	RegisterCatalogRoutes(g, NewCatalogHandler(svc))
	return e
}

func TestCatalogHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("Create", mock.Anything, model.CatalogDueStatus, model.CatalogCreateRequest{Name: "Arrived"}).
			Return(&model.CatalogEntry{ID: 1, Name: "Arrived"}, nil)

		e := setupCatalogRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalogs/due_status",
			bytes.NewBufferString(`{"name":"Arrived"}`))
		e.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)
		var entry model.CatalogEntry
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
		assert.Equal(t, "Arrived", entry.Name)
	})

	t.Run("validation failure is 422 with field list", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("Create", mock.Anything, model.CatalogDueStatus, model.CatalogCreateRequest{Name: " "}).
			Return(nil, &model.ValidationError{Fields: []model.FieldError{
				{Code: model.ErrCodeRequired, Field: "name", Message: "name is required"},
			}})

		e := setupCatalogRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalogs/due_status",
			bytes.NewBufferString(`{"name":" "}`))
		e.ServeHTTP(w, req)

		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		var resp errorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp.Fields, 1)
		assert.Equal(t, model.ErrCodeRequired, resp.Fields[0].Code)
		assert.Equal(t, "name", resp.Fields[0].Field)
	})

	t.Run("malformed JSON is 400", func(t *testing.T) {
		svc := new(MockCatalogService)
		e := setupCatalogRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/catalogs/due_status",
			bytes.NewBufferString(`{`))
		e.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Create")
	})
}

func TestCatalogHandler_Delete(t *testing.T) {
	t.Run("in use is 409", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("Delete", mock.Anything, model.CatalogExpenseConcept, int64(3)).
			Return(services.ErrCatalogInUse)

		e := setupCatalogRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/catalogs/expense_concept/3", nil)
		e.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("missing is 404", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("Delete", mock.Anything, model.CatalogExpenseConcept, int64(4)).
			Return(services.ErrCatalogNotFound)

		e := setupCatalogRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/catalogs/expense_concept/4", nil)
		e.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("gone is 204", func(t *testing.T) {
		svc := new(MockCatalogService)
		svc.On("Delete", mock.Anything, model.CatalogExpenseConcept, int64(5)).Return(nil)

		e := setupCatalogRouter(svc)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/catalogs/expense_concept/5", nil)
		e.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("non-numeric id is 400", func(t *testing.T) {
		svc := new(MockCatalogService)
		e := setupCatalogRouter(svc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/catalogs/expense_concept/abc", nil)
		e.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Delete")
	})
}
