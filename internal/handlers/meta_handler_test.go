package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hftecno/treasury/internal/admin"
)

func setupMetaRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	g := e.Group("/admin")
	RegisterMetaRoutes(g, NewMetaHandler())
	return e
}

func TestMetaHandler_List(t *testing.T) {
	e := setupMetaRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/meta", nil)
	e.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var ds []admin.Descriptor
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ds))
	assert.Len(t, ds, len(admin.Descriptors))

	// lookup tables come first, in menu order
	assert.Equal(t, "due_status", ds[0].Entity)
}

func TestMetaHandler_Get(t *testing.T) {
	e := setupMetaRouter()

	t.Run("pledge descriptor exposes derived read-only fields", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/meta/pledge_commitment", nil)
		e.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var d admin.Descriptor
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
		assert.Contains(t, d.ReadonlyFields, "envelope_number")
		assert.Contains(t, d.ReadonlyFields, "assignee_name")
		assert.Contains(t, d.ListDisplay, "envelope_number")
	})

	t.Run("membership descriptor enumerates the months", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/meta/membership_fee_record", nil)
		e.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		var d admin.Descriptor
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
		months := d.FieldChoices["month"]
		require.Len(t, months, 12)
		assert.Equal(t, admin.Choice{Value: 1, Label: "January"}, months[0])
		assert.Equal(t, admin.Choice{Value: 12, Label: "December"}, months[11])
	})

	t.Run("unknown entity is 404", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/admin/meta/nonexistent", nil)
		e.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
