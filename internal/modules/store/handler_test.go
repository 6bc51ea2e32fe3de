package store

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter() *chi.Mux {
	router := chi.NewRouter()
	NewHandler(NewService(newMemRepo())).RegisterRoutes(router)
	return router
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestStoreLifecycleOverHTTP(t *testing.T) {
	router := newTestRouter()

	// create
	rec := doJSON(t, router, http.MethodPost, "/api/v1/stores", map[string]string{
		"name":    "Downtown",
		"address": "1 Main St",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created Store
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&created))
	assert.Equal(t, "Downtown", created.Name)
	assert.NotEqual(t, uuid.Nil, created.ID)

	// read back
	rec = doJSON(t, router, http.MethodGet, "/api/v1/stores/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// read by name
	rec = doJSON(t, router, http.MethodGet, "/api/v1/stores/name/Downtown", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// partial update keeps the name
	rec = doJSON(t, router, http.MethodPut, "/api/v1/stores/"+created.ID.String(),
		map[string]string{"address": "2 Side St"})
	require.Equal(t, http.StatusOK, rec.Code)
	var updated Store
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&updated))
	assert.Equal(t, "Downtown", updated.Name)
	assert.Equal(t, "2 Side St", updated.Address)

	// delete, then the record is gone
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/stores/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = doJSON(t, router, http.MethodGet, "/api/v1/stores/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	// second delete is 404, not a silent success
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/stores/"+created.ID.String(), nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStoreHandlerErrors(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       interface{}
		wantStatus int
	}{
		{"create without name", http.MethodPost, "/api/v1/stores", map[string]string{"description": "x"}, 422},
		{"malformed id", http.MethodGet, "/api/v1/stores/not-a-uuid", nil, 422},
		{"missing id", http.MethodGet, "/api/v1/stores/" + uuid.NewString(), nil, 404},
		{"update missing", http.MethodPut, "/api/v1/stores/" + uuid.NewString(), map[string]string{"name": "X"}, 404},
		{"delete missing", http.MethodDelete, "/api/v1/stores/" + uuid.NewString(), nil, 404},
		{"bad limit", http.MethodGet, "/api/v1/stores?limit=-5", nil, 422},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newTestRouter()
			rec := doJSON(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestCreateDuplicateNameIsConflict(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodPost, "/api/v1/stores", map[string]string{"name": "Downtown"})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, router, http.MethodPost, "/api/v1/stores", map[string]string{"name": "Downtown"})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	router := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stores", bytes.NewBufferString("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListEmptyReturnsEmptyArray(t *testing.T) {
	router := newTestRouter()

	rec := doJSON(t, router, http.MethodGet, "/api/v1/stores", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}
