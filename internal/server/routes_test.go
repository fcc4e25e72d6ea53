package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleRegistersRouteAndDoc(t *testing.T) {
	mux := http.NewServeMux()
	rr := &RouteRegistry{}

	Handle(mux, rr, "GET /api/ping", "liveness ping", "", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	docs := rr.List()
	require.Len(t, docs, 1)
	assert.Equal(t, "GET", docs[0].Method)
	assert.Equal(t, "/api/ping", docs[0].Pattern)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDocsHandler(t *testing.T) {
	rr := &RouteRegistry{}
	rr.Add(RouteDoc{Method: "POST", Pattern: "/api/jobs", Summary: "create a job"})

	rec := httptest.NewRecorder()
	rr.Docs(rec, httptest.NewRequest(http.MethodGet, "/api/routes", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/api/jobs")
}
