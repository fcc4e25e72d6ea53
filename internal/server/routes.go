// Package server keeps the API route registry used to self-document
// endpoints at /api/routes.
package server

import (
	"encoding/json"
	"net/http"
	"strings"
)

type RouteDoc struct {
	Method      string `json:"method"`
	Pattern     string `json:"pattern"`
	Summary     string `json:"summary,omitempty"`
	ExampleBody string `json:"example_body,omitempty"`
}

type RouteRegistry struct {
	routes []RouteDoc
}

func (rr *RouteRegistry) Add(doc RouteDoc) {
	rr.routes = append(rr.routes, doc)
}

func (rr *RouteRegistry) List() []RouteDoc {
	out := make([]RouteDoc, len(rr.routes))
	copy(out, rr.routes)
	return out
}

// Docs serves the registered route list as JSON.
func (rr *RouteRegistry) Docs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(map[string]any{"routes": rr.List()})
}

// Handle registers a handler on the mux and records its doc entry.
// methodAndPattern uses the mux form, e.g. "POST /api/tasks/{id}/toggle".
func Handle(mux *http.ServeMux, rr *RouteRegistry, methodAndPattern, summary, exampleBody string, h http.HandlerFunc) {
	parts := strings.SplitN(methodAndPattern, " ", 2)
	method, pattern := parts[0], ""
	if len(parts) == 2 {
		pattern = parts[1]
	}
	rr.Add(RouteDoc{Method: method, Pattern: pattern, Summary: summary, ExampleBody: exampleBody})
	mux.HandleFunc(methodAndPattern, h)
}
