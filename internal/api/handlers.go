// Package api is the HTTP transport: request context extraction, the
// declarative route table, and thin handlers delegating to the services
// layer. Handlers never return non-200 statuses; see the respond package.
package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ots-platform/ibe-mock/internal/api/respond"
	"github.com/ots-platform/ibe-mock/internal/model"
	"github.com/ots-platform/ibe-mock/internal/reqctx"
	"github.com/ots-platform/ibe-mock/internal/services"
	"github.com/ots-platform/ibe-mock/internal/store"
)

const maxBodyBytes = 1 << 20

// Handler bundles the dependencies the endpoints need.
type Handler struct {
	svc   *services.Service
	store *store.Store
}

// NewHandler wires the handlers to a constructed service and store.
func NewHandler(svc *services.Service, st *store.Store) *Handler {
	return &Handler{svc: svc, store: st}
}

// begin runs the shared request prelude: header context, path-driven entity
// auto-creation, and the warnings both produce.
func (h *Handler) begin(r *http.Request) (*reqctx.Context, map[string]string, []model.Warning) {
	rc := reqctx.FromRequest(r)
	vars := mux.Vars(r)
	warnings := append([]model.Warning{}, rc.Warnings...)
	warnings = append(warnings, h.store.EnsureFromRequest(rc, vars)...)
	return rc, vars, warnings
}

// decodeBody parses the JSON body, tolerating absent or malformed input:
// a bad body is an empty request, never an error.
func decodeBody(r *http.Request) map[string]any {
	if r.Body == nil {
		return map[string]any{}
	}
	defer r.Body.Close()
	var m map[string]any
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&m); err != nil || m == nil {
		return map[string]any{}
	}
	return m
}

func merge(warnings []model.Warning, more []model.Warning) []model.Warning {
	return append(warnings, more...)
}

// Health responds to liveness probes outside the envelope contract.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// Stub answers a known-but-unimplemented endpoint with an empty success
// envelope plus a NOT_IMPLEMENTED warning, so UI flows degrade gracefully.
func (h *Handler) Stub(w http.ResponseWriter, r *http.Request) {
	rc, _, warnings := h.begin(r)
	_ = rc
	warnings = append(warnings, model.NewWarning(model.WarnNotImplemented,
		"Endpoint is known but not implemented.",
		map[string]any{"path": r.URL.Path, "method": r.Method}))
	respond.WriteOK(w, map[string]any{}, warnings)
}

// NotFound catches every unknown /api/v1 path the same way as a stub.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	rc := reqctx.FromRequest(r)
	warnings := append([]model.Warning{}, rc.Warnings...)
	warnings = append(warnings, model.NewWarning(model.WarnNotImplemented,
		"Unknown endpoint.",
		map[string]any{"path": r.URL.Path, "method": r.Method}))
	respond.WriteOK(w, map[string]any{}, warnings)
}
