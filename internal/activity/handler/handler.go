// Package handler exposes the activity endpoints over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"mcomock/internal/activity/models"
	"mcomock/internal/catalog"
	"mcomock/internal/platform/metrics"
	"mcomock/internal/platform/middleware"
	"mcomock/internal/query"
	"mcomock/internal/synth"
	dErrors "mcomock/pkg/domain-errors"
	"mcomock/pkg/platform/httputil"
)

// Servicer runs one activity request.
type Servicer interface {
	Handle(ctx context.Context, req models.Request) ([]*synth.Row, error)
}

// Handler serves the activity routes.
type Handler struct {
	log     *slog.Logger
	service Servicer
	metrics *metrics.Metrics
}

func New(log *slog.Logger, service Servicer, m *metrics.Metrics) *Handler {
	return &Handler{log: log, service: service, metrics: m}
}

const requestTimeout = 15 * time.Second

// Register mounts the activity routes with the shared middleware chain.
func (h *Handler) Register(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Recovery(h.log))
		r.Use(middleware.RequestID)
		r.Use(middleware.Logger(h.log))
		r.Use(middleware.Timeout(requestTimeout))

		for _, ep := range []string{
			models.EndpointResume,
			models.EndpointResumePrecAnnee,
			models.EndpointDiagAssoc,
			models.EndpointUM,
			models.EndpointActes,
			models.EndpointDMIMed,
			models.EndpointTxRecours,
			models.EndpointDernierTrans,
		} {
			endpoint := ep
			r.Get("/"+endpoint, func(w http.ResponseWriter, req *http.Request) {
				h.serve(w, req, endpoint)
			})
		}

		r.Get("/dimensions", h.listDimensions)
	})
}

// listDimensions enumerates the breakdown dimensions accepted by the var
// parameter, in catalog order.
func (h *Handler) listDimensions(w http.ResponseWriter, r *http.Request) {
	keys := catalog.Keys()
	rows := make([]*synth.Row, 0, len(keys))
	for _, key := range keys {
		d, ok := catalog.Lookup(key)
		if !ok {
			continue
		}
		row := synth.NewRow()
		row.Set("var", d.Key)
		row.Set("libelle", d.Label)
		rows = append(rows, row)
	}
	h.metrics.ObserveRequest("dimensions", http.StatusOK)
	httputil.WriteJSON(w, http.StatusOK, rows)
}

func (h *Handler) serve(w http.ResponseWriter, r *http.Request, endpoint string) {
	q := r.URL.Query()

	raw := make(map[string]string)
	for _, name := range query.ParamNames() {
		if q.Has(name) {
			raw[name] = q.Get(name)
		}
	}

	req := models.Request{
		Endpoint:        endpoint,
		Raw:             raw,
		Var:             q.Get("var"),
		AgeCuts:         q.Get("trancheage"),
		GeoLevel:        q.Get("type_geo_tx_recours"),
		IncludePatients: isTrue(q.Get("bool_nb_pat")),
		SimulateEmpty:   isTrue(q.Get("simulate_vide")),
		SimulateSmall:   isTrue(q.Get("simulate_petit_effectif")),
	}

	rows, err := h.service.Handle(r.Context(), req)
	if err != nil {
		status := httputil.StatusOf(dErrors.CodeOf(err))
		h.metrics.ObserveRequest(endpoint, status)
		if status >= http.StatusInternalServerError {
			h.log.ErrorContext(r.Context(), "request failed",
				"request_id", middleware.GetRequestID(r.Context()),
				"endpoint", endpoint, "error", err)
		}
		httputil.WriteError(w, err)
		return
	}

	h.metrics.ObserveRequest(endpoint, http.StatusOK)
	httputil.WriteJSON(w, http.StatusOK, rows)
}

func isTrue(v string) bool {
	return strings.EqualFold(v, "true")
}
