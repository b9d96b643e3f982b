// Package service synthesizes the aggregate rows behind every activity
// endpoint: canonicalize the filters, resolve the breakdown, draw the rows,
// then apply disclosure control and the endpoint's column renames.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"mcomock/internal/activity/models"
	"mcomock/internal/platform/metrics"
	"mcomock/internal/query"
	"mcomock/internal/synth"
	dErrors "mcomock/pkg/domain-errors"
)

// Service handles activity requests.
type Service struct {
	engine  *synth.Engine
	log     *slog.Logger
	metrics *metrics.Metrics
}

// New builds the service. The engine is mandatory.
func New(engine *synth.Engine, log *slog.Logger, m *metrics.Metrics) (*Service, error) {
	if engine == nil {
		return nil, errors.New("synthesis engine is required")
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{engine: engine, log: log, metrics: m}, nil
}

// Handle runs one endpoint call end to end and returns the response rows.
func (s *Service) Handle(ctx context.Context, req models.Request) ([]*synth.Row, error) {
	contract, ok := models.Contracts[req.Endpoint]
	if !ok {
		return nil, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("unknown endpoint %q", req.Endpoint))
	}

	fs, err := query.Canonicalize(req.Raw)
	if err != nil {
		return nil, err
	}
	if req.SimulateEmpty {
		return nil, dErrors.New(dErrors.CodeNoResult, "no data for the requested criteria")
	}

	var spec query.Spec
	switch req.Endpoint {
	case models.EndpointTxRecours, models.EndpointDernierTrans:
		// these endpoints have a fixed layout and ignore ventilation
	default:
		spec, err = query.Resolve(req.Var, query.ResolveOptions{
			AllowNoVentilationToken: contract.AllowNoVentilationToken,
			Disallowed:              contract.Disallowed,
			AgeCuts:                 req.AgeCuts,
		})
		if err != nil {
			return nil, err
		}
	}

	seed := s.engine.RequestSeed(s.fingerprint(req, fs))

	var rows []*synth.Row
	switch req.Endpoint {
	case models.EndpointResume:
		rows = s.resumeRows(seed, fs, spec, req)
	case models.EndpointResumePrecAnnee:
		rows = s.multiYearRows(seed, fs, spec, req)
	case models.EndpointDiagAssoc:
		rows = s.diagAssocRows(seed, fs, spec, req)
	case models.EndpointUM:
		rows = s.umRows(seed, fs, spec, req)
	case models.EndpointActes:
		rows = s.actesRows(seed, fs, spec, req)
	case models.EndpointDMIMed:
		rows = s.dmiMedRows(seed, fs, spec, req)
	case models.EndpointTxRecours:
		rows = s.txRecoursRows(seed, fs, req)
	case models.EndpointDernierTrans:
		rows = s.dernierTransRows(seed, fs)
	}

	rows = synth.SampleRows(s.engine.RowRand(seed, samplingIndex), rows)

	if n := synth.Redact(rows, contract.Strategy); n > 0 {
		s.metrics.AddRedactions(contract.Strategy.String(), n)
		s.log.DebugContext(ctx, "rows redacted",
			"endpoint", req.Endpoint, "strategy", contract.Strategy.String(), "rows", n)
	}

	for from, to := range contract.Renames {
		for _, row := range rows {
			row.Rename(from, to)
		}
	}

	s.metrics.AddRows(len(rows))
	return rows, nil
}

// Row indices reserved for request-level draws, clear of the per-row range.
const (
	samplingIndex = -1
	totalIndex    = -2
)

// fingerprint identifies the request for seeding. Everything that changes the
// synthesized values participates; presentation toggles do not.
func (s *Service) fingerprint(req models.Request, fs *query.FilterSet) string {
	return req.Endpoint + "|" + fs.Fingerprint() +
		"|var=" + req.Var +
		"|trancheage=" + req.AgeCuts +
		"|geo=" + req.GeoLevel
}

// yearOf returns the canonical discharge year as a full four-digit year.
func yearOf(fs *query.FilterSet) int {
	yy, _ := strconv.Atoi(fs.Year())
	return 2000 + yy
}
