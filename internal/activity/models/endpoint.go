// Package models declares the activity endpoints, their per-endpoint
// contracts, and the request shape the handler passes to the service.
package models

import "mcomock/internal/synth"

// Endpoint names, matching the URL path segments.
const (
	EndpointResume          = "resume"
	EndpointResumePrecAnnee = "resume_prec_annee"
	EndpointDiagAssoc       = "diag_assoc"
	EndpointUM              = "um"
	EndpointActes           = "actes"
	EndpointDMIMed          = "dmi_med"
	EndpointTxRecours       = "tx_recours"
	EndpointDernierTrans    = "dernier_trans"
)

// Contract fixes the per-endpoint behavior that does not depend on the
// request: disclosure strategy, refused dimensions, and output column
// renames.
type Contract struct {
	Name                    string
	Strategy                synth.Strategy
	Disallowed              map[string]bool
	AllowNoVentilationToken bool
	Renames                 map[string]string
}

// The stay-duration breakdown only makes sense on the summary endpoint,
// where it swaps the whole column layout.
var noDuree = map[string]bool{"duree": true}

var Contracts = map[string]Contract{
	EndpointResume: {
		Name:     EndpointResume,
		Strategy: synth.StrategySentinel,
	},
	EndpointResumePrecAnnee: {
		Name:                    EndpointResumePrecAnnee,
		Strategy:                synth.StrategyAllString,
		Disallowed:              noDuree,
		AllowNoVentilationToken: true,
	},
	EndpointDiagAssoc: {
		Name:       EndpointDiagAssoc,
		Strategy:   synth.StrategyAllString,
		Disallowed: noDuree,
		Renames:    map[string]string{"diag": "code_diag"},
	},
	EndpointUM: {
		Name:       EndpointUM,
		Strategy:   synth.StrategyAllString,
		Disallowed: noDuree,
		Renames:    map[string]string{"um": "code_rum"},
	},
	EndpointActes: {
		Name:       EndpointActes,
		Strategy:   synth.StrategyAllString,
		Disallowed: noDuree,
		Renames:    map[string]string{"acte": "code_ccam"},
	},
	EndpointDMIMed: {
		Name:       EndpointDMIMed,
		Strategy:   synth.StrategyAllString,
		Disallowed: noDuree,
	},
	EndpointTxRecours: {
		Name:       EndpointTxRecours,
		Strategy:   synth.StrategyAllString,
		Disallowed: noDuree,
	},
	// Transmission dates carry no patient statistics, so no redaction.
	EndpointDernierTrans: {
		Name:     EndpointDernierTrans,
		Strategy: synth.StrategyNone,
	},
}

// Request carries one parsed endpoint call.
type Request struct {
	Endpoint string
	// Raw holds the filter parameters as received.
	Raw map[string]string
	// Var is the ventilation token list.
	Var string
	// AgeCuts customize the trancheage buckets.
	AgeCuts string
	// GeoLevel selects the geographic grain for recourse rates.
	GeoLevel string
	// IncludePatients adds the patient count to summary rows.
	IncludePatients bool
	// SimulateEmpty forces the no-result outcome.
	SimulateEmpty bool
	// SimulateSmall forces every row under the disclosure threshold.
	SimulateSmall bool
}
