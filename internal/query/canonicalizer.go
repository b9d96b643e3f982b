package query

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	dErrors "mcomock/pkg/domain-errors"
)

const (
	listSep = "_"

	// noExtensionMarker in an exclusion list means "exclude nothing".
	noExtensionMarker = "NA"

	fullMonthRange = "1_12"
	fullAgeRange   = "0_125"
)

type canonFunc func(raw string, present bool) (FilterValue, error)

type paramSpec struct {
	name      string
	canon     canonFunc
	narrowing bool
}

// paramTable lists every accepted parameter in declaration order. The order
// fixes the fingerprint layout.
var paramTable = []paramSpec{
	{name: "annee", canon: canonYear, narrowing: false},
	{name: "moissortie", canon: canonMonthRange, narrowing: true},
	{name: "sexe", canon: canonSexe, narrowing: true},
	{name: "age", canon: canonAgeRange, narrowing: true},
	{name: "typhosp", canon: canonTyphosp, narrowing: true},
	{name: "diag", canon: canonCodeList, narrowing: true},
	{name: "diag_pos", canon: canonScalar, narrowing: true},
	{name: "acte", canon: canonCodeList, narrowing: true},
	{name: "exclu_acte", canon: canonExclusion, narrowing: true},
	{name: "and_acte", canon: canonFlag, narrowing: false},
	{name: "and_exclu_acte", canon: canonFlag, narrowing: false},
	{name: "um", canon: canonCodeList, narrowing: true},
	{name: "finess", canon: canonCodeList, narrowing: true},
	{name: "finessgeo", canon: canonCodeList, narrowing: true},
	{name: "categ", canon: canonCodeList, narrowing: true},
	{name: "secteur", canon: canonCodeList, narrowing: true},
	{name: "modeentree", canon: canonCodeList, narrowing: true},
	{name: "modesortie", canon: canonCodeList, narrowing: true},
	{name: "provenance", canon: canonCodeList, narrowing: true},
	{name: "destination", canon: canonCodeList, narrowing: true},
	{name: "passageurg", canon: canonScalar, narrowing: true},
	{name: "type_geo_etab", canon: canonScalar, narrowing: false},
	{name: "codes_geo_etab", canon: canonCodeList, narrowing: true},
	{name: "codegeo", canon: canonCodeList, narrowing: true},
	{name: "type_geo_pat", canon: canonScalar, narrowing: false},
	{name: "codes_geo_pat", canon: canonCodeList, narrowing: true},
	{name: "code_lpp", canon: canonCodeList, narrowing: true},
	{name: "code_ucd", canon: canonCodeList, narrowing: true},
	{name: "ghm", canon: canonCodeList, narrowing: true},
	{name: "racine", canon: canonCodeList, narrowing: true},
	{name: "cmd", canon: canonCodeList, narrowing: true},
	{name: "dp", canon: canonCodeList, narrowing: true},
	{name: "da", canon: canonCodeList, narrowing: true},
	{name: "ga", canon: canonCodeList, narrowing: true},
	{name: "gp", canon: canonCodeList, narrowing: true},
	{name: "aso", canon: canonCodeList, narrowing: true},
	{name: "cas", canon: canonCodeList, narrowing: true},
	{name: "profils_niveau", canon: canonScalar, narrowing: false},
	{name: "profils_entite", canon: canonScalar, narrowing: false},
	{name: "id_utilisateur", canon: canonScalar, narrowing: false},
	{name: "token_utilisateur", canon: canonScalar, narrowing: false},
	{name: "refus_cookie", canon: canonScalar, narrowing: false},
}

// ParamNames returns the accepted filter parameter names in table order.
func ParamNames() []string {
	out := make([]string, len(paramTable))
	for i, p := range paramTable {
		out[i] = p.name
	}
	return out
}

// Canonicalize normalizes raw query parameters into a FilterSet. Values that
// canonicalize to "no restriction" are recorded as absent, so two requests
// expressing the same restriction differently produce identical sets.
func Canonicalize(raw map[string]string) (*FilterSet, error) {
	fs := newFilterSet()
	for _, p := range paramTable {
		v, present := raw[p.name]
		fv, err := p.canon(v, present)
		if err != nil {
			return nil, err
		}
		fs.put(p.name, fv, p.narrowing)
	}
	return fs, nil
}

func absent() FilterValue { return FilterValue{Kind: KindAbsent} }

// canonYear requires the discharge year and reduces it to its last two
// digits, so "2023" and "23" canonicalize identically.
func canonYear(raw string, present bool) (FilterValue, error) {
	if !present || raw == "" {
		return FilterValue{}, dErrors.New(dErrors.CodeBadRequest, "parameter annee is required")
	}
	if _, err := strconv.Atoi(raw); err != nil || (len(raw) != 2 && len(raw) != 4) {
		return FilterValue{}, dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("invalid annee %q", raw))
	}
	return FilterValue{Kind: KindScalar, Encoded: raw[len(raw)-2:]}, nil
}

// canonMonthRange drops the full-year range, which restricts nothing.
func canonMonthRange(raw string, present bool) (FilterValue, error) {
	if !present || raw == "" || raw == fullMonthRange {
		return absent(), nil
	}
	return FilterValue{Kind: KindNumRange, Encoded: raw}, nil
}

// canonAgeRange drops the full lifespan range.
func canonAgeRange(raw string, present bool) (FilterValue, error) {
	if !present || raw == "" || raw == fullAgeRange {
		return absent(), nil
	}
	return FilterValue{Kind: KindNumRange, Encoded: raw}, nil
}

// canonSexe treats a list naming both sexes as no restriction.
func canonSexe(raw string, present bool) (FilterValue, error) {
	if !present || raw == "" || strings.Contains(raw, listSep) {
		return absent(), nil
	}
	return FilterValue{Kind: KindScalar, Encoded: raw}, nil
}

// canonTyphosp treats a list covering all three hospitalization types as no
// restriction.
func canonTyphosp(raw string, present bool) (FilterValue, error) {
	if !present || raw == "" {
		return absent(), nil
	}
	parts := dedupe(strings.Split(raw, listSep))
	if len(parts) >= 3 {
		return absent(), nil
	}
	sort.Strings(parts)
	return FilterValue{Kind: KindCodeList, Encoded: strings.Join(parts, listSep)}, nil
}

// canonCodeList sorts and deduplicates list elements so element order in the
// request does not leak into the fingerprint.
func canonCodeList(raw string, present bool) (FilterValue, error) {
	if !present || raw == "" {
		return absent(), nil
	}
	parts := dedupe(strings.Split(raw, listSep))
	sort.Strings(parts)
	return FilterValue{Kind: KindCodeList, Encoded: strings.Join(parts, listSep)}, nil
}

// canonExclusion drops the whole exclusion list when any element is the
// no-extension marker.
func canonExclusion(raw string, present bool) (FilterValue, error) {
	if !present || raw == "" {
		return absent(), nil
	}
	parts := strings.Split(raw, listSep)
	for _, p := range parts {
		if p == noExtensionMarker {
			return absent(), nil
		}
	}
	parts = dedupe(parts)
	sort.Strings(parts)
	return FilterValue{Kind: KindCodeList, Encoded: strings.Join(parts, listSep)}, nil
}

// canonFlag carries the value verbatim. Flags modify how other filters
// combine, so they are never suppressed.
func canonFlag(raw string, present bool) (FilterValue, error) {
	if !present {
		return absent(), nil
	}
	return FilterValue{Kind: KindFlag, Encoded: raw}, nil
}

func canonScalar(raw string, present bool) (FilterValue, error) {
	if !present || raw == "" {
		return absent(), nil
	}
	return FilterValue{Kind: KindScalar, Encoded: raw}, nil
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, v := range in {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
