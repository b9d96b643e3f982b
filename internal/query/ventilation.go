package query

import (
	"fmt"
	"strings"

	"mcomock/internal/catalog"
	dErrors "mcomock/pkg/domain-errors"
)

// NoVentilationToken requests the aggregation without any breakdown on
// endpoints that otherwise demand a dimension.
const NoVentilationToken = "tous"

// compounds maps a var token to the dimension keys it expands into. Matching
// is greedy over the underscore-separated parts, longest compound first.
var compounds = map[string][]string{
	"sexe_trancheage":       {"sexe", "trancheage"},
	"modentprov_modsordest": {"modentprov", "modsordest"},
}

// Dimension is one resolved breakdown axis: an output column and the values
// it enumerates.
type Dimension struct {
	Key    string
	Values []any
}

// Spec is the ordered list of breakdown axes a request ventilates by. An
// empty spec means a single aggregate row.
type Spec []Dimension

// ResolveOptions tune ventilation resolution per endpoint.
type ResolveOptions struct {
	// AllowNoVentilationToken accepts NoVentilationToken as "no breakdown".
	AllowNoVentilationToken bool
	// Disallowed lists dimension keys the endpoint rejects.
	Disallowed map[string]bool
	// AgeCuts drive the trancheage bucket labels.
	AgeCuts string
}

// SplitVar breaks a var parameter into dimension keys, expanding compound
// tokens. "sexe_trancheage_cmd" yields sexe, trancheage, cmd.
func SplitVar(v string) []string {
	parts := strings.Split(v, "_")
	var keys []string
	for i := 0; i < len(parts); {
		matched := false
		// longest compound first
		for width := len(parts) - i; width >= 2; width-- {
			candidate := strings.Join(parts[i:i+width], "_")
			if expansion, ok := compounds[candidate]; ok {
				keys = append(keys, expansion...)
				i += width
				matched = true
				break
			}
		}
		if !matched {
			keys = append(keys, parts[i])
			i++
		}
	}
	return keys
}

// Resolve turns a var parameter into a Spec. An empty var resolves to the
// empty spec. Unknown tokens are rejected rather than guessed at.
func Resolve(v string, opts ResolveOptions) (Spec, error) {
	if v == "" {
		return nil, nil
	}
	if v == NoVentilationToken {
		if opts.AllowNoVentilationToken {
			return nil, nil
		}
		return nil, dErrors.New(dErrors.CodeUnknownDimension, fmt.Sprintf("unknown ventilation dimension %q", v))
	}

	var spec Spec
	for _, key := range SplitVar(v) {
		if opts.Disallowed[key] {
			return nil, dErrors.New(dErrors.CodeUnknownDimension, fmt.Sprintf("dimension %q is not supported on this endpoint", key))
		}
		d, ok := catalog.Lookup(key)
		if !ok {
			return nil, dErrors.New(dErrors.CodeUnknownDimension, fmt.Sprintf("unknown ventilation dimension %q", key))
		}
		var values []any
		if d.Kind == catalog.KindBuckets {
			labels, err := catalog.AgeBuckets(opts.AgeCuts)
			if err != nil {
				return nil, err
			}
			values = make([]any, len(labels))
			for i, l := range labels {
				values[i] = l
			}
		} else {
			values = d.Domain()
		}
		spec = append(spec, Dimension{Key: d.Key, Values: values})
	}
	return spec, nil
}

// ColValue pairs an output column with the value a row carries for it.
type ColValue struct {
	Col string
	Val any
}

// Combinations enumerates the cartesian product of the spec's dimensions,
// last dimension fastest. The empty spec yields one empty combination.
func Combinations(spec Spec) [][]ColValue {
	if len(spec) == 0 {
		return [][]ColValue{nil}
	}
	total := 1
	for _, d := range spec {
		total *= len(d.Values)
	}
	out := make([][]ColValue, 0, total)
	idx := make([]int, len(spec))
	for {
		combo := make([]ColValue, len(spec))
		for i, d := range spec {
			combo[i] = ColValue{Col: d.Key, Val: d.Values[idx[i]]}
		}
		out = append(out, combo)

		pos := len(spec) - 1
		for pos >= 0 {
			idx[pos]++
			if idx[pos] < len(spec[pos].Values) {
				break
			}
			idx[pos] = 0
			pos--
		}
		if pos < 0 {
			return out
		}
	}
}
