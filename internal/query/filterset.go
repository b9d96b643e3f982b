// Package query turns raw request parameters into a canonical filter set and
// resolves ventilation tokens into breakdown dimensions.
package query

import (
	"strings"
)

// ValueKind records how a filter value was interpreted.
type ValueKind int

const (
	// KindAbsent marks a filter whose raw value means "no restriction".
	KindAbsent ValueKind = iota
	// KindScalar is a single opaque value.
	KindScalar
	// KindCodeList is an underscore-separated list of codes.
	KindCodeList
	// KindNumRange is a numeric min_max pair.
	KindNumRange
	// KindFlag is a literal boolean-ish toggle, carried verbatim.
	KindFlag
)

// FilterValue is one canonicalized parameter.
type FilterValue struct {
	Kind    ValueKind
	Encoded string
}

// FilterSet holds canonicalized filters in parameter-table order, together
// with the count of narrowing filters actually present.
type FilterSet struct {
	names  []string
	values map[string]FilterValue
	narrow int
}

func newFilterSet() *FilterSet {
	return &FilterSet{values: make(map[string]FilterValue)}
}

func (f *FilterSet) put(name string, v FilterValue, narrowing bool) {
	if _, seen := f.values[name]; !seen {
		f.names = append(f.names, name)
	}
	f.values[name] = v
	if narrowing && v.Kind != KindAbsent {
		f.narrow++
	}
}

// Get returns the canonical value recorded for name.
func (f *FilterSet) Get(name string) (FilterValue, bool) {
	v, ok := f.values[name]
	return v, ok
}

// Has reports whether name carries an effective restriction.
func (f *FilterSet) Has(name string) bool {
	v, ok := f.values[name]
	return ok && v.Kind != KindAbsent
}

// Narrowing is the number of present filters that restrict the result set.
func (f *FilterSet) Narrowing() int {
	return f.narrow
}

// Year returns the canonical two-digit discharge year.
func (f *FilterSet) Year() string {
	return f.values["annee"].Encoded
}

// Fingerprint serializes the effective filters into a stable string. Two
// requests that canonicalize identically fingerprint identically, whatever
// the original parameter spelling or order.
func (f *FilterSet) Fingerprint() string {
	var b strings.Builder
	for _, name := range f.names {
		v := f.values[name]
		if v.Kind == KindAbsent {
			continue
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(v.Encoded)
		b.WriteByte(';')
	}
	return b.String()
}
