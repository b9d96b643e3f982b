// Package synth produces deterministic pseudo-random aggregate rows and the
// disclosure-control pass applied to them.
package synth

import (
	"bytes"
	"encoding/json"
)

// Row is an ordered set of named cells. Column order is insertion order and
// survives JSON encoding, which plain maps would not guarantee.
type Row struct {
	cols []string
	vals map[string]any
}

func NewRow() *Row {
	return &Row{vals: make(map[string]any)}
}

// Set appends the column on first write and overwrites in place afterwards.
func (r *Row) Set(col string, v any) {
	if _, ok := r.vals[col]; !ok {
		r.cols = append(r.cols, col)
	}
	r.vals[col] = v
}

// Get returns the cell value and whether the column exists.
func (r *Row) Get(col string) (any, bool) {
	v, ok := r.vals[col]
	return v, ok
}

// Columns returns the column names in insertion order.
func (r *Row) Columns() []string {
	out := make([]string, len(r.cols))
	copy(out, r.cols)
	return out
}

// Rename changes a column's name while keeping its position and value.
func (r *Row) Rename(from, to string) {
	v, ok := r.vals[from]
	if !ok {
		return
	}
	for i, c := range r.cols {
		if c == from {
			r.cols[i] = to
			break
		}
	}
	delete(r.vals, from)
	r.vals[to] = v
}

// MarshalJSON encodes the row as an object with keys in column order.
func (r *Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, c := range r.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(c)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.vals[c])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
