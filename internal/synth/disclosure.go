package synth

import (
	"fmt"
	"strconv"
)

// Strategy selects how rows under the disclosure threshold are redacted.
type Strategy int

const (
	// StrategyNone leaves rows untouched. Reserved for endpoints that carry
	// no patient-level statistics.
	StrategyNone Strategy = iota
	// StrategySentinel replaces the patient count with SmallCellToken.
	StrategySentinel
	// StrategyAllString stringifies every cell of the affected row,
	// masking which value tripped the threshold.
	StrategyAllString
)

func (s Strategy) String() string {
	switch s {
	case StrategySentinel:
		return "sentinel"
	case StrategyAllString:
		return "all_string"
	default:
		return "none"
	}
}

// Redact applies the disclosure strategy in place to every row whose stay
// count falls below the threshold, and returns how many rows were touched.
func Redact(rows []*Row, strat Strategy) int {
	if strat == StrategyNone {
		return 0
	}
	touched := 0
	for _, row := range rows {
		v, ok := row.Get("nb_sej")
		if !ok {
			continue
		}
		stays, ok := asInt(v)
		if !ok || stays >= SmallCellThreshold {
			continue
		}
		switch strat {
		case StrategySentinel:
			if _, has := row.Get("nb_pat"); has {
				row.Set("nb_pat", SmallCellToken)
			}
		case StrategyAllString:
			for _, col := range row.Columns() {
				cell, _ := row.Get(col)
				row.Set(col, stringify(cell))
			}
		}
		touched++
	}
	return touched
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	default:
		return 0, false
	}
}

func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(x)
	}
}
