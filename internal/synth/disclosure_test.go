package synth

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallRow() *Row {
	r := NewRow()
	r.Set("cmd", "05")
	r.Set("nb_sej", 4)
	r.Set("nb_pat", 3)
	r.Set("duree_moy_sej", 6.25)
	return r
}

func largeRow() *Row {
	r := NewRow()
	r.Set("cmd", "06")
	r.Set("nb_sej", 1200)
	r.Set("nb_pat", 950)
	r.Set("duree_moy_sej", 4.5)
	return r
}

func TestRedact(t *testing.T) {
	t.Run("sentinel masks only the patient count", func(t *testing.T) {
		rows := []*Row{smallRow(), largeRow()}
		touched := Redact(rows, StrategySentinel)
		assert.Equal(t, 1, touched)

		pat, _ := rows[0].Get("nb_pat")
		assert.Equal(t, SmallCellToken, pat)
		sej, _ := rows[0].Get("nb_sej")
		assert.Equal(t, 4, sej)

		pat, _ = rows[1].Get("nb_pat")
		assert.Equal(t, 950, pat)
	})

	t.Run("all-string masks the whole row", func(t *testing.T) {
		rows := []*Row{smallRow(), largeRow()}
		touched := Redact(rows, StrategyAllString)
		assert.Equal(t, 1, touched)

		for _, col := range rows[0].Columns() {
			v, _ := rows[0].Get(col)
			_, isString := v.(string)
			assert.True(t, isString, "column %s must be a string", col)
		}
		sej, _ := rows[0].Get("nb_sej")
		assert.Equal(t, "4", sej)

		sej, _ = rows[1].Get("nb_sej")
		assert.Equal(t, 1200, sej)
	})

	t.Run("none leaves everything alone", func(t *testing.T) {
		rows := []*Row{smallRow()}
		assert.Equal(t, 0, Redact(rows, StrategyNone))
		pat, _ := rows[0].Get("nb_pat")
		assert.Equal(t, 3, pat)
	})

	t.Run("rows without a stay count skipped", func(t *testing.T) {
		r := NewRow()
		r.Set("finess", "130783293")
		assert.Equal(t, 0, Redact([]*Row{r}, StrategyAllString))
	})

	t.Run("threshold is exclusive", func(t *testing.T) {
		r := NewRow()
		r.Set("nb_sej", SmallCellThreshold)
		r.Set("nb_pat", 9)
		assert.Equal(t, 0, Redact([]*Row{r}, StrategySentinel))
	})
}

func TestRowJSONOrder(t *testing.T) {
	r := NewRow()
	r.Set("cmd", "05")
	r.Set("nb_sej", 10)
	r.Set("nb_pat", 8)
	r.Rename("cmd", "code_cmd")

	raw, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Equal(t, `{"code_cmd":"05","nb_sej":10,"nb_pat":8}`, string(raw))
}
