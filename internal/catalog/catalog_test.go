package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("known dimension", func(t *testing.T) {
		d, ok := Lookup("sexe")
		require.True(t, ok)
		assert.Equal(t, "sexe", d.Key)
		assert.Equal(t, KindCodes, d.Kind)
		assert.Equal(t, []any{"1", "2"}, d.Domain())
	})

	t.Run("unknown dimension", func(t *testing.T) {
		_, ok := Lookup("nonexistent")
		assert.False(t, ok)
	})

	t.Run("alias keeps caller spelling", func(t *testing.T) {
		d, ok := Lookup("modeentree")
		require.True(t, ok)
		assert.Equal(t, "modeentree", d.Key)
		assert.Equal(t, []any{"6", "7", "8"}, d.Domain())

		canonical, ok := Lookup("modeeentree")
		require.True(t, ok)
		assert.Equal(t, "modeeentree", canonical.Key)
		assert.Equal(t, d.Domain(), canonical.Domain())
	})

	t.Run("domain returns a copy", func(t *testing.T) {
		d, _ := Lookup("cmd")
		dom := d.Domain()
		dom[0] = "mutated"
		fresh, _ := Lookup("cmd")
		assert.Equal(t, "01", fresh.Domain()[0])
	})
}

func TestKeys(t *testing.T) {
	ks := Keys()
	require.NotEmpty(t, ks)
	for _, k := range ks {
		_, ok := Lookup(k)
		assert.True(t, ok, "key %s must resolve", k)
	}
	// alias target is listed, the alias itself is not
	assert.Contains(t, ks, "modeeentree")
	assert.NotContains(t, ks, "modeentree")
}

func TestFinessClassification(t *testing.T) {
	assert.Equal(t, "PU", FinessSector("130783293"))
	assert.Equal(t, "CH", FinessCateg("130783293"))
	assert.Equal(t, "PR", FinessSector("440000289"))
	assert.Equal(t, "CL", FinessCateg("440000289"))
}
