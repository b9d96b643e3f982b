package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "mcomock/pkg/domain-errors"
)

func TestCanonicalizeYear(t *testing.T) {
	t.Run("missing year is rejected", func(t *testing.T) {
		_, err := Canonicalize(map[string]string{})
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
	})

	t.Run("four digit year reduced to two", func(t *testing.T) {
		fs, err := Canonicalize(map[string]string{"annee": "2023"})
		require.NoError(t, err)
		assert.Equal(t, "23", fs.Year())
	})

	t.Run("two digit year kept", func(t *testing.T) {
		fs, err := Canonicalize(map[string]string{"annee": "23"})
		require.NoError(t, err)
		assert.Equal(t, "23", fs.Year())
	})

	t.Run("non numeric year rejected", func(t *testing.T) {
		_, err := Canonicalize(map[string]string{"annee": "20XX"})
		require.Error(t, err)
		assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
	})

	t.Run("three digit year rejected", func(t *testing.T) {
		_, err := Canonicalize(map[string]string{"annee": "023"})
		require.Error(t, err)
	})
}

func TestCanonicalizeSuppression(t *testing.T) {
	base := func(extra map[string]string) map[string]string {
		raw := map[string]string{"annee": "23"}
		for k, v := range extra {
			raw[k] = v
		}
		return raw
	}

	t.Run("full month range means unrestricted", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"moissortie": "1_12"}))
		require.NoError(t, err)
		assert.False(t, fs.Has("moissortie"))
		assert.Equal(t, 0, fs.Narrowing())
	})

	t.Run("partial month range narrows", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"moissortie": "1_6"}))
		require.NoError(t, err)
		assert.True(t, fs.Has("moissortie"))
		assert.Equal(t, 1, fs.Narrowing())
	})

	t.Run("both sexes means unrestricted", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"sexe": "1_2"}))
		require.NoError(t, err)
		assert.False(t, fs.Has("sexe"))
	})

	t.Run("single sexe narrows", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"sexe": "2"}))
		require.NoError(t, err)
		assert.True(t, fs.Has("sexe"))
	})

	t.Run("full age range means unrestricted", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"age": "0_125"}))
		require.NoError(t, err)
		assert.False(t, fs.Has("age"))
	})

	t.Run("all hospitalization types means unrestricted", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"typhosp": "M_C_O"}))
		require.NoError(t, err)
		assert.False(t, fs.Has("typhosp"))
	})

	t.Run("two hospitalization types narrow", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"typhosp": "M_C"}))
		require.NoError(t, err)
		assert.True(t, fs.Has("typhosp"))
	})

	t.Run("exclusion list with NA marker dropped", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"exclu_acte": "DZQM006_NA"}))
		require.NoError(t, err)
		assert.False(t, fs.Has("exclu_acte"))
	})

	t.Run("exclusion list without marker kept", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"exclu_acte": "DZQM006"}))
		require.NoError(t, err)
		assert.True(t, fs.Has("exclu_acte"))
	})

	t.Run("flags pass through verbatim", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"and_acte": "TRUE"}))
		require.NoError(t, err)
		v, ok := fs.Get("and_acte")
		require.True(t, ok)
		assert.Equal(t, KindFlag, v.Kind)
		assert.Equal(t, "TRUE", v.Encoded)
		assert.Equal(t, 0, fs.Narrowing())
	})

	t.Run("auth parameters never narrow", func(t *testing.T) {
		fs, err := Canonicalize(base(map[string]string{"id_utilisateur": "u1", "token_utilisateur": "t"}))
		require.NoError(t, err)
		assert.Equal(t, 0, fs.Narrowing())
	})
}

func TestFingerprint(t *testing.T) {
	t.Run("equivalent requests fingerprint identically", func(t *testing.T) {
		a, err := Canonicalize(map[string]string{"annee": "2023", "ghm": "05M09T_01M10T", "moissortie": "1_12"})
		require.NoError(t, err)
		b, err := Canonicalize(map[string]string{"annee": "23", "ghm": "01M10T_05M09T"})
		require.NoError(t, err)
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("different filters fingerprint differently", func(t *testing.T) {
		a, err := Canonicalize(map[string]string{"annee": "23", "cmd": "05"})
		require.NoError(t, err)
		b, err := Canonicalize(map[string]string{"annee": "23", "cmd": "06"})
		require.NoError(t, err)
		assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})
}
