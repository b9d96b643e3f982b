package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeBuckets(t *testing.T) {
	t.Run("explicit cuts", func(t *testing.T) {
		got, err := AgeBuckets("10_20_30")
		require.NoError(t, err)
		assert.Equal(t, []string{"[0-10 ans]", "[11-20 ans]", "[21-30 ans]", "[31 ans et +]"}, got)
	})

	t.Run("default cuts", func(t *testing.T) {
		got, err := AgeBuckets("")
		require.NoError(t, err)
		require.Len(t, got, 10)
		assert.Equal(t, "[0-10 ans]", got[0])
		assert.Equal(t, "[81-90 ans]", got[8])
		assert.Equal(t, "[91 ans et +]", got[9])
	})

	t.Run("single cut", func(t *testing.T) {
		got, err := AgeBuckets("65")
		require.NoError(t, err)
		assert.Equal(t, []string{"[0-65 ans]", "[66 ans et +]"}, got)
	})

	t.Run("non numeric cut", func(t *testing.T) {
		_, err := AgeBuckets("10_abc")
		require.Error(t, err)
	})
}
