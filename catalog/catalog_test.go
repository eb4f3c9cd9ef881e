package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePanchayat(t *testing.T) {
	p, ok := ResolvePanchayat("badami")
	require.True(t, ok)
	assert.Equal(t, "Badami (Bagalkot)", p.Name)

	_, ok = ResolvePanchayat("atlantis")
	assert.False(t, ok)
}

func TestCatalogHasUniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Panchayats {
		assert.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
		assert.NotEmpty(t, p.Name)
	}
}

func TestValidEvent(t *testing.T) {
	assert.True(t, ValidEvent("Plantation Drive"))
	assert.True(t, ValidEvent("Har Ghar Tiranga"))
	assert.False(t, ValidEvent("Marathon"))
	assert.False(t, ValidEvent("plantation drive"), "event names are exact")
}
