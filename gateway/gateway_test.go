package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCategory(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"pothole", "pothole"},
		{"Pothole", "pothole"},
		{"  broken streetlight \n", "broken streetlight"},
		{"\"garbage dump\"", "garbage dump"},
		{"Water Logging.", "water logging"},
		{"sinkhole", CategoryUnknown},
		{"", CategoryUnknown},
		{"The image shows a pothole on the road.", CategoryUnknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeCategory(tc.raw), "raw=%q", tc.raw)
	}
}

func TestCategoriesMatchConfiguredEnumeration(t *testing.T) {
	assert.ElementsMatch(t, []string{
		"pothole",
		"overflowing bin",
		"broken streetlight",
		"garbage dump",
		"water logging",
		"damaged public property",
	}, Categories)
}
