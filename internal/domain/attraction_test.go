package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceLevel_IsValid(t *testing.T) {
	tests := []struct {
		level    PriceLevel
		expected bool
	}{
		{PriceFree, true},
		{PriceBudget, true},
		{PriceModerate, true},
		{PriceExpensive, true},
		{PriceLuxury, true},
		{PriceLevel("premium"), false},
		{PriceLevel(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.level.IsValid())
		})
	}
}

func TestPriceLevelCost_CoversAllLevels(t *testing.T) {
	for _, level := range []PriceLevel{PriceFree, PriceBudget, PriceModerate, PriceExpensive, PriceLuxury} {
		_, ok := PriceLevelCost[level]
		assert.True(t, ok, "missing cost for %s", level)
	}

	assert.Equal(t, 0, PriceLevelCost[PriceFree])
	assert.Equal(t, 100, PriceLevelCost[PriceLuxury])
}

func TestAttraction_Location(t *testing.T) {
	a := Attraction{Lat: 41.4036, Lon: 2.1744}
	assert.Equal(t, Point{Lat: 41.4036, Lon: 2.1744}, a.Location())
}

func TestSyncCacheKey(t *testing.T) {
	assert.Equal(t, "tripadvisor:details:12345", SyncCacheKey("12345"))
}
