package service

import (
	"testing"
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridCache_ReturnsCopies(t *testing.T) {
	cache, err := NewGridCache(nil, 4)
	require.NoError(t, err)

	anchor := time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC)
	first := cache.MonthGrid(anchor)
	first[0] = time.Time{}

	second := cache.MonthGrid(anchor)
	assert.Equal(t, calendar.MonthGrid(anchor), second)
	assert.Equal(t, 1, cache.Len())
}

func TestGridCache_KeyedByMonthAndLocation(t *testing.T) {
	cache, err := NewGridCache(nil, 0)
	require.NoError(t, err)

	tokyo := time.FixedZone("JST", 9*3600)
	cache.MonthGrid(time.Date(2025, time.May, 1, 0, 0, 0, 0, time.UTC))
	cache.MonthGrid(time.Date(2025, time.May, 31, 0, 0, 0, 0, time.UTC))
	cache.MonthGrid(time.Date(2025, time.May, 1, 0, 0, 0, 0, tokyo))
	cache.MonthGrid(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 3, cache.Len())
}

func TestGridCache_Evicts(t *testing.T) {
	cache, err := NewGridCache(nil, 2)
	require.NoError(t, err)

	for m := time.January; m <= time.April; m++ {
		cache.MonthGrid(time.Date(2025, m, 1, 0, 0, 0, 0, time.UTC))
	}
	assert.Equal(t, 2, cache.Len())
}

func TestGridCache_ZeroAnchorUsesBuilderClock(t *testing.T) {
	fixed := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	cache, err := NewGridCache(calendar.NewBuilder(func() time.Time { return fixed }), 0)
	require.NoError(t, err)

	grid := cache.MonthGrid(time.Time{})
	assert.Equal(t, calendar.MonthGrid(fixed), grid)
}
