package service

import (
	"time"

	"github.com/alexanderramin/onlyone/internal/calendar"
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultGridCacheSize covers the 21-year window at twelve months each.
const DefaultGridCacheSize = 12 * (2*calendar.YearWindowRadius + 1)

type gridKey struct {
	year  int
	month time.Month
	loc   string
}

// GridCache memoizes month grids. Callers always receive their own copy.
type GridCache struct {
	builder *calendar.Builder
	cache   *lru.Cache[gridKey, []time.Time]
}

// NewGridCache builds grids with builder. A size of zero or less uses
// DefaultGridCacheSize.
func NewGridCache(builder *calendar.Builder, size int) (*GridCache, error) {
	if size <= 0 {
		size = DefaultGridCacheSize
	}
	if builder == nil {
		builder = calendar.NewBuilder(nil)
	}
	c, err := lru.New[gridKey, []time.Time](size)
	if err != nil {
		return nil, err
	}
	return &GridCache{builder: builder, cache: c}, nil
}

// MonthGrid returns the grid for anchor's month.
func (g *GridCache) MonthGrid(anchor time.Time) []time.Time {
	if anchor.IsZero() {
		anchor = g.builder.Now()
	}
	key := gridKey{year: anchor.Year(), month: anchor.Month(), loc: anchor.Location().String()}
	if grid, ok := g.cache.Get(key); ok {
		return append([]time.Time(nil), grid...)
	}
	grid := g.builder.MonthGrid(anchor)
	g.cache.Add(key, append([]time.Time(nil), grid...))
	return grid
}

// Len reports how many months are cached.
func (g *GridCache) Len() int {
	return g.cache.Len()
}
