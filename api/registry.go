package api

import (
	"sync"

	"github.com/bluele/gcache"

	"github.com/a-bouts/great-circle/latlon"
)

// origin is a coordinate shared between requests. Its solution cache is not
// safe for concurrent use, so callers hold the lock while querying it.
type origin struct {
	sync.Mutex
	*latlon.Coordinate
}

type originKey struct {
	lat, lon float64
}

// registry keeps the most recently used origins so that repeated queries
// from the same point reuse its solutions.
type registry struct {
	cache gcache.Cache
}

func newRegistry(size int, solver latlon.Solver) *registry {
	if size <= 0 {
		size = 1
	}
	return &registry{
		cache: gcache.New(size).
			LRU().
			LoaderFunc(func(key interface{}) (interface{}, error) {
				k := key.(originKey)
				c := latlon.NewCoordinate(latlon.NewLatitude(k.lat), latlon.NewLongitude(k.lon), latlon.WithSolver(solver))
				return &origin{Coordinate: c}, nil
			}).
			Build(),
	}
}

func (r *registry) get(c *latlon.Coordinate) (*origin, error) {
	v, err := r.cache.Get(originKey{c.Latitude().Degrees(), c.Longitude().Degrees()})
	if err != nil {
		return nil, err
	}
	return v.(*origin), nil
}

func (r *registry) len() int {
	return r.cache.Len(false)
}
