package integrator

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize is the number of normalisation integrals kept.
const DefaultCacheSize = 16

// normKey identifies one normalisation integral: the dimension and every
// setting of the rule that computed it.
type normKey struct {
	dimension       int
	relTol          float64
	absTol          float64
	order           int
	maxSubdivisions int
}

// NormalisationCache memoises normalisation integrals. It is safe for
// concurrent use and can be shared by several integrators.
type NormalisationCache struct {
	lru *lru.Cache[normKey, float64]
}

// NewNormalisationCache returns a cache holding up to size entries.
func NewNormalisationCache(size int) *NormalisationCache {
	if size < 1 {
		panic("integrator: NewNormalisationCache: size must be ≥ 1")
	}
	c, err := lru.New[normKey, float64](size)
	if err != nil {
		panic(err)
	}

	return &NormalisationCache{lru: c}
}

// Len reports the number of cached integrals.
func (c *NormalisationCache) Len() int { return c.lru.Len() }

// getOrCompute returns the cached value for k, computing it when absent.
func (c *NormalisationCache) getOrCompute(k normKey, compute func() (float64, error)) (float64, error) {
	if v, ok := c.lru.Get(k); ok {
		return v, nil
	}
	v, err := compute()
	if err != nil {
		return 0, err
	}
	c.lru.Add(k, v)

	return v, nil
}
