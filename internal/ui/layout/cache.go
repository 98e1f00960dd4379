package layout

// Key identifies the inputs a Geometry depends on.
type Key struct {
	Width  float64
	Height float64
	Length int
}

// Cache memoizes the last resolved Geometry. It is recomputed only when the
// viewport or the sequence length changes.
type Cache struct {
	key    Key
	geom   Geometry
	valid  bool
	hits   int
	misses int
}

// Get returns the geometry for key, resolving it on a miss.
func (c *Cache) Get(key Key) Geometry {
	if c.valid && c.key == key {
		c.hits++
		return c.geom
	}
	c.misses++
	c.key = key
	c.geom = Resolve(key.Width, key.Height)
	c.valid = true
	return c.geom
}

// Stats returns the hit and miss counters.
func (c *Cache) Stats() (hits, misses int) {
	return c.hits, c.misses
}
