package svgpaint

import "sync"

// Cache interns paint servers by their raw specification string, so that
// shapes repeating the same paint value share one Server instead of
// re-parsing it. The cache holds one reference per entry; every Get
// hands an additional reference to the caller.
type Cache struct {
	mu      sync.Mutex
	servers map[string]*Server
}

func NewCache() *Cache {
	return &Cache{servers: make(map[string]*Server)}
}

// Get returns the interned server for `spec`, parsing it on the first
// use. The caller owns one reference on the returned server and should
// Unref it when the consuming shape is destroyed.
// "inherit" values are never cached: inherit is true and s is nil.
func (c *Cache) Get(spec string) (inherit bool, s *Server, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if s, ok := c.servers[spec]; ok {
		s.Ref()
		return false, s, nil
	}
	inherit, s, err = Parse(spec)
	if err != nil || inherit {
		return inherit, nil, err
	}
	c.servers[spec] = s // the cache keeps the initial reference
	s.Ref()
	return false, s, nil
}

// Clear drops the cache's own references. Entries still referenced by
// shapes stay alive until those references are dropped.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for spec, s := range c.servers {
		s.Unref()
		delete(c.servers, spec)
	}
}
