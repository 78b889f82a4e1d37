package mdhtml

const (
	bufferPoolSize   = 12
	bufferPrealloc   = 8
	bufferInitialCap = 2048
	bufferMaxCap     = 8192
)

// inlineCache memoizes formatted lines. Keys are the raw line itself so a
// lookup can never return the result for a different input.
type inlineCache struct {
	limit   int
	entries map[string]string
}

func newInlineCache(limit int) inlineCache {
	c := inlineCache{limit: limit}
	if limit > 0 {
		c.entries = make(map[string]string, min(limit, 128))
	}
	return c
}

func (c *inlineCache) get(key string) (string, bool) {
	if c.entries == nil {
		return "", false
	}
	v, ok := c.entries[key]
	return v, ok
}

func (c *inlineCache) put(key, value string) {
	if c.entries == nil {
		return
	}
	if len(c.entries) >= c.limit {
		c.evictHalf()
	}
	c.entries[key] = value
}

// evictHalf drops roughly half of the entries in map iteration order.
func (c *inlineCache) evictHalf() {
	drop := len(c.entries) / 2
	if drop == 0 {
		drop = len(c.entries)
	}
	for k := range c.entries {
		if drop == 0 {
			break
		}
		delete(c.entries, k)
		drop--
	}
}

func (c *inlineCache) len() int {
	return len(c.entries)
}

func (c *inlineCache) clear() {
	if c.entries != nil {
		clear(c.entries)
	}
}

// bufferPool is a small free list of scratch buffers owned by one parser.
type bufferPool struct {
	free [][]byte
}

func newBufferPool() bufferPool {
	p := bufferPool{free: make([][]byte, 0, bufferPoolSize)}
	for i := 0; i < bufferPrealloc; i++ {
		p.free = append(p.free, make([]byte, 0, bufferInitialCap))
	}
	return p
}

func (p *bufferPool) get() []byte {
	if n := len(p.free); n > 0 {
		buf := p.free[n-1]
		p.free = p.free[:n-1]
		return buf[:0]
	}
	return make([]byte, 0, 512)
}

// put returns buf to the pool unless it grew too large or the pool is full.
func (p *bufferPool) put(buf []byte) {
	if cap(buf) > bufferMaxCap || len(p.free) >= bufferPoolSize {
		return
	}
	p.free = append(p.free, buf[:0])
}
