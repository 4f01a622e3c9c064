package viewer

import (
	"container/list"

	"fractoscope/canvas"
)

const cacheCapacity = 50

type cacheEntry struct {
	key    string
	raster *canvas.Image
}

// renderCache keeps recently rendered rasters so flipping between
// kinds or depths does not re-run the engine. Least recently used
// entries are dropped once the capacity is reached.
type renderCache struct {
	capacity int
	order    *list.List // front = most recent
	byKey    map[string]*list.Element
}

func newRenderCache(capacity int) *renderCache {
	if capacity <= 0 {
		capacity = cacheCapacity
	}
	return &renderCache{
		capacity: capacity,
		order:    list.New(),
		byKey:    make(map[string]*list.Element),
	}
}

func (c *renderCache) get(key string) (*canvas.Image, bool) {
	el, ok := c.byKey[key]
	if !ok {
		return nil, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).raster, true
}

func (c *renderCache) put(key string, raster *canvas.Image) {
	if el, ok := c.byKey[key]; ok {
		el.Value.(*cacheEntry).raster = raster
		c.order.MoveToFront(el)
		return
	}
	for c.order.Len() >= c.capacity {
		oldest := c.order.Back()
		c.order.Remove(oldest)
		delete(c.byKey, oldest.Value.(*cacheEntry).key)
	}
	c.byKey[key] = c.order.PushFront(&cacheEntry{key: key, raster: raster})
}

func (c *renderCache) clear() {
	c.order.Init()
	c.byKey = make(map[string]*list.Element)
}

func (c *renderCache) len() int {
	return c.order.Len()
}
