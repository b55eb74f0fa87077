// SPDX-License-Identifier: Unlicense OR MIT

package canvas

import (
	"image"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// ImageCache is a least recently used cache of decoded images keyed by
// source reference. Sources are stored as hashes so large data URLs are
// not retained.
type ImageCache struct {
	mu         sync.Mutex
	max        int
	m          map[cacheKey]*cacheElem
	head, tail *cacheElem
}

type cacheKey struct {
	sum uint64
	n   int
}

type cacheElem struct {
	next, prev *cacheElem
	key        cacheKey
	img        image.Image
}

// NewImageCache returns a cache holding at most max images.
func NewImageCache(max int) *ImageCache {
	if max < 1 {
		max = 1
	}
	c := &ImageCache{
		max:  max,
		m:    make(map[cacheKey]*cacheElem),
		head: new(cacheElem),
		tail: new(cacheElem),
	}
	c.head.prev = c.tail
	c.tail.next = c.head
	return c
}

func keyOf(src string) cacheKey {
	return cacheKey{sum: xxhash.Sum64String(src), n: len(src)}
}

// Get returns the image cached for src and marks it recently used.
func (c *ImageCache) Get(src string) (image.Image, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.m[keyOf(src)]
	if !ok {
		return nil, false
	}
	c.remove(e)
	c.insert(e)
	return e.img, true
}

// Put caches img for src, evicting the least recently used image when
// the cache is full.
func (c *ImageCache) Put(src string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	k := keyOf(src)
	if e, ok := c.m[k]; ok {
		e.img = img
		c.remove(e)
		c.insert(e)
		return
	}
	e := &cacheElem{key: k, img: img}
	c.m[k] = e
	c.insert(e)
	if len(c.m) > c.max {
		oldest := c.tail.next
		c.remove(oldest)
		delete(c.m, oldest.key)
	}
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.m)
}

func (c *ImageCache) remove(e *cacheElem) {
	e.next.prev = e.prev
	e.prev.next = e.next
}

func (c *ImageCache) insert(e *cacheElem) {
	e.next = c.head
	e.prev = c.head.prev
	e.prev.next = e
	e.next.prev = e
}
