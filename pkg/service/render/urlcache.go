package render

import "sync"

// URLCache maps a render's cache key to the external URL of a previously
// uploaded artifact. Entries live for the process lifetime and are never
// invalidated; the caller stores a URL only after the upload succeeded.
type URLCache struct {
	mu   sync.RWMutex
	urls map[string]string
}

func NewURLCache() *URLCache {
	return &URLCache{
		urls: make(map[string]string),
	}
}

func (c *URLCache) Lookup(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	url, ok := c.urls[key]
	return url, ok
}

func (c *URLCache) Store(key, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.urls[key] = url
}

func (c *URLCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.urls)
}
