package core

import (
	"fmt"
	"sync"
)

// Context is the shared record every operation receives: the configured API
// client handle plus the merged settings of its integration. A Context is
// constructed once at integration setup and mutated only when the
// integration is extended.
type Context struct {
	mu       sync.RWMutex
	tag      string
	settings Settings
	api      any
}

// Tag returns the integration tag this context belongs to.
func (c *Context) Tag() string {
	return c.tag
}

// Settings returns a snapshot copy of the merged settings.
func (c *Context) Settings() Settings {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings.Clone()
}

// Setting returns the value for a single settings key.
func (c *Context) Setting(key string) any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.settings[key]
}

// mergeSettings applies extra over the current settings, shallow,
// later-write-wins. Called by Integration.Extend.
func (c *Context) mergeSettings(extra Settings) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.settings = MergeSettings(c.settings, extra)
}

// API exposes the untyped API handle. Most callers want APIFrom instead.
func (c *Context) API() any {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.api
}

// APIFrom recovers the typed API function set from a context. Operations
// supplied by a platform connector use this to reach their own transport.
func APIFrom[A any](c *Context) (*A, error) {
	api, ok := c.API().(*A)
	if !ok {
		return nil, fmt.Errorf("context %q does not carry a %T", c.Tag(), (*A)(nil))
	}
	return api, nil
}
