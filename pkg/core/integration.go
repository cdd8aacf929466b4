package core

import "sync"

// Integration glues a configured client into a shared Context at
// application startup. The context is built once per Setup call; every
// operation of every composable reads it from there.
type Integration[A any] struct {
	ctx    *Context
	client *Client[A]
}

// Setup creates the client for the given settings and wraps it in a fresh
// Context under tag. Settings merge over the factory defaults, shallow,
// later-write-wins.
func Setup[A any](tag string, factory *ClientFactory[A], settings Settings) (*Integration[A], error) {
	client, err := factory.Create(settings)
	if err != nil {
		return nil, err
	}

	ctx := &Context{
		tag:      tag,
		settings: client.Settings(),
		api:      client.API(),
	}
	return &Integration[A]{ctx: ctx, client: client}, nil
}

// Context returns the shared context operations receive.
func (i *Integration[A]) Context() *Context {
	return i.ctx
}

// API returns the typed platform API function set.
func (i *Integration[A]) API() *A {
	return i.client.API()
}

// Extend merges additional settings into the already-constructed context and
// lets override swap or add API functions in place. Fields the override does
// not touch keep their existing bindings, so previously registered request
// functions continue to work. Either argument may be nil.
func (i *Integration[A]) Extend(extra Settings, override func(api *A)) {
	if extra != nil {
		i.ctx.mergeSettings(extra)
	}
	if override != nil {
		override(i.client.API())
	}
}

// Registry holds the configured integrations of one application (or test)
// instance, keyed by tag.
type Registry struct {
	mu       sync.RWMutex
	contexts map[string]*Context
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{contexts: make(map[string]*Context)}
}

// Register adds a context under its tag. Returns ErrTagRegistered if the
// tag is taken.
func (r *Registry) Register(c *Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.contexts[c.Tag()]; ok {
		return ErrTagRegistered
	}
	r.contexts[c.Tag()] = c
	return nil
}

// Lookup returns the context registered under tag, or ErrTagUnknown.
func (r *Registry) Lookup(tag string) (*Context, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.contexts[tag]
	if !ok {
		return nil, ErrTagUnknown
	}
	return c, nil
}

// Tags returns the registered tags in no particular order.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.contexts))
	for tag := range r.contexts {
		tags = append(tags, tag)
	}
	return tags
}
