package core

import "fmt"

// SetupFn constructs a platform's API function set from merged settings.
// A is typically a struct of function fields, one per named request the
// platform supports; the setup function binds them to whatever transport or
// session the settings describe.
type SetupFn[A any] func(settings Settings) (*A, error)

// ClientFactory produces configured clients for one platform. It pairs the
// platform's default settings with its setup function; Create merges
// caller settings over the defaults and runs setup once.
type ClientFactory[A any] struct {
	defaults Settings
	setup    SetupFn[A]
}

// NewClientFactory builds a factory from platform defaults and a setup
// function. defaults may be nil.
func NewClientFactory[A any](defaults Settings, setup SetupFn[A]) *ClientFactory[A] {
	if setup == nil {
		panic("core: client factory requires a setup function")
	}
	return &ClientFactory[A]{defaults: defaults, setup: setup}
}

// Create merges settings over the factory defaults (shallow,
// later-write-wins) and constructs the client. Setup errors propagate
// unchanged.
func (f *ClientFactory[A]) Create(settings Settings) (*Client[A], error) {
	merged := MergeSettings(f.defaults, settings)
	api, err := f.setup(merged)
	if err != nil {
		return nil, fmt.Errorf("client setup: %w", err)
	}
	return &Client[A]{settings: merged, api: api}, nil
}

// Client bundles the merged settings with the platform API function set.
type Client[A any] struct {
	settings Settings
	api      *A
}

// API returns the platform API function set.
func (c *Client[A]) API() *A {
	return c.api
}

// Settings returns the merged settings the client was created with.
func (c *Client[A]) Settings() Settings {
	return c.settings.Clone()
}
