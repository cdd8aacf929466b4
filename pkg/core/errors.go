package core

import "errors"

// Sentinel errors shared across the toolkit. Platform connectors translate
// their transport-level failures into these so consuming code can branch
// with errors.Is without importing connector internals.
var (
	// ErrNotFound indicates the requested resource does not exist on the platform.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates the platform rejected the caller's credentials.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput indicates the platform rejected the request parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnavailable indicates the platform could not be reached.
	ErrUnavailable = errors.New("platform unavailable")
)

// Registry errors.
var (
	// ErrTagRegistered indicates an integration with the same tag already exists.
	ErrTagRegistered = errors.New("integration tag already registered")

	// ErrTagUnknown indicates no integration is registered under the tag.
	ErrTagUnknown = errors.New("integration tag not registered")
)
