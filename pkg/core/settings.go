// Package core implements the toolkit's wiring layer: the shared Context,
// the API client factory, the composable state container and the
// integration setup/extend mechanics. Platform connectors build on this
// package; UIs consume the composables built from it.
package core

// Settings is the flat key-value configuration an integration is set up
// with. No schema is enforced; platform setup functions read the keys they
// know about.
type Settings map[string]any

// MergeSettings returns a new Settings with over applied on top of base.
// The merge is shallow: colliding keys resolve later-write-wins.
func MergeSettings(base, over Settings) Settings {
	merged := make(Settings, len(base)+len(over))
	for k, v := range base {
		merged[k] = v
	}
	for k, v := range over {
		merged[k] = v
	}
	return merged
}

// Clone returns a shallow copy of s.
func (s Settings) Clone() Settings {
	out := make(Settings, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// String returns the string value for key, or def when the key is absent or
// not a string.
func (s Settings) String(key, def string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return def
}

// Int returns the int value for key, or def when the key is absent or not
// an integer.
func (s Settings) Int(key string, def int) int {
	switch v := s[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Bool returns the bool value for key, or def when the key is absent or not
// a bool.
func (s Settings) Bool(key string, def bool) bool {
	if v, ok := s[key].(bool); ok {
		return v
	}
	return def
}
