package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestMergeSettings_LaterWriteWins verifies the shallow merge policy:
// colliding keys take the later value, including nested maps as a whole.
func TestMergeSettings_LaterWriteWins(t *testing.T) {
	base := Settings{
		"api.url":     "https://base.example",
		"api.timeout": 30,
		"nested":      map[string]any{"a": 1, "b": 2},
	}
	over := Settings{
		"api.url": "https://override.example",
		"nested":  map[string]any{"c": 3},
		"extra":   true,
	}

	merged := MergeSettings(base, over)

	assert.Equal(t, "https://override.example", merged["api.url"])
	assert.Equal(t, 30, merged["api.timeout"])
	assert.Equal(t, true, merged["extra"])
	// Shallow merge replaces the nested map wholesale.
	assert.Equal(t, map[string]any{"c": 3}, merged["nested"])
}

func TestMergeSettings_DoesNotMutateInputs(t *testing.T) {
	base := Settings{"key": "base"}
	over := Settings{"key": "over"}

	_ = MergeSettings(base, over)

	assert.Equal(t, "base", base["key"])
	assert.Equal(t, "over", over["key"])
}

func TestMergeSettings_NilArguments(t *testing.T) {
	merged := MergeSettings(nil, Settings{"k": 1})
	assert.Equal(t, 1, merged["k"])

	merged = MergeSettings(Settings{"k": 2}, nil)
	assert.Equal(t, 2, merged["k"])

	assert.NotNil(t, MergeSettings(nil, nil))
}

func TestSettings_TypedGetters(t *testing.T) {
	s := Settings{
		"str":   "value",
		"int":   7,
		"int64": int64(8),
		"float": float64(9),
		"bool":  true,
	}

	assert.Equal(t, "value", s.String("str", "def"))
	assert.Equal(t, "def", s.String("missing", "def"))
	assert.Equal(t, "def", s.String("int", "def"))

	assert.Equal(t, 7, s.Int("int", 0))
	assert.Equal(t, 8, s.Int("int64", 0))
	assert.Equal(t, 9, s.Int("float", 0))
	assert.Equal(t, 42, s.Int("missing", 42))

	assert.True(t, s.Bool("bool", false))
	assert.True(t, s.Bool("missing", true))
}

func TestSettings_Clone(t *testing.T) {
	s := Settings{"k": "v"}
	c := s.Clone()
	c["k"] = "changed"

	assert.Equal(t, "v", s["k"])
}
