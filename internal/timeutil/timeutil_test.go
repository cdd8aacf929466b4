package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePtr(t *testing.T) {
	s := "2026-03-15T12:00:00Z"
	got := ParsePtr(&s)
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC), *got)

	empty := ""
	assert.Nil(t, ParsePtr(nil))
	assert.Nil(t, ParsePtr(&empty))

	bad := "not-a-time"
	assert.Nil(t, ParsePtr(&bad))
}

func TestFormatPtr_RoundTrip(t *testing.T) {
	in := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	s := FormatPtr(&in)
	require.NotNil(t, s)
	assert.Equal(t, "2026-03-15T12:00:00Z", *s)

	back := ParsePtr(s)
	require.NotNil(t, back)
	assert.True(t, in.Equal(*back))

	assert.Nil(t, FormatPtr(nil))
}

func TestOrZero(t *testing.T) {
	assert.True(t, OrZero(nil).IsZero())

	in := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, in, OrZero(&in))
}
