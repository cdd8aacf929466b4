package agnostic

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewPrice_NilSpecialBecomesZero(t *testing.T) {
	p := NewPrice(NewMoney(1000, 1), nil)

	assert.True(t, p.Special.IsZero())
	assert.False(t, p.HasDiscount())
	assert.True(t, p.Current().Equals(NewMoney(1000, 1)))
}

func TestPrice_CurrentPrefersSpecial(t *testing.T) {
	p := NewPrice(NewMoney(2000, 100), NewMoney(1500, 100))

	assert.True(t, p.HasDiscount())
	assert.True(t, p.Current().Equals(NewMoney(1500, 100)))
}

// TestEffectivePrice_NoDiscount verifies an undiscounted price passes
// through unchanged.
func TestEffectivePrice_NoDiscount(t *testing.T) {
	base := NewMoney(1000, 1)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	got := EffectivePrice(base, nil, nil, nil, now)
	assert.True(t, got.Equals(base))

	got = EffectivePrice(base, big.NewRat(0, 1), nil, nil, now)
	assert.True(t, got.Equals(base))
}

// TestEffectivePrice_Window verifies the validity window is inclusive on
// both ends.
func TestEffectivePrice_Window(t *testing.T) {
	base := NewMoney(2000, 100)
	pct := big.NewRat(1, 4) // 25%
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	discounted := NewMoney(1500, 100)

	cases := []struct {
		name string
		now  time.Time
		want *Money
	}{
		{"before window", start.Add(-time.Second), base},
		{"at start", start, discounted},
		{"inside window", start.AddDate(0, 0, 10), discounted},
		{"at end", end, discounted},
		{"after window", end.Add(time.Second), base},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := EffectivePrice(base, pct, &start, &end, tc.now)
			assert.True(t, got.Equals(tc.want), "got %s, want %s", got, tc.want)
		})
	}
}

// TestEffectivePrice_PercentAboveOne verifies values above 1 are read as
// whole percents.
func TestEffectivePrice_PercentAboveOne(t *testing.T) {
	base := NewMoney(2000, 100)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	asFraction := EffectivePrice(base, big.NewRat(1, 4), nil, nil, now)
	asPercent := EffectivePrice(base, big.NewRat(25, 1), nil, nil, now)

	assert.True(t, asFraction.Equals(asPercent))
	assert.True(t, asPercent.Equals(NewMoney(1500, 100)))
}

func TestEffectivePrice_OpenEndedWindows(t *testing.T) {
	base := NewMoney(1000, 1)
	pct := big.NewRat(1, 10)
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	discounted := NewMoney(900, 1)

	// No start: active until end.
	end := now.AddDate(0, 1, 0)
	got := EffectivePrice(base, pct, nil, &end, now)
	assert.True(t, got.Equals(discounted))

	// No end: active from start on.
	start := now.AddDate(0, -1, 0)
	got = EffectivePrice(base, pct, &start, nil, now)
	assert.True(t, got.Equals(discounted))
}

func TestEffectivePrice_NilBase(t *testing.T) {
	got := EffectivePrice(nil, big.NewRat(1, 2), nil, nil, time.Now())
	assert.True(t, got.IsZero())
}
