package agnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewMoney_Arithmetic verifies the basic operations stay exact.
func TestNewMoney_Arithmetic(t *testing.T) {
	a := NewMoney(1999, 100) // 19.99
	b := NewMoney(1, 100)    // 0.01

	sum := a.Add(b)
	assert.Equal(t, "20.00", sum.String())

	diff := sum.Subtract(a)
	assert.True(t, diff.Equals(b))

	line := a.MultiplyByQuantity(3)
	assert.Equal(t, "59.97", line.String())
}

// TestMoney_FractionMath verifies percentage math does not drift the way
// float math would.
func TestMoney_FractionMath(t *testing.T) {
	price := NewMoney(1, 3) // one third

	tripled := price.MultiplyByFraction(3, 1)
	assert.True(t, tripled.Equals(NewMoney(1, 1)))

	tenPercent := NewMoney(100, 1).MultiplyByFraction(10, 100)
	assert.Equal(t, "10.00", tenPercent.String())
}

func TestMoney_Immutable(t *testing.T) {
	a := NewMoney(500, 100)
	_ = a.Add(NewMoney(100, 100))
	_ = a.MultiplyByQuantity(7)

	assert.Equal(t, "5.00", a.String())
}

func TestNewMoneyFromDecimal(t *testing.T) {
	m, err := NewMoneyFromDecimal("19.99")
	require.NoError(t, err)
	assert.True(t, m.Equals(NewMoney(1999, 100)))

	_, err = NewMoneyFromDecimal("not-a-number")
	assert.Error(t, err)
}

func TestMoney_Comparisons(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.False(t, NewMoney(1, 100).IsZero())
	assert.True(t, NewMoney(-1, 100).IsNegative())
	assert.True(t, NewMoney(1, 100).LessThan(NewMoney(2, 100)))
	assert.False(t, NewMoney(2, 100).LessThan(NewMoney(2, 100)))
}

func TestNewMoney_ZeroDenominatorPanics(t *testing.T) {
	assert.Panics(t, func() { NewMoney(1, 0) })
}

func TestMoney_PersistenceRoundTrip(t *testing.T) {
	m := NewMoney(1999, 100)
	again := NewMoney(m.Numerator(), m.Denominator())
	assert.True(t, m.Equals(again))
}
