// Package agnostic defines the platform-independent value shapes that
// getters produce and UIs consume: precise monetary values, price pairs,
// cart totals and pagination records. Nothing here knows about any
// particular e-commerce platform.
package agnostic

import (
	"fmt"
	"math/big"
)

// Money is a precise monetary value backed by big.Rat so display math never
// goes through floating point. Money is immutable; every operation returns a
// new instance.
type Money struct {
	amount *big.Rat
}

// NewMoney creates Money from numerator and denominator.
// NewMoney(1999, 100) represents 19.99.
func NewMoney(numerator, denominator int64) *Money {
	if denominator == 0 {
		panic("agnostic: money denominator cannot be zero")
	}
	return &Money{amount: big.NewRat(numerator, denominator)}
}

// NewMoneyFromDecimal creates Money from a decimal string such as "19.99".
func NewMoneyFromDecimal(decimal string) (*Money, error) {
	rat := new(big.Rat)
	if _, ok := rat.SetString(decimal); !ok {
		return nil, fmt.Errorf("invalid decimal format: %s", decimal)
	}
	return &Money{amount: rat}, nil
}

// NewMoneyFromRat creates Money from an existing big.Rat. The rat is copied.
func NewMoneyFromRat(rat *big.Rat) *Money {
	if rat == nil {
		return Zero()
	}
	return &Money{amount: new(big.Rat).Set(rat)}
}

// Zero returns a Money representing zero.
func Zero() *Money {
	return &Money{amount: big.NewRat(0, 1)}
}

// Add returns m + other.
func (m *Money) Add(other *Money) *Money {
	return &Money{amount: new(big.Rat).Add(m.amount, other.amount)}
}

// Subtract returns m - other.
func (m *Money) Subtract(other *Money) *Money {
	return &Money{amount: new(big.Rat).Sub(m.amount, other.amount)}
}

// MultiplyByFraction returns m scaled by numerator/denominator. Used for
// discount percentages held as exact fractions.
func (m *Money) MultiplyByFraction(numerator, denominator int64) *Money {
	return &Money{amount: new(big.Rat).Mul(m.amount, big.NewRat(numerator, denominator))}
}

// MultiplyByRat returns m scaled by the given rational factor.
func (m *Money) MultiplyByRat(factor *big.Rat) *Money {
	return &Money{amount: new(big.Rat).Mul(m.amount, factor)}
}

// MultiplyByQuantity returns m times an integer quantity, for line totals.
func (m *Money) MultiplyByQuantity(qty int64) *Money {
	return m.MultiplyByFraction(qty, 1)
}

// IsZero reports whether the amount is zero.
func (m *Money) IsZero() bool {
	return m.amount.Sign() == 0
}

// IsNegative reports whether the amount is negative.
func (m *Money) IsNegative() bool {
	return m.amount.Sign() < 0
}

// LessThan reports whether m < other.
func (m *Money) LessThan(other *Money) bool {
	return m.amount.Cmp(other.amount) < 0
}

// Equals reports whether m and other represent the same amount.
func (m *Money) Equals(other *Money) bool {
	if other == nil {
		return false
	}
	return m.amount.Cmp(other.amount) == 0
}

// Numerator returns the numerator of the internal rational representation.
// Platform connectors use it for persistence.
func (m *Money) Numerator() int64 {
	return m.amount.Num().Int64()
}

// Denominator returns the denominator of the internal rational representation.
func (m *Money) Denominator() int64 {
	return m.amount.Denom().Int64()
}

// Rat returns a copy of the internal big.Rat.
func (m *Money) Rat() *big.Rat {
	return new(big.Rat).Set(m.amount)
}

// Float64 returns the amount as float64. Display purposes only.
func (m *Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String returns the amount as a decimal string with two digits.
func (m *Money) String() string {
	return m.amount.FloatString(2)
}

// FloatString returns a decimal string with the given precision.
func (m *Money) FloatString(precision int) string {
	return m.amount.FloatString(precision)
}
