package entities

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// MinorUnitExponent is the number of decimal places between the major currency
// unit and the integer unit Money is stored in.
const MinorUnitExponent = 2

var (
	half    = decimal.New(5, -1)
	hundred = decimal.NewFromInt(100)
)

// MaxAmount bounds every derived estimate amount. Checked arithmetic fails with
// ErrInvalidInput past it; the unchecked Add keeps headroom for ledger sums.
const MaxAmount Money = math.MaxInt64 / 2

var maxAmountDecimal = decimal.NewFromInt(int64(MaxAmount))

// Money is an amount in the smallest currency unit.
//
// All arithmetic stays on the integer representation. Decimal values (quantities,
// percentages) only enter at the multiply step and are rounded back half-up.
type Money int64

func (m Money) Add(o Money) Money {
	return m + o
}

func (m Money) Subtract(o Money) Money {
	return m - o
}

// AddChecked adds o and fails instead of leaving the [-MaxAmount, MaxAmount] range.
func (m Money) AddChecked(o Money) (Money, error) {
	return fromDecimal(decimal.NewFromInt(int64(m)).Add(decimal.NewFromInt(int64(o))))
}

// MultiplyByQuantity returns round(m * q).
func (m Money) MultiplyByQuantity(q decimal.Decimal) (Money, error) {
	return fromDecimal(roundHalfUp(decimal.NewFromInt(int64(m)).Mul(q)))
}

// PercentageOf returns round(m * pct / 100).
func (m Money) PercentageOf(pct decimal.Decimal) (Money, error) {
	return fromDecimal(roundHalfUp(decimal.NewFromInt(int64(m)).Mul(pct).Div(hundred)))
}

func (m Money) IsNegative() bool {
	return m < 0
}

// Decimal converts the amount to major units (e.g. 1234 -> 12.34).
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(int64(m), -MinorUnitExponent)
}

// Format renders the amount in major units with a fixed number of decimals.
// Locale-aware presentation is left to the client.
func (m Money) Format() string {
	return m.Decimal().StringFixed(MinorUnitExponent)
}

func (m Money) String() string {
	return m.Format()
}

// MoneyFromMajor converts a major-unit decimal (e.g. 12.345) into Money, rounding half-up.
func MoneyFromMajor(d decimal.Decimal) Money {
	return Money(roundHalfUp(d.Shift(MinorUnitExponent)).IntPart())
}

// SumMoney adds amounts without going through floating point.
func SumMoney(amounts ...Money) Money {
	var total Money
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

func fromDecimal(d decimal.Decimal) (Money, error) {
	if d.Abs().GreaterThan(maxAmountDecimal) {
		return 0, fmt.Errorf("%w: amount %s exceeds the supported range", ErrInvalidInput, d.String())
	}
	return Money(d.IntPart()), nil
}

func roundHalfUp(d decimal.Decimal) decimal.Decimal {
	return d.Add(half).Floor()
}

// roundHalfUpPlaces rounds d half-up to the given number of decimal places.
func roundHalfUpPlaces(d decimal.Decimal, places int32) decimal.Decimal {
	return roundHalfUp(d.Shift(places)).Shift(-places)
}

func validateNonNegativeMoney(field string, m Money) error {
	if m.IsNegative() {
		return fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, field)
	}
	return nil
}
