package kernel

import (
	"errors"
	"fmt"

	"tableorders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrMoneyIsNegative is the cause attached when a negative amount is rejected.
var ErrMoneyIsNegative = errors.New("amount must not be negative")

// ErrMoneyHasTooManyDecimals is the cause attached when an amount has fractions of a cent.
var ErrMoneyHasTooManyDecimals = errors.New("amount must have at most 2 decimal places")

const moneyScale = 2

// Money is a non-negative amount in the venue's single currency.
// Arithmetic is exact; the zero value is zero money and is valid.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoney wraps amount, rejecting negative values and amounts finer than a cent.
// Trailing zeros are fine: "0.330" is accepted, "0.333" is not.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%s: %w", amount, ErrMoneyIsNegative))
	}
	if !amount.Equal(amount.Round(moneyScale)) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", fmt.Errorf("%s: %w", amount, ErrMoneyHasTooManyDecimals))
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal literal such as "12.50".
func MoneyFromString(s string) (Money, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return NewMoney(amount)
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul multiplies by a line quantity. Callers pass positive quantities only.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Amount exposes the decimal for persistence and serialization.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares by value, so 25 and 25.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places, e.g. "25.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
