package kernel

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"orderdesk/internal/pkg/errs"
)

const (
	// MoneyScale is the number of fraction digits kept for monetary amounts.
	MoneyScale = 2
	// MoneyIntegerDigits bounds the integer part of monetary amounts.
	MoneyIntegerDigits = 12
)

var (
	// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
	ErrMoneyIsNotConstructed = errors.New("Money must be created via NewMoney, ParseMoney or ZeroMoney")

	maxMoney = decimal.New(1, MoneyIntegerDigits).Sub(decimal.New(1, -MoneyScale))
	minMoney = maxMoney.Neg()
)

// Money is a fixed-point monetary amount with two fraction digits and at most
// twelve integer digits, matching numeric(14,2) columns. Negative amounts are
// allowed: an over-paid order carries a negative balance.
type Money struct {
	amount        decimal.Decimal
	isConstructed bool
}

// ZeroMoney returns 0.00.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero, isConstructed: true}
}

// NewMoney rounds d half away from zero to two fraction digits and checks the integer bound.
func NewMoney(d decimal.Decimal) (Money, error) {
	rounded := d.Round(MoneyScale)
	if rounded.GreaterThan(maxMoney) || rounded.LessThan(minMoney) {
		return Money{}, errs.NewValueIsOutOfRangeError(
			"amount", rounded.StringFixed(MoneyScale), minMoney.StringFixed(MoneyScale), maxMoney.StringFixed(MoneyScale),
		)
	}
	return Money{amount: rounded, isConstructed: true}, nil
}

// ParseMoney parses a decimal string such as "1500", "1500.5" or "1.5e3".
// Blank input is reported as required, anything non-numeric as invalid.
func ParseMoney(s string) (Money, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Money{}, errs.NewValueIsRequiredError("amount")
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%q is not a decimal number", s))
	}

	return NewMoney(d)
}

// ParseMoneyOrZero is the lenient parser used for order totals: blank or
// non-numeric input becomes 0.00. Amounts that do not fit the column are still rejected.
func ParseMoneyOrZero(s string) (Money, error) {
	m, err := ParseMoney(s)
	if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) {
		return ZeroMoney(), nil
	}
	return m, err
}

// Sub returns m - other, failing when the difference leaves the representable range.
func (m Money) Sub(other Money) (Money, error) {
	return NewMoney(m.amount.Sub(other.amount))
}

func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// String renders the amount with exactly two fraction digits, e.g. "800.00".
func (m Money) String() string {
	return m.amount.StringFixed(MoneyScale)
}

func (m Money) Validate() error {
	if !m.isConstructed {
		return ErrMoneyIsNotConstructed
	}
	return nil
}
