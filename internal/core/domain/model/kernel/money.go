package kernel

import (
	"fmt"
	"math"

	"tailoring/internal/pkg/errs"
)

// MoneyTolerance is the accepted tolerance for monetary comparisons.
// Amounts are stored as floating point currency units, so running sums
// (the paid-amount ledger) may drift by fractions of the smallest unit.
const MoneyTolerance = 0.01

// Money is a value object representing a non-negative monetary amount in
// currency units. It is immutable; arithmetic methods return new values.
//
// Unlike UUID, the zero value of Money is meaningful: it represents an amount
// of zero and is valid without construction through NewMoney.
//
// All comparison methods are tolerance-aware: two amounts closer than
// MoneyTolerance are considered equal. This mirrors the ledger invariant
// paidAmount <= totalPrice + tolerance.
type Money struct {
	amount float64
}

// NewMoney creates a Money value from a raw currency amount.
// The amount must be finite and not negative.
func NewMoney(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%v is not a finite number", amount))
	}
	if amount < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%.2f is negative", amount))
	}
	return Money{amount: amount}, nil
}

// ZeroMoney returns a Money value of zero currency units.
func ZeroMoney() Money {
	return Money{}
}

// Amount returns the raw currency amount.
func (m Money) Amount() float64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount + other.amount}
}

// Sub returns the difference of two amounts, floored at zero.
// The ledger never exposes a negative balance: a paid amount within
// tolerance above the total still yields a zero balance.
func (m Money) Sub(other Money) Money {
	diff := m.amount - other.amount
	if diff < 0 {
		diff = 0
	}
	return Money{amount: diff}
}

// Mul returns the amount multiplied by a non-negative integer factor.
func (m Money) Mul(n int) Money {
	if n < 0 {
		n = 0
	}
	return Money{amount: m.amount * float64(n)}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount > 0
}

// IsZero reports whether the amount is zero within tolerance.
func (m Money) IsZero() bool {
	return math.Abs(m.amount) <= MoneyTolerance
}

// IsEqual reports whether two amounts are equal within tolerance.
func (m Money) IsEqual(other Money) bool {
	return math.Abs(m.amount-other.amount) <= MoneyTolerance
}

// Exceeds reports whether the amount is greater than other beyond tolerance.
// Used by the payment ledger to reject overpayments: amount exceeds the
// remaining balance only when amount > balance + MoneyTolerance.
func (m Money) Exceeds(other Money) bool {
	return m.amount > other.amount+MoneyTolerance
}

// Covers reports whether the amount reaches other within tolerance,
// i.e. m >= other - MoneyTolerance. Used to decide the PAID payment status.
func (m Money) Covers(other Money) bool {
	return m.amount >= other.amount-MoneyTolerance
}

// String returns the amount formatted with two decimal places.
func (m Money) String() string {
	return fmt.Sprintf("%.2f", m.amount)
}
