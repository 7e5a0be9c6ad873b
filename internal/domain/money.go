package domain

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places every Money value is held at.
const MoneyScale = 2

// Money is a fixed-precision currency amount in major units (e.g. dollars).
// All arithmetic results are rounded back to MoneyScale.
type Money struct {
	amount decimal.Decimal
}

var ZeroMoney = Money{amount: decimal.Zero}

func NewMoney(d decimal.Decimal) Money {
	return Money{amount: d.Round(MoneyScale)}
}

func MoneyFromInt(i int64) Money {
	return NewMoney(decimal.NewFromInt(i))
}

func MoneyFromFloat(f float64) Money {
	return NewMoney(decimal.NewFromFloat(f))
}

func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ZeroMoney, fmt.Errorf("invalid money amount %q: %w", s, err)
	}
	return NewMoney(d), nil
}

// MustMoney is ParseMoney for literals; it panics on malformed input.
func MustMoney(s string) Money {
	m, err := ParseMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

func (m Money) Decimal() decimal.Decimal { return m.amount }
func (m Money) Float64() float64         { return m.amount.InexactFloat64() }
func (m Money) String() string           { return m.amount.StringFixed(MoneyScale) }

func (m Money) Add(n Money) Money { return Money{amount: m.amount.Add(n.amount)} }
func (m Money) Sub(n Money) Money { return Money{amount: m.amount.Sub(n.amount)} }
func (m Money) Neg() Money        { return Money{amount: m.amount.Neg()} }

// Mul scales the amount by a ratio and rounds to cents.
func (m Money) Mul(ratio decimal.Decimal) Money { return NewMoney(m.amount.Mul(ratio)) }

// Ratio returns m / n at the given precision. n must not be zero.
func (m Money) Ratio(n Money, precision int32) decimal.Decimal {
	return m.amount.DivRound(n.amount, precision)
}

func (m Money) Cmp(n Money) int                 { return m.amount.Cmp(n.amount) }
func (m Money) Equal(n Money) bool              { return m.amount.Equal(n.amount) }
func (m Money) LessThan(n Money) bool           { return m.amount.LessThan(n.amount) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.amount.LessThanOrEqual(n.amount) }
func (m Money) GreaterThan(n Money) bool        { return m.amount.GreaterThan(n.amount) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.amount.GreaterThanOrEqual(n.amount) }
func (m Money) IsZero() bool                    { return m.amount.IsZero() }
func (m Money) IsPositive() bool                { return m.amount.IsPositive() }
func (m Money) IsNegative() bool                { return m.amount.IsNegative() }

func MinMoney(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

func SumMoney(values ...Money) Money {
	total := ZeroMoney
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// Split divides m into n parts rounded to cents. The last part absorbs the
// rounding remainder so the parts always sum to m exactly.
func (m Money) Split(n int) []Money {
	if n <= 0 {
		return nil
	}
	part := NewMoney(m.amount.Div(decimal.NewFromInt(int64(n))).Truncate(MoneyScale))
	out := make([]Money, n)
	allocated := ZeroMoney
	for i := 0; i < n-1; i++ {
		out[i] = part
		allocated = allocated.Add(part)
	}
	out[n-1] = m.Sub(allocated)
	return out
}

// Format renders the amount with the currency symbol, e.g. "$1,250,000.00".
func (m Money) Format(currency string) string {
	if currency == "" {
		currency = "USD"
	}
	cents := m.amount.Shift(MoneyScale).IntPart()
	return money.New(cents, currency).Display()
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON accepts both quoted decimal strings and bare JSON numbers.
func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(b); err != nil {
		return fmt.Errorf("invalid money amount %s: %w", string(b), err)
	}
	*m = NewMoney(d)
	return nil
}

var _ json.Marshaler = Money{}
var _ json.Unmarshaler = (*Money)(nil)
