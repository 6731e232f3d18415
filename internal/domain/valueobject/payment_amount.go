package valueobject

import (
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// PaymentAmount is an immutable monetary value: a high-precision decimal
// magnitude plus a 3-letter currency code validated against an allow-list.
// There is no implicit currency conversion, ever; two amounts are equal only
// if both magnitude and currency code match exactly.
type PaymentAmount struct {
	value    decimal.Decimal
	currency string
}

// NewPaymentAmount creates a PaymentAmount validated against the default
// currency allow-list.
func NewPaymentAmount(value decimal.Decimal, currency string) (PaymentAmount, error) {
	return NewPaymentAmountIn(value, currency, DefaultCurrencySet())
}

// NewPaymentAmountIn creates a PaymentAmount validated against the given
// currency set.
func NewPaymentAmountIn(value decimal.Decimal, currency string, currencies CurrencySet) (PaymentAmount, error) {
	if !currencyCodeRe.MatchString(currency) {
		return PaymentAmount{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", currency)
	}
	if !currencies.Contains(currency) {
		return PaymentAmount{}, fmt.Errorf("currency %q is not in the supported set", currency)
	}
	return PaymentAmount{value: value, currency: currency}, nil
}

// ReconstructPaymentAmount rebuilds an amount from persistence without
// consulting any allow-list. Archived rows passed currency validation on
// ingest, possibly against a custom currency set the reading process does
// not know about.
func ReconstructPaymentAmount(value decimal.Decimal, currency string) PaymentAmount {
	return PaymentAmount{value: value, currency: currency}
}

// Value returns the decimal magnitude.
func (a PaymentAmount) Value() decimal.Decimal {
	return a.value
}

// Currency returns the currency code.
func (a PaymentAmount) Currency() string {
	return a.currency
}

// IsPositive returns true if the magnitude is strictly greater than zero.
func (a PaymentAmount) IsPositive() bool {
	return a.value.IsPositive()
}

// Equal returns true if both magnitude and currency code match exactly.
func (a PaymentAmount) Equal(other PaymentAmount) bool {
	return a.currency == other.currency && a.value.Equal(other.value)
}

// IsZero returns true if the amount is uninitialized or zero-valued.
func (a PaymentAmount) IsZero() bool {
	return a.currency == "" || a.value.IsZero()
}

// String formats the amount as "<value> <currency>", for example "50000.00 USD".
func (a PaymentAmount) String() string {
	return fmt.Sprintf("%s %s", a.value.String(), a.currency)
}
