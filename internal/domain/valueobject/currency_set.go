package valueobject

import "sort"

// CurrencySet is the allow-list of currency codes the adapter accepts.
// Codes outside the set are never silently accepted; extending the set is an
// explicit configuration decision.
type CurrencySet map[string]struct{}

// defaultCurrencyCodes covers the major fiat currencies seen on the SWIFT
// corridors we clear, the precious-metal and SDR codes, and the two
// platform-native settlement asset codes (XNA/XNB).
var defaultCurrencyCodes = []string{
	"USD", "EUR", "GBP", "JPY", "CHF", "CAD", "AUD", "NZD",
	"CNY", "HKD", "SGD", "SEK", "NOK", "DKK",
	"XAU", "XAG", "XPT", "XDR",
	"XNA", "XNB",
}

// NewCurrencySet builds a CurrencySet from the given codes.
func NewCurrencySet(codes ...string) CurrencySet {
	s := make(CurrencySet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

// DefaultCurrencySet returns the standard allow-list.
func DefaultCurrencySet() CurrencySet {
	return NewCurrencySet(defaultCurrencyCodes...)
}

// Contains reports whether code is in the set. Matching is exact; codes are
// never case-folded.
func (s CurrencySet) Contains(code string) bool {
	_, ok := s[code]
	return ok
}

// With returns a copy of the set extended with the given codes.
func (s CurrencySet) With(codes ...string) CurrencySet {
	out := make(CurrencySet, len(s)+len(codes))
	for c := range s {
		out[c] = struct{}{}
	}
	for _, c := range codes {
		out[c] = struct{}{}
	}
	return out
}

// Codes returns the codes in the set in sorted order.
func (s CurrencySet) Codes() []string {
	codes := make([]string, 0, len(s))
	for c := range s {
		codes = append(codes, c)
	}
	sort.Strings(codes)
	return codes
}
