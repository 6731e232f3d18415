package model

// PaymentParty is a named actor in a credit transfer: the debtor, the
// creditor, or one of their settling agents. It is fully value-typed and
// immutable after construction; identity is nothing beyond these fields.
type PaymentParty struct {
	name      string
	accountID string // IBAN or local account number
	bic       string // BIC/SWIFT code, or clearing system member id fallback
	address   string // free-text address lines
	country   string // ISO country code
}

// NewPaymentParty creates a PaymentParty. All fields are optional at this
// level; whether a party is sufficiently identified is an instruction-level
// validation concern.
func NewPaymentParty(name, accountID, bic, address, country string) PaymentParty {
	return PaymentParty{
		name:      name,
		accountID: accountID,
		bic:       bic,
		address:   address,
		country:   country,
	}
}

func (p PaymentParty) Name() string      { return p.name }
func (p PaymentParty) AccountID() string { return p.accountID }
func (p PaymentParty) BIC() string       { return p.bic }
func (p PaymentParty) Address() string   { return p.address }
func (p PaymentParty) Country() string   { return p.country }

// IsIdentified returns true if the party carries at least one identifying
// field (account identifier or name).
func (p PaymentParty) IsIdentified() bool {
	return p.accountID != "" || p.name != ""
}
