package model

import (
	"time"

	"github.com/bibbank/message-adapter/internal/domain/valueobject"
)

// PaymentInstruction is the canonical internal representation of one
// customer credit transfer, extracted from an inbound pacs.008 message.
// Once constructed from a successful parse it is never mutated; any
// correction requires re-parsing a new message. The sanitized source XML is
// retained verbatim for audit.
type PaymentInstruction struct {
	messageID      string
	instructionID  string
	endToEndID     string
	transactionID  string // UETR when present, otherwise TxId
	debtor         PaymentParty
	creditor       PaymentParty
	debtorAgent    PaymentParty
	creditorAgent  PaymentParty
	amount         valueobject.PaymentAmount
	createdAt      time.Time
	settlementDate time.Time
	remittanceInfo string
	rawXML         string
}

// NewPaymentInstruction assembles a PaymentInstruction from parsed fields.
// Field presence rules are enforced by the parser, not here; this constructor
// only freezes the values.
func NewPaymentInstruction(
	messageID, instructionID, endToEndID, transactionID string,
	debtor, creditor, debtorAgent, creditorAgent PaymentParty,
	amount valueobject.PaymentAmount,
	createdAt, settlementDate time.Time,
	remittanceInfo, rawXML string,
) PaymentInstruction {
	return PaymentInstruction{
		messageID:      messageID,
		instructionID:  instructionID,
		endToEndID:     endToEndID,
		transactionID:  transactionID,
		debtor:         debtor,
		creditor:       creditor,
		debtorAgent:    debtorAgent,
		creditorAgent:  creditorAgent,
		amount:         amount,
		createdAt:      createdAt,
		settlementDate: settlementDate,
		remittanceInfo: remittanceInfo,
		rawXML:         rawXML,
	}
}

func (pi PaymentInstruction) MessageID() string                  { return pi.messageID }
func (pi PaymentInstruction) InstructionID() string              { return pi.instructionID }
func (pi PaymentInstruction) EndToEndID() string                 { return pi.endToEndID }
func (pi PaymentInstruction) TransactionID() string              { return pi.transactionID }
func (pi PaymentInstruction) Debtor() PaymentParty               { return pi.debtor }
func (pi PaymentInstruction) Creditor() PaymentParty             { return pi.creditor }
func (pi PaymentInstruction) DebtorAgent() PaymentParty          { return pi.debtorAgent }
func (pi PaymentInstruction) CreditorAgent() PaymentParty        { return pi.creditorAgent }
func (pi PaymentInstruction) Amount() valueobject.PaymentAmount  { return pi.amount }
func (pi PaymentInstruction) CreatedAt() time.Time               { return pi.createdAt }
func (pi PaymentInstruction) SettlementDate() time.Time          { return pi.settlementDate }
func (pi PaymentInstruction) RemittanceInfo() string             { return pi.remittanceInfo }
func (pi PaymentInstruction) RawXML() string                     { return pi.rawXML }
