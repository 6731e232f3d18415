package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/message-adapter/internal/domain/model"
	"github.com/bibbank/message-adapter/internal/domain/valueobject"
)

// Candidate element paths per extracted field, tried in order. Keeping the
// schema-tolerance policy in one table (instead of bespoke lookup code per
// field) makes it independently testable and easy to extend for new schema
// versions.
var (
	// Relative to the document root.
	msgIDPaths      = []string{"FIToFICstmrCdtTrf/GrpHdr/MsgId", "GrpHdr/MsgId"}
	creDtTmPaths    = []string{"FIToFICstmrCdtTrf/GrpHdr/CreDtTm", "GrpHdr/CreDtTm"}
	txInfoPaths     = []string{"FIToFICstmrCdtTrf/CdtTrfTxInf", "CdtTrfTxInf"}

	// Relative to the CdtTrfTxInf block.
	instrIDPaths    = []string{"PmtId/InstrId"}
	endToEndIDPaths = []string{"PmtId/EndToEndId"}
	txIDPaths       = []string{"PmtId/TxId"}
	uetrPaths       = []string{"PmtId/UETR"}
	amountPaths     = []string{"IntrBkSttlmAmt", "InstdAmt", "Amt/InstdAmt"}
	sttlmDtPaths    = []string{"IntrBkSttlmDt"}
	rmtInfPaths     = []string{"RmtInf/Ustrd"}

	debtorPaths = partyPaths{
		name:     []string{"Dbtr/Nm"},
		adrLine:  []string{"Dbtr/PstlAdr/AdrLine"},
		country:  []string{"Dbtr/PstlAdr/Ctry"},
		iban:     []string{"DbtrAcct/Id/IBAN"},
		otherID:  []string{"DbtrAcct/Id/Othr/Id"},
		bic:      []string{"DbtrAgt/FinInstnId/BICFI", "DbtrAgt/FinInstnId/BIC"},
		clearing: []string{"DbtrAgt/FinInstnId/ClrSysMmbId/MmbId"},
	}
	creditorPaths = partyPaths{
		name:     []string{"Cdtr/Nm"},
		adrLine:  []string{"Cdtr/PstlAdr/AdrLine"},
		country:  []string{"Cdtr/PstlAdr/Ctry"},
		iban:     []string{"CdtrAcct/Id/IBAN"},
		otherID:  []string{"CdtrAcct/Id/Othr/Id"},
		bic:      []string{"CdtrAgt/FinInstnId/BICFI", "CdtrAgt/FinInstnId/BIC"},
		clearing: []string{"CdtrAgt/FinInstnId/ClrSysMmbId/MmbId"},
	}
)

type partyPaths struct {
	name     []string
	adrLine  []string
	country  []string
	iban     []string
	otherID  []string
	bic      []string
	clearing []string
}

// creation timestamps arrive as RFC3339 with or without an offset; the
// settlement date is a plain ISO date.
var creDtTmLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"}

// ParseCreditTransfer parses a raw pacs.008 customer credit transfer into a
// PaymentInstruction. The input is sanitized before any XML parsing; the
// sanitized text is what the instruction retains as its audit copy.
//
// Failure modes: *MalformedXMLError (not well-formed, or empty),
// *SchemaValidationError (well-formed but missing required structure, or an
// unparsable amount), *CurrencyValidationError (currency outside the
// allow-list). An instruction is either fully extracted or not returned at
// all; there is no partial success.
func (a *MessageAdapter) ParseCreditTransfer(raw string) (model.PaymentInstruction, error) {
	sanitized := SanitizeXML(raw)

	if strings.TrimSpace(sanitized) == "" {
		return model.PaymentInstruction{}, &MalformedXMLError{Detail: "empty input"}
	}

	root, err := decodeTree(sanitized)
	if err != nil {
		return model.PaymentInstruction{}, &MalformedXMLError{Detail: "input is not well-formed XML", Err: err}
	}

	lookup := newNodeLookup(root)

	messageID := lookup.text(root, msgIDPaths...)
	createdAt := parseTimestamp(lookup.text(root, creDtTmPaths...))

	// The transaction block is the one structurally required element; a
	// message without it is well-formed but semantically incomplete.
	txInfo := findFirst(lookup, root, txInfoPaths)
	if txInfo == nil {
		return model.PaymentInstruction{}, &SchemaValidationError{
			Field:  "CdtTrfTxInf",
			Detail: "credit transfer transaction information block is required",
		}
	}

	instructionID := lookup.text(txInfo, instrIDPaths...)
	endToEndID := lookup.text(txInfo, endToEndIDPaths...)

	// UETR is the more authoritative identifier when both are present.
	transactionID := lookup.text(txInfo, txIDPaths...)
	if uetr := lookup.text(txInfo, uetrPaths...); uetr != "" {
		transactionID = uetr
	}

	amount, err := a.extractAmount(lookup, txInfo)
	if err != nil {
		return model.PaymentInstruction{}, err
	}

	settlementDate := parseDate(lookup.text(txInfo, sttlmDtPaths...))
	remittanceInfo := lookup.text(txInfo, rmtInfPaths...)

	debtor := extractParty(lookup, txInfo, debtorPaths)
	creditor := extractParty(lookup, txInfo, creditorPaths)
	debtorAgent := model.NewPaymentParty("", "", partyBIC(lookup, txInfo, debtorPaths), "", "")
	creditorAgent := model.NewPaymentParty("", "", partyBIC(lookup, txInfo, creditorPaths), "", "")

	instr := model.NewPaymentInstruction(
		messageID, instructionID, endToEndID, transactionID,
		debtor, creditor, debtorAgent, creditorAgent,
		amount,
		createdAt, settlementDate,
		remittanceInfo, sanitized,
	)

	a.recordParsed()
	a.logger.Debug("parsed credit transfer",
		"message_id", messageID,
		"instruction_id", instructionID,
		"amount", amount.String(),
	)

	return instr, nil
}

// extractAmount locates the settlement amount element (interbank settlement
// amount preferred, instructed amount as fallback), reads the currency from
// the Ccy attribute, and parses the magnitude as a high-precision decimal.
func (a *MessageAdapter) extractAmount(lookup nodeLookup, txInfo *xmlNode) (valueobject.PaymentAmount, error) {
	node := findFirst(lookup, txInfo, amountPaths)
	if node == nil {
		return valueobject.PaymentAmount{}, &SchemaValidationError{
			Field:  "IntrBkSttlmAmt",
			Detail: "no settlement or instructed amount element found",
		}
	}

	value, err := decimal.NewFromString(node.text())
	if err != nil {
		return valueobject.PaymentAmount{}, &SchemaValidationError{
			Field:  node.XMLName.Local,
			Detail: fmt.Sprintf("amount value %q is not a valid decimal", node.text()),
		}
	}

	ccy := node.attr("Ccy")
	if !a.currencies.Contains(ccy) {
		return valueobject.PaymentAmount{}, &CurrencyValidationError{Code: ccy}
	}

	amount, err := valueobject.NewPaymentAmountIn(value, ccy, a.currencies)
	if err != nil {
		return valueobject.PaymentAmount{}, &CurrencyValidationError{Code: ccy}
	}
	return amount, nil
}

// extractParty builds a debtor or creditor party: IBAN preferred over the
// generic other-identification, empty string when neither is present; BIC
// preferred over the clearing system member id for the bank code.
func extractParty(lookup nodeLookup, txInfo *xmlNode, paths partyPaths) model.PaymentParty {
	name := lookup.text(txInfo, paths.name...)
	country := lookup.text(txInfo, paths.country...)
	address := strings.Join(lookup.texts(txInfo, paths.adrLine...), ", ")

	account := lookup.text(txInfo, paths.iban...)
	if account == "" {
		account = lookup.text(txInfo, paths.otherID...)
	}

	return model.NewPaymentParty(name, account, partyBIC(lookup, txInfo, paths), address, country)
}

func partyBIC(lookup nodeLookup, txInfo *xmlNode, paths partyPaths) string {
	bic := lookup.text(txInfo, paths.bic...)
	if bic == "" {
		bic = lookup.text(txInfo, paths.clearing...)
	}
	return bic
}

// findFirst resolves the first matching candidate path.
func findFirst(lookup nodeLookup, start *xmlNode, candidates []string) *xmlNode {
	for _, p := range candidates {
		if n := lookup.find(start, p); n != nil {
			return n
		}
	}
	return nil
}

func parseTimestamp(s string) time.Time {
	for _, layout := range creDtTmLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseDate(s string) time.Time {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	return time.Time{}
}
