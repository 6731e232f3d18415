package dto

import (
	"time"

	"github.com/bibbank/message-adapter/internal/domain/model"
)

// ProcessMessageRequest carries one raw inbound pacs.008 message.
type ProcessMessageRequest struct {
	RawXML string
	// Source tags where the message came from (connector name, file name,
	// queue) for events and audit.
	Source string
}

// InstructionSummary is the flattened view of a parsed instruction returned
// over the API.
type InstructionSummary struct {
	MessageID       string
	InstructionID   string
	EndToEndID      string
	TransactionID   string
	Amount          string
	Currency        string
	DebtorName      string
	DebtorAccount   string
	DebtorBIC       string
	CreditorName    string
	CreditorAccount string
	CreditorBIC     string
	SettlementDate  string
	RemittanceInfo  string
	CreatedAt       time.Time
}

// ProcessMessageResponse is the disposition of one processed message.
type ProcessMessageResponse struct {
	Instruction InstructionSummary
	ReportID    string
	Status      string
	ReasonCode  string
	StatusXML   string
}

type GetMessageRequest struct {
	MessageID string
}

type GetMessageResponse struct {
	Instruction InstructionSummary
	ReportID    string
	Status      string
	ReasonCode  string
}

type ListMessagesRequest struct {
	Limit  int
	Offset int
}

type ListMessagesResponse struct {
	Messages   []InstructionSummary
	TotalCount int
}

// ToInstructionSummary flattens a PaymentInstruction.
func ToInstructionSummary(instr model.PaymentInstruction) InstructionSummary {
	settlement := ""
	if !instr.SettlementDate().IsZero() {
		settlement = instr.SettlementDate().Format("2006-01-02")
	}
	return InstructionSummary{
		MessageID:       instr.MessageID(),
		InstructionID:   instr.InstructionID(),
		EndToEndID:      instr.EndToEndID(),
		TransactionID:   instr.TransactionID(),
		Amount:          instr.Amount().Value().String(),
		Currency:        instr.Amount().Currency(),
		DebtorName:      instr.Debtor().Name(),
		DebtorAccount:   instr.Debtor().AccountID(),
		DebtorBIC:       instr.DebtorAgent().BIC(),
		CreditorName:    instr.Creditor().Name(),
		CreditorAccount: instr.Creditor().AccountID(),
		CreditorBIC:     instr.CreditorAgent().BIC(),
		SettlementDate:  settlement,
		RemittanceInfo:  instr.RemittanceInfo(),
		CreatedAt:       instr.CreatedAt(),
	}
}
