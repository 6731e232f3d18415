package event

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"github.com/bibbank/message-adapter/internal/events"
)

const AggregateTypeISOMessage = "ISOMessage"

// InstructionParsed is emitted when an inbound pacs.008 message has been
// parsed into a payment instruction.
type InstructionParsed struct {
	events.BaseEvent
	MessageID     string          `json:"message_id"`
	InstructionID string          `json:"instruction_id"`
	EndToEndID    string          `json:"end_to_end_id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	Source        string          `json:"source"`
}

func NewInstructionParsed(messageID, instructionID, endToEndID string, amount decimal.Decimal, currency, source string) InstructionParsed {
	payload, _ := json.Marshal(struct {
		MessageID     string          `json:"message_id"`
		InstructionID string          `json:"instruction_id"`
		EndToEndID    string          `json:"end_to_end_id"`
		Amount        decimal.Decimal `json:"amount"`
		Currency      string          `json:"currency"`
		Source        string          `json:"source"`
	}{messageID, instructionID, endToEndID, amount, currency, source})

	return InstructionParsed{
		BaseEvent:     events.NewBaseEvent("iso20022.message.parsed", messageID, AggregateTypeISOMessage, payload),
		MessageID:     messageID,
		InstructionID: instructionID,
		EndToEndID:    endToEndID,
		Amount:        amount,
		Currency:      currency,
		Source:        source,
	}
}

// MessageRejected is emitted when an inbound message cannot be parsed at
// all: malformed XML, missing required structure, or an unsupported
// currency. No financial action is taken for such messages.
type MessageRejected struct {
	events.BaseEvent
	Source string `json:"source"`
	Kind   string `json:"kind"`
	Detail string `json:"detail"`
}

func NewMessageRejected(source, kind, detail string) MessageRejected {
	payload, _ := json.Marshal(struct {
		Source string `json:"source"`
		Kind   string `json:"kind"`
		Detail string `json:"detail"`
	}{source, kind, detail})

	return MessageRejected{
		BaseEvent: events.NewBaseEvent("iso20022.message.rejected", source, AggregateTypeISOMessage, payload),
		Source:    source,
		Kind:      kind,
		Detail:    detail,
	}
}

// StatusReportIssued is emitted when a pacs.002 status report has been
// generated for an instruction.
type StatusReportIssued struct {
	events.BaseEvent
	ReportID          string `json:"report_id"`
	OriginalMessageID string `json:"original_message_id"`
	Status            string `json:"status"`
	ReasonCode        string `json:"reason_code,omitempty"`
}

func NewStatusReportIssued(reportID, originalMessageID, status, reasonCode string) StatusReportIssued {
	payload, _ := json.Marshal(struct {
		ReportID          string `json:"report_id"`
		OriginalMessageID string `json:"original_message_id"`
		Status            string `json:"status"`
		ReasonCode        string `json:"reason_code,omitempty"`
	}{reportID, originalMessageID, status, reasonCode})

	return StatusReportIssued{
		BaseEvent:         events.NewBaseEvent("iso20022.status.issued", originalMessageID, AggregateTypeISOMessage, payload),
		ReportID:          reportID,
		OriginalMessageID: originalMessageID,
		Status:            status,
		ReasonCode:        reasonCode,
	}
}
