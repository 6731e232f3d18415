package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bibbank/message-adapter/internal/domain/valueobject"
)

// StatusReport is the outcome used to acknowledge or reject a payment
// instruction. It is created immediately before pacs.002 generation,
// serialized once, and discarded; any history of reports per instruction is
// an external collaborator's concern.
type StatusReport struct {
	reportID              string
	originalMessageID     string
	originalInstructionID string
	originalEndToEndID    string
	status                valueobject.TransactionStatus
	reasonCode            string
	additionalInfo        string
	createdAt             time.Time
}

// NewStatusReport builds a StatusReport for the given instruction.
// A rejection requires a reason code; a non-rejection must not carry one --
// the consumer relies on the presence of the reason block to distinguish the
// two.
func NewStatusReport(
	instr PaymentInstruction,
	status valueobject.TransactionStatus,
	reasonCode, additionalInfo string,
) (StatusReport, error) {
	if status.IsZero() {
		return StatusReport{}, fmt.Errorf("transaction status is required")
	}
	if status.IsRejected() && reasonCode == "" {
		return StatusReport{}, fmt.Errorf("rejection requires a reason code")
	}
	if !status.IsRejected() && reasonCode != "" {
		return StatusReport{}, fmt.Errorf("reason code %q is only valid on a rejection", reasonCode)
	}
	if reasonCode != "" && !valueobject.ValidReasonCode(reasonCode) {
		return StatusReport{}, fmt.Errorf("invalid reason code: %q", reasonCode)
	}

	return StatusReport{
		reportID:              uuid.New().String(),
		originalMessageID:     instr.MessageID(),
		originalInstructionID: instr.InstructionID(),
		originalEndToEndID:    instr.EndToEndID(),
		status:                status,
		reasonCode:            reasonCode,
		additionalInfo:        additionalInfo,
		createdAt:             time.Now().UTC(),
	}, nil
}

// ReconstructStatusReport recreates a StatusReport from persistence
// (no validation).
func ReconstructStatusReport(
	reportID, originalMessageID, originalInstructionID, originalEndToEndID string,
	status valueobject.TransactionStatus,
	reasonCode, additionalInfo string,
	createdAt time.Time,
) StatusReport {
	return StatusReport{
		reportID:              reportID,
		originalMessageID:     originalMessageID,
		originalInstructionID: originalInstructionID,
		originalEndToEndID:    originalEndToEndID,
		status:                status,
		reasonCode:            reasonCode,
		additionalInfo:        additionalInfo,
		createdAt:             createdAt,
	}
}

func (sr StatusReport) ReportID() string                         { return sr.reportID }
func (sr StatusReport) OriginalMessageID() string                { return sr.originalMessageID }
func (sr StatusReport) OriginalInstructionID() string            { return sr.originalInstructionID }
func (sr StatusReport) OriginalEndToEndID() string               { return sr.originalEndToEndID }
func (sr StatusReport) Status() valueobject.TransactionStatus    { return sr.status }
func (sr StatusReport) ReasonCode() string                       { return sr.reasonCode }
func (sr StatusReport) AdditionalInfo() string                   { return sr.additionalInfo }
func (sr StatusReport) CreatedAt() time.Time                     { return sr.createdAt }
