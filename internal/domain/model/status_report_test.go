package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/message-adapter/internal/domain/model"
	"github.com/bibbank/message-adapter/internal/domain/valueobject"
)

func testInstruction(t *testing.T) model.PaymentInstruction {
	t.Helper()
	amount, err := valueobject.NewPaymentAmount(decimal.RequireFromString("50000.00"), "USD")
	require.NoError(t, err)

	return model.NewPaymentInstruction(
		"MSGID-001", "INSTR-001", "E2E-001", "TX-001",
		model.NewPaymentParty("Acme Corp", "US33BOFA12345678901234", "", "", "US"),
		model.NewPaymentParty("Globex Ltd", "GB82WEST12345698765432", "", "", "GB"),
		model.NewPaymentParty("", "", "BOFAUS3N", "", ""),
		model.NewPaymentParty("", "", "WESTGB22", "", ""),
		amount,
		time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC),
		time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
		"Invoice 4711", "<Document/>",
	)
}

func TestNewStatusReport_Accepted(t *testing.T) {
	instr := testInstruction(t)

	report, err := model.NewStatusReport(instr, valueobject.StatusAccepted, "", "")

	require.NoError(t, err)
	assert.NotEmpty(t, report.ReportID())
	assert.Equal(t, "MSGID-001", report.OriginalMessageID())
	assert.Equal(t, "INSTR-001", report.OriginalInstructionID())
	assert.Equal(t, "E2E-001", report.OriginalEndToEndID())
	assert.Equal(t, valueobject.StatusAccepted, report.Status())
	assert.Empty(t, report.ReasonCode())
}

func TestNewStatusReport_RejectionRequiresReason(t *testing.T) {
	instr := testInstruction(t)

	_, err := model.NewStatusReport(instr, valueobject.StatusRejected, "", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reason code")
}

func TestNewStatusReport_AcceptedMustNotCarryReason(t *testing.T) {
	instr := testInstruction(t)

	_, err := model.NewStatusReport(instr, valueobject.StatusAccepted, "AM04", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "only valid on a rejection")
}

func TestNewStatusReport_InvalidReasonShape(t *testing.T) {
	instr := testInstruction(t)

	_, err := model.NewStatusReport(instr, valueobject.StatusRejected, "bogus!", "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid reason code")
}

func TestNewStatusReport_ZeroStatus(t *testing.T) {
	instr := testInstruction(t)

	_, err := model.NewStatusReport(instr, valueobject.TransactionStatus{}, "", "")

	require.Error(t, err)
}

func TestNewStatusReport_UniqueReportIDs(t *testing.T) {
	instr := testInstruction(t)

	r1, err := model.NewStatusReport(instr, valueobject.StatusAccepted, "", "")
	require.NoError(t, err)
	r2, err := model.NewStatusReport(instr, valueobject.StatusAccepted, "", "")
	require.NoError(t, err)

	assert.NotEqual(t, r1.ReportID(), r2.ReportID())
}

func TestReconstructStatusReport(t *testing.T) {
	created := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	report := model.ReconstructStatusReport(
		"RPT-1", "MSGID-001", "INSTR-001", "E2E-001",
		valueobject.StatusRejected, "AM04", "amount must be strictly positive", created,
	)

	assert.Equal(t, "RPT-1", report.ReportID())
	assert.Equal(t, valueobject.StatusRejected, report.Status())
	assert.Equal(t, "AM04", report.ReasonCode())
	assert.Equal(t, created, report.CreatedAt())
}
