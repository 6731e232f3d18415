package valueobject_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/message-adapter/internal/domain/valueobject"
)

func TestNewTransactionStatus_Valid(t *testing.T) {
	status, err := valueobject.NewTransactionStatus("ACCP")

	require.NoError(t, err)
	assert.Equal(t, valueobject.StatusAccepted, status)
	assert.Equal(t, "ACCP", status.String())
}

func TestNewTransactionStatus_Invalid(t *testing.T) {
	_, err := valueobject.NewTransactionStatus("NOPE")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid transaction status")
}

func TestTransactionStatus_IsAccepted(t *testing.T) {
	accepted := []valueobject.TransactionStatus{
		valueobject.StatusAccepted,
		valueobject.StatusAcceptedSettlementCompleted,
		valueobject.StatusAcceptedSettlementInProcess,
		valueobject.StatusAcceptedTechnical,
		valueobject.StatusAcceptedWithChange,
	}
	for _, s := range accepted {
		assert.True(t, s.IsAccepted(), s.String())
		assert.False(t, s.IsRejected(), s.String())
	}

	assert.False(t, valueobject.StatusPending.IsAccepted())
	assert.False(t, valueobject.StatusReceived.IsAccepted())
	assert.True(t, valueobject.StatusRejected.IsRejected())
}

func TestTransactionStatus_Zero(t *testing.T) {
	var status valueobject.TransactionStatus

	assert.True(t, status.IsZero())
	assert.False(t, status.IsAccepted())
	assert.False(t, status.IsRejected())
}

func TestValidReasonCode(t *testing.T) {
	valid := []string{"AM04", "AC01", "FF01", "RR4", "BE22"}
	for _, code := range valid {
		assert.True(t, valueobject.ValidReasonCode(code), code)
	}

	invalid := []string{"", "A", "am04", "4M04", "TOOLONG", "AM-4"}
	for _, code := range invalid {
		assert.False(t, valueobject.ValidReasonCode(code), code)
	}
}
