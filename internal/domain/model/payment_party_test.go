package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bibbank/message-adapter/internal/domain/model"
)

func TestPaymentParty_IsIdentified(t *testing.T) {
	byAccount := model.NewPaymentParty("", "GB82WEST12345698765432", "", "", "")
	byName := model.NewPaymentParty("Acme Corp", "", "", "", "")
	both := model.NewPaymentParty("Acme Corp", "GB82WEST12345698765432", "", "", "GB")
	neither := model.NewPaymentParty("", "", "WESTGB22", "1 Main St", "GB")

	assert.True(t, byAccount.IsIdentified())
	assert.True(t, byName.IsIdentified())
	assert.True(t, both.IsIdentified())
	assert.False(t, neither.IsIdentified())
}
