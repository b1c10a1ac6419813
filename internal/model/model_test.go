package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidStatus(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidStatus(StatusInStock))
	assert.True(t, ValidStatus(StatusSold))
	assert.True(t, ValidStatus(StatusMaintenance))
	assert.False(t, ValidStatus(""))
	assert.False(t, ValidStatus("parked"))
	assert.False(t, ValidStatus("In_Stock"))
}

func TestValidPaymentMethod(t *testing.T) {
	t.Parallel()

	assert.True(t, ValidPaymentMethod(PaymentCash))
	assert.True(t, ValidPaymentMethod(PaymentCredit))
	assert.True(t, ValidPaymentMethod(PaymentFinance))
	assert.False(t, ValidPaymentMethod(""))
	assert.False(t, ValidPaymentMethod("barter"))
}
