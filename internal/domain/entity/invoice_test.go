package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jortegav/retailos-api/internal/domain/entity"
)

func TestCanTransitionStatus(t *testing.T) {
	cases := []struct {
		from, to string
		ok       bool
	}{
		{entity.InvoiceStatusPending, entity.InvoiceStatusPaid, true},
		{entity.InvoiceStatusPending, entity.InvoiceStatusPartial, true},
		{entity.InvoiceStatusPartial, entity.InvoiceStatusPaid, true},
		{entity.InvoiceStatusPaid, entity.InvoiceStatusPending, false},
		{entity.InvoiceStatusPaid, entity.InvoiceStatusPartial, false},
		{entity.InvoiceStatusPartial, entity.InvoiceStatusPending, false},
		{entity.InvoiceStatusPending, entity.InvoiceStatusPending, false},
		{entity.InvoiceStatusPaid, entity.InvoiceStatusPaid, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, entity.CanTransitionStatus(tc.from, tc.to),
			"%s → %s", tc.from, tc.to)
	}
}

func TestValidCustomerType(t *testing.T) {
	assert.True(t, entity.ValidCustomerType(entity.CustomerTypeRetail))
	assert.True(t, entity.ValidCustomerType(entity.CustomerTypeWholesale))
	assert.False(t, entity.ValidCustomerType("mayorista"))
	assert.False(t, entity.ValidCustomerType(""))
}

func TestStockMovementDelta(t *testing.T) {
	in := &entity.StockMovement{Type: entity.MovementTypeIn, Quantity: 7}
	out := &entity.StockMovement{Type: entity.MovementTypeOut, Quantity: 3}

	assert.Equal(t, 7, in.Delta())
	assert.Equal(t, -3, out.Delta())
}
