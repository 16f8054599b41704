package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamsynchub/pkg/errors"
)

func TestNewSalesRecord_Build(t *testing.T) {
	record, err := NewSalesRecord{
		CustomerName: "  ABC Plastik A.Ş. ",
		MaterialName: "PET Granül",
		Quantity:     2500,
		UnitPrice:    18.50,
		Currency:     CurrencyTRY,
	}.Build("u2")

	require.NoError(t, err)
	assert.Equal(t, "ABC Plastik A.Ş.", record.CustomerName)
	assert.Equal(t, 46250.0, record.Price)
	assert.Equal(t, 18.5, record.UnitPrice())
	assert.Equal(t, SalesStatusPending, record.Status)
	assert.Equal(t, "u2", record.AssignedTo)
}

func TestNewSalesRecord_BuildRejectsInvalidInput(t *testing.T) {
	cases := map[string]NewSalesRecord{
		"blank customer":    {CustomerName: " ", MaterialName: "x", Currency: CurrencyTRY},
		"blank material":    {CustomerName: "x", MaterialName: "", Currency: CurrencyTRY},
		"negative quantity": {CustomerName: "x", MaterialName: "x", Quantity: -1, Currency: CurrencyTRY},
		"negative price":    {CustomerName: "x", MaterialName: "x", UnitPrice: -1, Currency: CurrencyTRY},
		"unknown currency":  {CustomerName: "x", MaterialName: "x", Currency: "GBP"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := input.Build("u1")
			assert.True(t, errors.Is(err, errors.CodeValidation))
		})
	}
}

func TestSalesRecord_UnitPriceZeroQuantity(t *testing.T) {
	assert.Equal(t, 0.0, SalesRecord{Quantity: 0, Price: 100}.UnitPrice())
}

func TestSalesRecordEdit_QuantityChangeKeepsUnitPrice(t *testing.T) {
	current := SalesRecord{Quantity: 2500, Price: 46250}
	quantity := 5000.0

	patch, err := SalesRecordEdit{Quantity: &quantity}.Resolve(current)
	require.NoError(t, err)
	require.NotNil(t, patch.Price)
	assert.Equal(t, 92500.0, *patch.Price)

	updated := patch.Apply(current)
	assert.Equal(t, current.UnitPrice(), updated.UnitPrice())
}

func TestSalesRecordEdit_UnitPriceUsesNewQuantity(t *testing.T) {
	current := SalesRecord{Quantity: 1000, Price: 5000}
	quantity := 200.0
	unit := 2.5

	patch, err := SalesRecordEdit{Quantity: &quantity, UnitPrice: &unit}.Resolve(current)
	require.NoError(t, err)
	assert.Equal(t, 500.0, *patch.Price)
	assert.Equal(t, 200.0, *patch.Quantity)
}

func TestSalesRecordEdit_Validation(t *testing.T) {
	blank := " "
	currency := Currency("GBP")
	status := SalesStatus("Archived")
	negative := -3.0

	edits := []SalesRecordEdit{
		{CustomerName: &blank},
		{MaterialName: &blank},
		{AssignedTo: &blank},
		{Currency: &currency},
		{Status: &status},
		{Quantity: &negative},
		{UnitPrice: &negative},
	}
	for _, edit := range edits {
		_, err := edit.Resolve(SalesRecord{Quantity: 1, Price: 1})
		assert.True(t, errors.Is(err, errors.CodeValidation))
	}
}

func TestSalesRecordEdit_EmptyPatch(t *testing.T) {
	patch, err := SalesRecordEdit{}.Resolve(SalesRecord{Quantity: 1, Price: 1})
	require.NoError(t, err)
	assert.True(t, patch.IsEmpty())
}

func TestParseSalesStatus(t *testing.T) {
	for input, want := range map[string]SalesStatus{
		"To Do":       SalesStatusPending,
		"pending":     SalesStatusPending,
		"In Progress": SalesStatusInProgress,
		"in_progress": SalesStatusInProgress,
		"DONE":        SalesStatusDone,
	} {
		got, err := ParseSalesStatus(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got)
	}

	_, err := ParseSalesStatus("archived")
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestSalesStatus_Rank(t *testing.T) {
	assert.Less(t, SalesStatusPending.Rank(), SalesStatusInProgress.Rank())
	assert.Less(t, SalesStatusInProgress.Rank(), SalesStatusDone.Rank())
	assert.False(t, SalesStatus("x").Valid())
}
