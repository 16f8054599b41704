package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamsynchub/pkg/errors"
)

func TestNewShipment_Build(t *testing.T) {
	shipment, err := NewShipment{
		CustomerName: " Teknik Ambalaj ",
		Product:      "PVC Levha",
		QuantityKg:   1200,
		VehiclePlate: " 34 klm 456 ",
		ShipmentDate: "2024-07-29",
	}.Build()

	require.NoError(t, err)
	assert.Equal(t, "Teknik Ambalaj", shipment.CustomerName)
	assert.Equal(t, "34 KLM 456", shipment.VehiclePlate)
	assert.Equal(t, ShipmentStatusPending, shipment.Status)
}

func TestNewShipment_BuildRejectsBadDate(t *testing.T) {
	_, err := NewShipment{
		CustomerName: "x",
		Product:      "y",
		VehiclePlate: "34 A 1",
		ShipmentDate: "29.07.2024",
	}.Build()
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestShipmentPatch_Normalize(t *testing.T) {
	plate := "06 abc 01"
	date := "2024-08-01"
	patch, err := ShipmentPatch{VehiclePlate: &plate, ShipmentDate: &date}.Normalize()
	require.NoError(t, err)
	assert.Equal(t, "06 ABC 01", *patch.VehiclePlate)

	updated := patch.Apply(Shipment{VehiclePlate: "old", ShipmentDate: "2024-07-01", Product: "PP"})
	assert.Equal(t, "06 ABC 01", updated.VehiclePlate)
	assert.Equal(t, "2024-08-01", updated.ShipmentDate)
	assert.Equal(t, "PP", updated.Product)

	qty := -5
	_, err = ShipmentPatch{QuantityKg: &qty}.Normalize()
	assert.True(t, errors.Is(err, errors.CodeValidation))
}

func TestParseShipmentStatus(t *testing.T) {
	got, err := ParseShipmentStatus("in_transit")
	require.NoError(t, err)
	assert.Equal(t, ShipmentStatusInTransit, got)

	got, err = ParseShipmentStatus("Teslim Edildi")
	require.NoError(t, err)
	assert.Equal(t, ShipmentStatusDelivered, got)

	_, err = ParseShipmentStatus("lost")
	assert.Error(t, err)
}
