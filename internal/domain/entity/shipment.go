package entity

import (
	"strings"
	"time"

	"teamsynchub/pkg/errors"
)

type ShipmentStatus string

const (
	ShipmentStatusPending   ShipmentStatus = "Beklemede"
	ShipmentStatusInTransit ShipmentStatus = "Yolda"
	ShipmentStatusDelivered ShipmentStatus = "Teslim Edildi"
)

var ShipmentStatuses = []ShipmentStatus{ShipmentStatusPending, ShipmentStatusInTransit, ShipmentStatusDelivered}

func (s ShipmentStatus) Valid() bool {
	for _, st := range ShipmentStatuses {
		if st == s {
			return true
		}
	}
	return false
}

func ParseShipmentStatus(v string) (ShipmentStatus, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "beklemede", "pending":
		return ShipmentStatusPending, nil
	case "yolda", "in_transit":
		return ShipmentStatusInTransit, nil
	case "teslim edildi", "delivered":
		return ShipmentStatusDelivered, nil
	}
	return "", errors.Validation("status must be one of: pending, in_transit, delivered")
}

// DateLayout is the calendar-date format of ShipmentDate.
const DateLayout = "2006-01-02"

type Shipment struct {
	ID           string         `json:"id" firestore:"-"`
	CustomerName string         `json:"customerName" firestore:"customerName"`
	Product      string         `json:"product" firestore:"product"`
	QuantityKg   int            `json:"quantityKg" firestore:"quantityKg"`
	VehiclePlate string         `json:"vehiclePlate" firestore:"vehiclePlate"`
	Status       ShipmentStatus `json:"status" firestore:"status"`
	ShipmentDate string         `json:"shipmentDate" firestore:"shipmentDate"`
	CreatedAt    time.Time      `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.TrimSpace(plate))
}

func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return errors.Validation("shipmentDate must be a date in YYYY-MM-DD format")
	}
	return nil
}

type NewShipment struct {
	CustomerName string
	Product      string
	QuantityKg   int
	VehiclePlate string
	ShipmentDate string
}

func (n NewShipment) Build() (*Shipment, error) {
	s := &Shipment{
		CustomerName: strings.TrimSpace(n.CustomerName),
		Product:      strings.TrimSpace(n.Product),
		QuantityKg:   n.QuantityKg,
		VehiclePlate: NormalizePlate(n.VehiclePlate),
		ShipmentDate: strings.TrimSpace(n.ShipmentDate),
		Status:       ShipmentStatusPending,
	}
	switch {
	case s.CustomerName == "":
		return nil, errors.Validation("customerName is required")
	case s.Product == "":
		return nil, errors.Validation("product is required")
	case s.QuantityKg < 0:
		return nil, errors.Validation("quantityKg must not be negative")
	case s.VehiclePlate == "":
		return nil, errors.Validation("vehiclePlate is required")
	}
	if err := ValidateDate(s.ShipmentDate); err != nil {
		return nil, err
	}
	return s, nil
}

type ShipmentPatch struct {
	CustomerName *string         `json:"customerName,omitempty"`
	Product      *string         `json:"product,omitempty"`
	QuantityKg   *int            `json:"quantityKg,omitempty"`
	VehiclePlate *string         `json:"vehiclePlate,omitempty"`
	ShipmentDate *string         `json:"shipmentDate,omitempty"`
	Status       *ShipmentStatus `json:"status,omitempty"`
}

// Normalize trims text fields, upper-cases the plate and validates values.
func (p ShipmentPatch) Normalize() (ShipmentPatch, error) {
	var out ShipmentPatch
	if p.CustomerName != nil {
		v := strings.TrimSpace(*p.CustomerName)
		if v == "" {
			return out, errors.Validation("customerName is required")
		}
		out.CustomerName = &v
	}
	if p.Product != nil {
		v := strings.TrimSpace(*p.Product)
		if v == "" {
			return out, errors.Validation("product is required")
		}
		out.Product = &v
	}
	if p.QuantityKg != nil {
		if *p.QuantityKg < 0 {
			return out, errors.Validation("quantityKg must not be negative")
		}
		q := *p.QuantityKg
		out.QuantityKg = &q
	}
	if p.VehiclePlate != nil {
		v := NormalizePlate(*p.VehiclePlate)
		if v == "" {
			return out, errors.Validation("vehiclePlate is required")
		}
		out.VehiclePlate = &v
	}
	if p.ShipmentDate != nil {
		v := strings.TrimSpace(*p.ShipmentDate)
		if err := ValidateDate(v); err != nil {
			return out, err
		}
		out.ShipmentDate = &v
	}
	if p.Status != nil {
		if !p.Status.Valid() {
			return out, errors.Validation("status must be one of: pending, in_transit, delivered")
		}
		s := *p.Status
		out.Status = &s
	}
	return out, nil
}

func (p ShipmentPatch) IsEmpty() bool {
	return p.CustomerName == nil && p.Product == nil && p.QuantityKg == nil &&
		p.VehiclePlate == nil && p.ShipmentDate == nil && p.Status == nil
}

func (p ShipmentPatch) Apply(s Shipment) Shipment {
	if p.CustomerName != nil {
		s.CustomerName = *p.CustomerName
	}
	if p.Product != nil {
		s.Product = *p.Product
	}
	if p.QuantityKg != nil {
		s.QuantityKg = *p.QuantityKg
	}
	if p.VehiclePlate != nil {
		s.VehiclePlate = *p.VehiclePlate
	}
	if p.ShipmentDate != nil {
		s.ShipmentDate = *p.ShipmentDate
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	return s
}
