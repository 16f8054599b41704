package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"teamsynchub/pkg/errors"
)

type SalesStatus string

// Wire values match the documents already stored in the "projects"
// collection.
const (
	SalesStatusPending    SalesStatus = "To Do"
	SalesStatusInProgress SalesStatus = "In Progress"
	SalesStatusDone       SalesStatus = "Done"
)

// SalesPipeline is the fixed board column order.
var SalesPipeline = []SalesStatus{SalesStatusPending, SalesStatusInProgress, SalesStatusDone}

// Rank orders statuses along the pipeline; unknown values sort last.
func (s SalesStatus) Rank() int {
	for i, st := range SalesPipeline {
		if st == s {
			return i
		}
	}
	return len(SalesPipeline)
}

func (s SalesStatus) Valid() bool {
	return s.Rank() < len(SalesPipeline)
}

// ParseSalesStatus accepts the wire value or its API alias.
func ParseSalesStatus(v string) (SalesStatus, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "to do", "pending":
		return SalesStatusPending, nil
	case "in progress", "in_progress":
		return SalesStatusInProgress, nil
	case "done":
		return SalesStatusDone, nil
	}
	return "", errors.Validation("status must be one of: pending, in_progress, done")
}

type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) Valid() bool {
	switch c {
	case CurrencyTRY, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// SalesRecord is stored in the "projects" collection. Price is the total
// amount; the unit price is always derived from it.
type SalesRecord struct {
	ID           string      `json:"id" firestore:"-"`
	CustomerName string      `json:"customerName" firestore:"customerName"`
	MaterialName string      `json:"materialName" firestore:"materialName"`
	Quantity     float64     `json:"quantity" firestore:"quantity"`
	Price        float64     `json:"price" firestore:"price"`
	Currency     Currency    `json:"currency" firestore:"currency"`
	AssignedTo   string      `json:"assignedTo" firestore:"assignedTo"`
	Status       SalesStatus `json:"status" firestore:"status"`
	CreatedAt    time.Time   `json:"createdAt" firestore:"createdAt,serverTimestamp"`
}

// UnitPrice is price/quantity, or 0 for an empty quantity.
func (r SalesRecord) UnitPrice() float64 {
	if r.Quantity <= 0 {
		return 0
	}
	return decimal.NewFromFloat(r.Price).Div(decimal.NewFromFloat(r.Quantity)).InexactFloat64()
}

func TotalPrice(quantity, unitPrice float64) float64 {
	return decimal.NewFromFloat(quantity).Mul(decimal.NewFromFloat(unitPrice)).InexactFloat64()
}

// RescalePrice returns the total for newQuantity at the record's current
// unit price.
func (r SalesRecord) RescalePrice(newQuantity float64) float64 {
	if r.Quantity <= 0 {
		return 0
	}
	return decimal.NewFromFloat(newQuantity).
		Mul(decimal.NewFromFloat(r.Price)).
		Div(decimal.NewFromFloat(r.Quantity)).
		InexactFloat64()
}

type NewSalesRecord struct {
	CustomerName string
	MaterialName string
	Quantity     float64
	UnitPrice    float64
	Currency     Currency
}

// Build validates the add-form input and produces a Pending record assigned
// to the creator.
func (n NewSalesRecord) Build(creatorID string) (*SalesRecord, error) {
	customer := strings.TrimSpace(n.CustomerName)
	material := strings.TrimSpace(n.MaterialName)
	switch {
	case customer == "":
		return nil, errors.Validation("customerName is required")
	case material == "":
		return nil, errors.Validation("materialName is required")
	case n.Quantity < 0:
		return nil, errors.Validation("quantity must not be negative")
	case n.UnitPrice < 0:
		return nil, errors.Validation("unitPrice must not be negative")
	case !n.Currency.Valid():
		return nil, errors.Validation("currency must be one of: TRY, USD, EUR")
	case creatorID == "":
		return nil, errors.Validation("assignedTo is required")
	}
	return &SalesRecord{
		CustomerName: customer,
		MaterialName: material,
		Quantity:     n.Quantity,
		Price:        TotalPrice(n.Quantity, n.UnitPrice),
		Currency:     n.Currency,
		AssignedTo:   creatorID,
		Status:       SalesStatusPending,
	}, nil
}

// SalesRecordEdit is what the detail form submits. Quantity and UnitPrice
// are resolved against the current record into a concrete Price.
type SalesRecordEdit struct {
	CustomerName *string      `json:"customerName,omitempty"`
	MaterialName *string      `json:"materialName,omitempty"`
	Quantity     *float64     `json:"quantity,omitempty"`
	UnitPrice    *float64     `json:"unitPrice,omitempty"`
	Currency     *Currency    `json:"currency,omitempty"`
	AssignedTo   *string      `json:"assignedTo,omitempty"`
	Status       *SalesStatus `json:"status,omitempty"`
}

// SalesRecordPatch is the field mask written to the store.
type SalesRecordPatch struct {
	CustomerName *string
	MaterialName *string
	Quantity     *float64
	Price        *float64
	Currency     *Currency
	AssignedTo   *string
	Status       *SalesStatus
}

// Resolve validates the edit and turns it into a patch. A quantity change
// keeps the current unit price; a unit price change keeps the (possibly
// new) quantity.
func (e SalesRecordEdit) Resolve(current SalesRecord) (SalesRecordPatch, error) {
	var p SalesRecordPatch

	if e.CustomerName != nil {
		v := strings.TrimSpace(*e.CustomerName)
		if v == "" {
			return p, errors.Validation("customerName is required")
		}
		p.CustomerName = &v
	}
	if e.MaterialName != nil {
		v := strings.TrimSpace(*e.MaterialName)
		if v == "" {
			return p, errors.Validation("materialName is required")
		}
		p.MaterialName = &v
	}
	if e.Currency != nil {
		if !e.Currency.Valid() {
			return p, errors.Validation("currency must be one of: TRY, USD, EUR")
		}
		c := *e.Currency
		p.Currency = &c
	}
	if e.AssignedTo != nil {
		v := strings.TrimSpace(*e.AssignedTo)
		if v == "" {
			return p, errors.Validation("assignedTo is required")
		}
		p.AssignedTo = &v
	}
	if e.Status != nil {
		if !e.Status.Valid() {
			return p, errors.Validation("status must be one of: pending, in_progress, done")
		}
		s := *e.Status
		p.Status = &s
	}

	quantity := current.Quantity
	if e.Quantity != nil {
		if *e.Quantity < 0 {
			return p, errors.Validation("quantity must not be negative")
		}
		quantity = *e.Quantity
		price := current.RescalePrice(quantity)
		p.Quantity = &quantity
		p.Price = &price
	}
	if e.UnitPrice != nil {
		if *e.UnitPrice < 0 {
			return p, errors.Validation("unitPrice must not be negative")
		}
		price := TotalPrice(quantity, *e.UnitPrice)
		p.Price = &price
	}

	return p, nil
}

func (p SalesRecordPatch) IsEmpty() bool {
	return p.CustomerName == nil && p.MaterialName == nil && p.Quantity == nil &&
		p.Price == nil && p.Currency == nil && p.AssignedTo == nil && p.Status == nil
}

func (p SalesRecordPatch) Apply(r SalesRecord) SalesRecord {
	if p.CustomerName != nil {
		r.CustomerName = *p.CustomerName
	}
	if p.MaterialName != nil {
		r.MaterialName = *p.MaterialName
	}
	if p.Quantity != nil {
		r.Quantity = *p.Quantity
	}
	if p.Price != nil {
		r.Price = *p.Price
	}
	if p.Currency != nil {
		r.Currency = *p.Currency
	}
	if p.AssignedTo != nil {
		r.AssignedTo = *p.AssignedTo
	}
	if p.Status != nil {
		r.Status = *p.Status
	}
	return r
}
