// Package listview derives the filtered, sorted and grouped views the UI
// renders from the controller's collections. Everything here is pure: inputs
// are never modified and results are fresh slices.
package listview

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"teamsynchub/internal/domain/entity"
	"teamsynchub/pkg/errors"
)

// ShipmentFilter criteria are ANDed; zero values match everything.
type ShipmentFilter struct {
	Query  string                `json:"query"`
	Date   string                `json:"date"`
	Status entity.ShipmentStatus `json:"status"`
}

// FilterShipments keeps shipments whose customer or product contains the
// query (Unicode case folding), whose date equals Date and whose status
// equals Status.
func FilterShipments(shipments []*entity.Shipment, f ShipmentFilter) []*entity.Shipment {
	folder := cases.Fold()
	query := folder.String(strings.TrimSpace(f.Query))

	out := make([]*entity.Shipment, 0, len(shipments))
	for _, s := range shipments {
		if query != "" &&
			!strings.Contains(folder.String(s.CustomerName), query) &&
			!strings.Contains(folder.String(s.Product), query) {
			continue
		}
		if f.Date != "" && s.ShipmentDate != f.Date {
			continue
		}
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		out = append(out, s)
	}
	return out
}

type SortKey string

const (
	SortByCustomerName SortKey = "customerName"
	SortByProduct      SortKey = "product"
	SortByQuantityKg   SortKey = "quantityKg"
	SortByVehiclePlate SortKey = "vehiclePlate"
	SortByStatus       SortKey = "status"
	SortByShipmentDate SortKey = "shipmentDate"
)

func ParseSortKey(v string) (SortKey, error) {
	switch k := SortKey(v); k {
	case SortByCustomerName, SortByProduct, SortByQuantityKg, SortByVehiclePlate, SortByStatus, SortByShipmentDate:
		return k, nil
	}
	return "", errors.Validation("unknown sort key: " + v)
}

type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

type SortSpec struct {
	Key       SortKey       `json:"key"`
	Direction SortDirection `json:"direction"`
}

func DefaultShipmentSort() SortSpec {
	return SortSpec{Key: SortByShipmentDate, Direction: Descending}
}

// Toggle flips an ascending sort on the same key to descending; any other
// request sorts ascending by key.
func (s SortSpec) Toggle(key SortKey) SortSpec {
	if s.Key == key && s.Direction == Ascending {
		return SortSpec{Key: key, Direction: Descending}
	}
	return SortSpec{Key: key, Direction: Ascending}
}

// SortShipments sorts a copy stably ascending by the key; descending is the
// exact reverse of that result.
func SortShipments(shipments []*entity.Shipment, spec SortSpec) []*entity.Shipment {
	out := append([]*entity.Shipment(nil), shipments...)

	if spec.Key == SortByQuantityKg {
		sort.SliceStable(out, func(i, j int) bool { return out[i].QuantityKg < out[j].QuantityKg })
	} else {
		// Collators keep internal buffers; one per call.
		col := collate.New(language.Turkish, collate.Loose)
		field := textField(spec.Key)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(field(out[i]), field(out[j])) < 0
		})
	}

	if spec.Direction == Descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func textField(key SortKey) func(*entity.Shipment) string {
	switch key {
	case SortByCustomerName:
		return func(s *entity.Shipment) string { return s.CustomerName }
	case SortByProduct:
		return func(s *entity.Shipment) string { return s.Product }
	case SortByVehiclePlate:
		return func(s *entity.Shipment) string { return s.VehiclePlate }
	case SortByStatus:
		return func(s *entity.Shipment) string { return string(s.Status) }
	default:
		return func(s *entity.Shipment) string { return s.ShipmentDate }
	}
}
