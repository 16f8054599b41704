package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamsynchub/internal/domain/entity"
)

func sampleShipments() []*entity.Shipment {
	return []*entity.Shipment{
		{ID: "s1", CustomerName: "ABC Plastik A.Ş.", Product: "PET Granül", QuantityKg: 2500, VehiclePlate: "34 ABC 123", Status: entity.ShipmentStatusDelivered, ShipmentDate: "2024-07-28"},
		{ID: "s2", CustomerName: "Polimer Sanayi Ltd.", Product: "HDPE Film", QuantityKg: 5000, VehiclePlate: "34 XYZ 789", Status: entity.ShipmentStatusInTransit, ShipmentDate: "2024-07-29"},
		{ID: "s3", CustomerName: "Teknik Ambalaj", Product: "PVC Levha", QuantityKg: 1200, VehiclePlate: "34 KLM 456", Status: entity.ShipmentStatusInTransit, ShipmentDate: "2024-07-29"},
		{ID: "s4", CustomerName: "Global Polimerler", Product: "PP Çuval", QuantityKg: 10000, VehiclePlate: "34 DEF 567", Status: entity.ShipmentStatusPending, ShipmentDate: "2024-07-30"},
	}
}

func ids(shipments []*entity.Shipment) []string {
	out := make([]string, len(shipments))
	for i, s := range shipments {
		out[i] = s.ID
	}
	return out
}

func TestFilterShipments_QueryMatchesCustomerOrProduct(t *testing.T) {
	all := sampleShipments()

	assert.Equal(t, []string{"s2", "s4"}, ids(FilterShipments(all, ShipmentFilter{Query: "polimer"})))
	assert.Equal(t, []string{"s4"}, ids(FilterShipments(all, ShipmentFilter{Query: "ÇUVAL"})))
	assert.Equal(t, []string{"s1", "s2", "s3", "s4"}, ids(FilterShipments(all, ShipmentFilter{})))
	assert.Empty(t, FilterShipments(all, ShipmentFilter{Query: "nothing"}))
}

func TestFilterShipments_CriteriaAreANDed(t *testing.T) {
	all := sampleShipments()
	f := ShipmentFilter{Date: "2024-07-29", Status: entity.ShipmentStatusInTransit, Query: "film"}
	assert.Equal(t, []string{"s2"}, ids(FilterShipments(all, f)))
}

func TestFilterShipments_Commutative(t *testing.T) {
	all := sampleShipments()
	byDate := ShipmentFilter{Date: "2024-07-29"}
	byStatus := ShipmentFilter{Status: entity.ShipmentStatusInTransit}
	byQuery := ShipmentFilter{Query: "l"}

	a := FilterShipments(FilterShipments(FilterShipments(all, byDate), byStatus), byQuery)
	b := FilterShipments(FilterShipments(FilterShipments(all, byQuery), byStatus), byDate)
	combined := FilterShipments(all, ShipmentFilter{Date: byDate.Date, Status: byStatus.Status, Query: byQuery.Query})

	assert.Equal(t, ids(a), ids(b))
	assert.Equal(t, ids(a), ids(combined))
}

func TestSortSpec_Toggle(t *testing.T) {
	spec := DefaultShipmentSort()
	assert.Equal(t, SortSpec{Key: SortByShipmentDate, Direction: Descending}, spec)

	spec = spec.Toggle(SortByShipmentDate)
	assert.Equal(t, Ascending, spec.Direction)
	spec = spec.Toggle(SortByShipmentDate)
	assert.Equal(t, Descending, spec.Direction)

	spec = spec.Toggle(SortByCustomerName)
	assert.Equal(t, SortSpec{Key: SortByCustomerName, Direction: Ascending}, spec)
}

func TestSortShipments_NumericQuantity(t *testing.T) {
	sorted := SortShipments(sampleShipments(), SortSpec{Key: SortByQuantityKg, Direction: Ascending})
	assert.Equal(t, []string{"s3", "s1", "s2", "s4"}, ids(sorted))
}

func TestSortShipments_DescendingIsExactReverse(t *testing.T) {
	all := sampleShipments()
	for _, key := range []SortKey{SortByShipmentDate, SortByStatus, SortByQuantityKg, SortByCustomerName} {
		asc := ids(SortShipments(all, SortSpec{Key: key, Direction: Ascending}))
		desc := ids(SortShipments(all, SortSpec{Key: key, Direction: Descending}))
		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i], "key %s", key)
		}
	}
}

func TestSortShipments_TurkishCollation(t *testing.T) {
	in := []*entity.Shipment{
		{ID: "d", CustomerName: "Dora"},
		{ID: "c2", CustomerName: "Çelik"},
		{ID: "c1", CustomerName: "cam"},
	}
	sorted := SortShipments(in, SortSpec{Key: SortByCustomerName, Direction: Ascending})
	assert.Equal(t, []string{"c1", "c2", "d"}, ids(sorted))
	assert.Equal(t, "d", in[0].ID, "input must not be reordered")
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey("vehiclePlate")
	require.NoError(t, err)
	assert.Equal(t, SortByVehiclePlate, key)

	_, err = ParseSortKey("createdAt")
	assert.Error(t, err)
}

func TestGroupSalesRecords_PartitionsWithoutOverlap(t *testing.T) {
	records := []*entity.SalesRecord{
		{ID: "p1", Status: entity.SalesStatusInProgress},
		{ID: "p2", Status: entity.SalesStatusDone},
		{ID: "p3", Status: entity.SalesStatusInProgress},
		{ID: "p4", Status: entity.SalesStatusPending},
	}

	columns := GroupSalesRecords(records)
	require.Len(t, columns, 3)
	assert.Equal(t, entity.SalesStatusPending, columns[0].Status)
	assert.Equal(t, entity.SalesStatusInProgress, columns[1].Status)
	assert.Equal(t, entity.SalesStatusDone, columns[2].Status)

	total := 0
	for _, col := range columns {
		total += len(col.Records)
	}
	assert.Equal(t, len(records), total)
	assert.Equal(t, "p1", columns[1].Records[0].ID)
	assert.Equal(t, "p3", columns[1].Records[1].ID)
}

func TestGroupSalesRecords_EmptyColumns(t *testing.T) {
	columns := GroupSalesRecords(nil)
	require.Len(t, columns, 3)
	for _, col := range columns {
		assert.NotNil(t, col.Records)
		assert.Empty(t, col.Records)
	}
}

func TestSortSalesRecords(t *testing.T) {
	records := []*entity.SalesRecord{
		{ID: "a", CustomerName: "Teknik Ambalaj", Status: entity.SalesStatusPending},
		{ID: "b", CustomerName: "Polimer Sanayi Ltd.", Status: entity.SalesStatusInProgress},
		{ID: "c", CustomerName: "ABC Plastik A.Ş.", Status: entity.SalesStatusDone},
		{ID: "d", CustomerName: "Global Polimerler", Status: entity.SalesStatusInProgress},
	}
	sorted := SortSalesRecords(records)
	got := make([]string, len(sorted))
	for i, r := range sorted {
		got[i] = r.ID
	}
	assert.Equal(t, []string{"a", "d", "b", "c"}, got)
}

func TestAssignedTo(t *testing.T) {
	records := []*entity.SalesRecord{
		{ID: "a", AssignedTo: "u1"},
		{ID: "b", AssignedTo: "u2"},
		{ID: "c", AssignedTo: "u1"},
	}
	mine := AssignedTo(records, "u1")
	require.Len(t, mine, 2)
	assert.Equal(t, "a", mine[0].ID)
	assert.Equal(t, "c", mine[1].ID)
	assert.Empty(t, AssignedTo(records, "u9"))
}
