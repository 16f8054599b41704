package listview

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"teamsynchub/internal/domain/entity"
)

type SalesColumn struct {
	Status  entity.SalesStatus    `json:"status"`
	Records []*entity.SalesRecord `json:"records"`
}

// GroupSalesRecords partitions records into one column per pipeline status,
// in pipeline order, keeping input order inside each column. Records with an
// unknown status are left out.
func GroupSalesRecords(records []*entity.SalesRecord) []SalesColumn {
	columns := make([]SalesColumn, len(entity.SalesPipeline))
	for i, st := range entity.SalesPipeline {
		columns[i] = SalesColumn{Status: st, Records: []*entity.SalesRecord{}}
	}
	for _, r := range records {
		if rank := r.Status.Rank(); rank < len(columns) {
			columns[rank].Records = append(columns[rank].Records, r)
		}
	}
	return columns
}

// AssignedTo returns the records owned by userID in input order.
func AssignedTo(records []*entity.SalesRecord, userID string) []*entity.SalesRecord {
	out := []*entity.SalesRecord{}
	for _, r := range records {
		if r.AssignedTo == userID {
			out = append(out, r)
		}
	}
	return out
}

// SortSalesRecords orders a copy by pipeline status, then customer name in
// Turkish collation. Ties keep their input order.
func SortSalesRecords(records []*entity.SalesRecord) []*entity.SalesRecord {
	out := append([]*entity.SalesRecord(nil), records...)
	col := collate.New(language.Turkish)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Status.Rank(), out[j].Status.Rank()
		if ri != rj {
			return ri < rj
		}
		return col.CompareString(out[i].CustomerName, out[j].CustomerName) < 0
	})
	return out
}

// SortTopics orders a copy by name in Turkish collation.
func SortTopics(topics []*entity.Topic) []*entity.Topic {
	out := append([]*entity.Topic(nil), topics...)
	col := collate.New(language.Turkish)
	sort.SliceStable(out, func(i, j int) bool {
		return col.CompareString(out[i].Name, out[j].Name) < 0
	})
	return out
}
