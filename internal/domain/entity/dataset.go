package entity

// Dataset is the full content of the store: what the first-run seed writes
// and what the post-login bulk fetch returns.
type Dataset struct {
	Users        []*User        `json:"users"`
	Topics       []*Topic       `json:"topics"`
	SalesRecords []*SalesRecord `json:"salesRecords"`
	Shipments    []*Shipment    `json:"shipments"`
}
