package usecase

import (
	"time"

	"teamsynchub/internal/domain/entity"
)

// Session is the signed-in identity. Epoch changes with every sign-in,
// logout and reload; results carrying an older epoch are discarded.
type Session struct {
	User      entity.User `json:"user"`
	Epoch     uint64      `json:"epoch"`
	StartedAt time.Time   `json:"startedAt"`
}

type Phase string

const (
	PhaseUnauthenticated Phase = "unauthenticated"
	PhaseAuthenticating  Phase = "authenticating"
	PhaseDataLoading     Phase = "data_loading"
	PhaseReady           Phase = "ready"
	PhaseError           Phase = "error"
)

type View string

const (
	ViewChat      View = "chat"
	ViewSales     View = "sales"
	ViewShipments View = "shipments"
	ViewProfile   View = "profile"
)

func ParseView(v string) (View, bool) {
	switch view := View(v); view {
	case ViewChat, ViewSales, ViewShipments, ViewProfile:
		return view, true
	}
	return "", false
}
