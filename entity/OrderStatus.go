package entity

// OrderStatus is the lifecycle state of an order. It is stored and sent over
// the wire as a plain string so the client and server never disagree on names.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusAccepted   OrderStatus = "accepted"
	StatusRejected   OrderStatus = "rejected"
	StatusDispatched OrderStatus = "dispatched"
	StatusDelivered  OrderStatus = "delivered"
)

// transitions encodes the only legal edges:
//
//	pending --accept--> accepted --dispatch--> dispatched --deliver--> delivered
//	pending --reject--> rejected
//
// rejected and delivered are terminal.
var transitions = map[OrderStatus][]OrderStatus{
	StatusPending:    {StatusAccepted, StatusRejected},
	StatusAccepted:   {StatusDispatched},
	StatusDispatched: {StatusDelivered},
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusRejected, StatusDispatched, StatusDelivered:
		return true
	}
	return false
}

func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	for _, t := range transitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// Prev returns the status an order must currently hold to move into s.
// Every reachable status has exactly one source edge, which is what lets the
// service run the update as a single compare-and-set.
func (s OrderStatus) Prev() (OrderStatus, bool) {
	switch s {
	case StatusAccepted, StatusRejected:
		return StatusPending, true
	case StatusDispatched:
		return StatusAccepted, true
	case StatusDelivered:
		return StatusDispatched, true
	}
	return "", false
}
