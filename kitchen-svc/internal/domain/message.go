package domain

import "time"

type Station string

const (
	StationKitchen Station = "kitchen"
	StationBar     Station = "bar"
	StationPastry  Station = "pastry"
)

func (s Station) Valid() bool {
	switch s {
	case StationKitchen, StationBar, StationPastry:
		return true
	}
	return false
}

const (
	EventTicketFired  = "ticket_fired"
	EventTicketStatus = "ticket_status"
	EventOrderReady   = "order_ready"
	EventOrderSettled = "order_settled"

	TicketCompleted = "completed"
)

// FloorEvent is the message pos-svc publishes on the floor events topic.
type FloorEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	TicketID  string    `json:"ticket_id,omitempty"`
	Station   Station   `json:"station,omitempty"`
	Status    string    `json:"status,omitempty"`
	TableID   string    `json:"table_id,omitempty"`
	Amount    float64   `json:"amount,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// QueuedTicket is one open ticket on a station's board.
type QueuedTicket struct {
	TicketID string    `json:"ticketId"`
	OrderID  string    `json:"orderId"`
	Station  Station   `json:"station"`
	TableID  string    `json:"tableId,omitempty"`
	Status   string    `json:"status"`
	FiredAt  time.Time `json:"firedAt"`
}
