package domain

import "time"

const (
	EventTicketFired  = "ticket_fired"
	EventTicketStatus = "ticket_status"
	EventOrderReady   = "order_ready"
	EventOrderSettled = "order_settled"
)

// FloorEvent is published to Kafka after a committed change that other
// stations care about.
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
