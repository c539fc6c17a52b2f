package service

import (
	"errors"
	"fmt"

	"cafe-floor/pos-svc/internal/domain"
)

var (
	ErrUnknownMenuItem     = errors.New("menu item not found")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrInvalidPayment      = errors.New("payment amount must be positive")
	ErrInvalidTicketStatus = errors.New("unknown ticket status")
	ErrIllegalTransition   = errors.New("illegal order status transition")
)

// TransitionError is returned when an order status change is not allowed.
type TransitionError struct {
	OrderID string
	From    domain.OrderStatus
	To      domain.OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("order %s: cannot move from %q to %q", e.OrderID, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrIllegalTransition }
