package dialog

import "context"

// Customer is the checkout contact block. The full name the user typed is
// split on whitespace into FirstName and the joined remainder.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	City      string
	Postcode  string
}

// OrderItem is the serialization-neutral shape a cart entry is mapped into
// for submission.
type OrderItem struct {
	Name        string
	Category    string
	FabricClass string
	FabricName  string
	Size        string
	Quantity    int64
	Price       int64
}

type OrderPayload struct {
	Customer Customer
	Items    []OrderItem
}

type OrderRef struct {
	Id          int64
	OrderNumber string
}

// Submitter hands a finalized order to the external order service.
// Called exactly once per completed checkout; the engine never retries,
// failure is surfaced to the user who may re-invoke checkout. Timeout or
// cancellation is the caller's concern, via ctx.
type Submitter interface {
	Submit(ctx context.Context, payload *OrderPayload) (*OrderRef, error)
}
