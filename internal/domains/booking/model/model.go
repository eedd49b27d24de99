package model

import (
	"time"

	"stayhub/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID             = "id"
	FieldCustomerID     = "customer_id"
	FieldPropertyID     = "property_id"
	FieldRoomTypeID     = "room_type_id"
	FieldCheckIn        = "check_in"
	FieldCheckOut       = "check_out"
	FieldRoomQty        = "room_qty"
	FieldPrice          = "price"
	FieldPaymentMethod  = "payment_method"
	FieldProofOfPayment = "proof_of_payment"
)

const (
	StatusEventTableName  = "booking_status_events"
	StatusEventEntityName = "booking_status_event"

	StatusFieldID        = "id"
	StatusFieldBookingID = "booking_id"
	StatusFieldStatus    = "status"
	StatusFieldCreatedAt = "created_at"
)

// Status is the closed set of booking lifecycle states. CANCELED is terminal.
type Status string

const (
	StatusWaitingForPayment      Status = "WAITING_FOR_PAYMENT"
	StatusWaitingForConfirmation Status = "WAITING_FOR_CONFIRMATION"
	StatusConfirmed              Status = "CONFIRMED"
	StatusCanceled               Status = "CANCELED"
)

// ParseStatus resolves a caller-supplied string to one of the four lifecycle
// states. Unrecognized values are rejected rather than silently matching nothing.
func ParseStatus(value string) (Status, bool) {
	switch Status(value) {
	case StatusWaitingForPayment, StatusWaitingForConfirmation, StatusConfirmed, StatusCanceled:
		return Status(value), true
	default:
		return "", false
	}
}

// ActiveStatuses are the latest-event states that occupy room inventory.
func ActiveStatuses() []string {
	return []string{
		string(StatusWaitingForPayment),
		string(StatusWaitingForConfirmation),
		string(StatusConfirmed),
	}
}

type Booking struct {
	ID             int64     `db:"id"`
	CustomerID     string    `db:"customer_id"`
	PropertyID     string    `db:"property_id"`
	RoomTypeID     string    `db:"room_type_id"`
	CheckIn        time.Time `db:"check_in"`
	CheckOut       time.Time `db:"check_out"`
	RoomQty        int       `db:"room_qty"`
	Price          float64   `db:"price"`
	PaymentMethod  string    `db:"payment_method"`
	ProofOfPayment *string   `db:"proof_of_payment"`
	model.Metadata
}

// Nights returns the stay length in whole nights.
func (b *Booking) Nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

// StatusEvent is one immutable lifecycle record. Events are only ever
// appended; the booking's current status is the event with the greatest
// CreatedAt (greatest ID on ties).
type StatusEvent struct {
	ID        int64     `db:"id"`
	BookingID int64     `db:"booking_id"`
	Status    Status    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// BookingWithStatus is a booking joined with its single latest status event.
type BookingWithStatus struct {
	Booking
	Status          Status    `db:"current_status"`
	StatusCreatedAt time.Time `db:"status_created_at"`
}

// CurrentStatus derives the booking status from an event history: newest
// CreatedAt wins, greater ID breaks ties. Returns false for an empty history.
func CurrentStatus(events []StatusEvent) (Status, bool) {
	if len(events) == 0 {
		return "", false
	}

	latest := events[0]

	for _, event := range events[1:] {
		if event.CreatedAt.After(latest.CreatedAt) ||
			(event.CreatedAt.Equal(latest.CreatedAt) && event.ID > latest.ID) {
			latest = event
		}
	}

	return latest.Status, true
}
