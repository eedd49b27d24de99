package model

import "time"

const EntityName = "report"

// SalesRow is one confirmed-revenue booking scoped to a tenant. Statuses is
// the comma-joined distinct set of lifecycle states the booking has visited.
type SalesRow struct {
	BookingID    int64     `db:"booking_id"`
	PropertyName string    `db:"property_name"`
	RoomTypeName string    `db:"room_type_name"`
	CustomerName string    `db:"customer_name"`
	CheckIn      time.Time `db:"check_in"`
	CheckOut     time.Time `db:"check_out"`
	RoomQty      int       `db:"room_qty"`
	Price        float64   `db:"price"`
	CreatedAt    time.Time `db:"created_at"`
	Statuses     string    `db:"statuses"`
}

// SalesTotals aggregates the whole filtered sales set, independent of the
// page being served.
type SalesTotals struct {
	TotalBookings int     `db:"total_bookings"`
	TotalRevenue  float64 `db:"total_revenue"`
}

// RoomTypeRow carries the inventory side of the property report.
type RoomTypeRow struct {
	PropertyID   string `db:"property_id"`
	PropertyName string `db:"property_name"`
	RoomTypeID   string `db:"room_type_id"`
	RoomTypeName string `db:"room_type_name"`
	Qty          int    `db:"qty"`
}

// OccupancyRow is one tenant booking with its derived latest status, used to
// partition bookings into active and canceled per room type.
type OccupancyRow struct {
	BookingID    int64     `db:"booking_id"`
	PropertyID   string    `db:"property_id"`
	PropertyName string    `db:"property_name"`
	RoomTypeID   string    `db:"room_type_id"`
	RoomTypeName string    `db:"room_type_name"`
	RoomQty      int       `db:"room_qty"`
	CheckIn      time.Time `db:"check_in"`
	CheckOut     time.Time `db:"check_out"`
	Status       string    `db:"current_status"`
}
