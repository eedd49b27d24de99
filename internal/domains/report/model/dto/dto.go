package dto

import (
	"time"

	"stayhub/internal/domains/report/model"
	"stayhub/shared"
	"stayhub/shared/constant"
	"stayhub/shared/timezone"
)

// SalesReportRequest bounds are inclusive on both ends and apply to the
// booking creation time. SortDir orders by creation time; Page and Limit are
// 1-indexed.
type SalesReportRequest struct {
	TenantID  string
	StartDate *time.Time
	EndDate   *time.Time
	SortDir   string
	Page      int
	Limit     int
}

type SalesEntry struct {
	OrderNumber  int64   `json:"order_number"`
	PropertyName string  `json:"property_name"`
	RoomTypeName string  `json:"room_type_name"`
	CustomerName string  `json:"customer_name"`
	CheckIn      string  `json:"check_in"`
	CheckOut     string  `json:"check_out"`
	TotalRooms   int     `json:"total_rooms"`
	Price        float64 `json:"price"`
	CreatedAt    string  `json:"created_at"`
	Statuses     string  `json:"statuses"`
}

type SalesReportResponse struct {
	Sales         []SalesEntry `json:"sales"`
	TotalBookings int          `json:"total_bookings"`
	TotalRevenue  float64      `json:"total_revenue"`
	TotalPage     int          `json:"total_page"`
}

// FromRows maps one page of rows while the totals come from the whole
// filtered set.
func (r *SalesReportResponse) FromRows(rows []model.SalesRow, totals model.SalesTotals, limit int) {
	r.Sales = make([]SalesEntry, len(rows))
	r.TotalBookings = totals.TotalBookings
	r.TotalRevenue = totals.TotalRevenue
	r.TotalPage = shared.CalculateTotalPage(totals.TotalBookings, limit)

	for i, row := range rows {
		r.Sales[i] = SalesEntry{
			OrderNumber:  row.BookingID,
			PropertyName: row.PropertyName,
			RoomTypeName: row.RoomTypeName,
			CustomerName: row.CustomerName,
			CheckIn:      timezone.Format(row.CheckIn, constant.DateOnlyFormat),
			CheckOut:     timezone.Format(row.CheckOut, constant.DateOnlyFormat),
			TotalRooms:   row.RoomQty,
			Price:        row.Price,
			CreatedAt:    timezone.Format(row.CreatedAt, constant.DateFormat),
			Statuses:     row.Statuses,
		}
	}
}

// Count is only set on availability events, where it carries the room count
// shown on the calendar tile.
type CalendarEvent struct {
	Title string `json:"title"`
	Start string `json:"start"`
	End   string `json:"end"`
	Count int    `json:"count,omitempty"`
}

type RoomTypeReport struct {
	RoomTypeID         string `json:"room_type_id"`
	Name               string `json:"name"`
	Qty                int    `json:"qty"`
	ActiveCount        int    `json:"active_count"`
	CanceledCount      int    `json:"canceled_count"`
	AvailableRoomCount int    `json:"available_room_count"`
	DisplayedRoomCount int    `json:"displayed_room_count"`
}

type PropertyReport struct {
	PropertyID    string           `json:"property_id"`
	PropertyName  string           `json:"property_name"`
	RoomTypes     []RoomTypeReport `json:"room_types"`
	Events        []CalendarEvent  `json:"events"`
	ActiveCount   int              `json:"active_count"`
	CanceledCount int              `json:"canceled_count"`
}

type PropertyReportResponse struct {
	Properties []PropertyReport `json:"properties"`
}
