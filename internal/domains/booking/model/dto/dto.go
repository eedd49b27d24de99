package dto

import (
	"time"

	"stayhub/internal/domains/booking/model"
	"stayhub/shared"
	"stayhub/shared/constant"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"
)

type CreateBookingRequest struct {
	PropertyID    string `json:"property_id"    validate:"required"`
	RoomTypeID    string `json:"room_type_id"   validate:"required"`
	CheckIn       string `json:"check_in"       validate:"required"`
	CheckOut      string `json:"check_out"      validate:"required"`
	RoomQty       int    `json:"room_qty"       validate:"required,min=1"`
	PaymentMethod string `json:"payment_method" validate:"required,oneof=manual_transfer gateway"`
}

// Dates parses the requested stay range. The check_in < check_out invariant
// is enforced by the service, not here, so the error reads as a business rule.
func (c *CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = timezone.Parse(constant.DateOnlyFormat, c.CheckIn)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = timezone.Parse(constant.DateOnlyFormat, c.CheckOut)

	return checkIn, checkOut, err
}

func (c *CreateBookingRequest) ToModel(customerID string, checkIn, checkOut time.Time, price float64) model.Booking {
	return model.Booking{
		CustomerID:    customerID,
		PropertyID:    c.PropertyID,
		RoomTypeID:    c.RoomTypeID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		RoomQty:       c.RoomQty,
		Price:         price,
		PaymentMethod: c.PaymentMethod,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

// ListOrdersRequest carries the Order Query Service filters. Status has
// already been resolved against the lifecycle enum by the handler.
type ListOrdersRequest struct {
	CustomerID  string
	TenantID    string
	Date        *time.Time
	OrderNumber *int64
	Status      *model.Status
}

type BookingResponse struct {
	ID             int64   `json:"id"`
	CustomerID     string  `json:"customer_id"`
	PropertyID     string  `json:"property_id"`
	RoomTypeID     string  `json:"room_type_id"`
	CheckIn        string  `json:"check_in"`
	CheckOut       string  `json:"check_out"`
	RoomQty        int     `json:"room_qty"`
	Price          float64 `json:"price"`
	PaymentMethod  string  `json:"payment_method"`
	ProofOfPayment *string `json:"proof_of_payment"`
	Status         string  `json:"status"`
	StatusAt       string  `json:"status_at"`
	CreatedAt      string  `json:"created_at"`
}

func (r *BookingResponse) FromModel(mod model.BookingWithStatus) {
	r.ID = mod.ID
	r.CustomerID = mod.CustomerID
	r.PropertyID = mod.PropertyID
	r.RoomTypeID = mod.RoomTypeID
	r.CheckIn = mod.CheckIn.Format(constant.DateOnlyFormat)
	r.CheckOut = mod.CheckOut.Format(constant.DateOnlyFormat)
	r.RoomQty = mod.RoomQty
	r.Price = mod.Price
	r.PaymentMethod = mod.PaymentMethod
	r.ProofOfPayment = mod.ProofOfPayment
	r.Status = string(mod.Status)
	r.StatusAt = timezone.Format(mod.StatusCreatedAt, constant.DateFormat)
	r.CreatedAt = timezone.Format(mod.CreatedAt, constant.DateFormat)
}

type GetBookingsResponse struct {
	Bookings    []BookingResponse `json:"bookings"`
	TotalPage   int               `json:"total_page"`
	TotalData   int               `json:"total_data"`
	CurrentPage int               `json:"current_page"`
}

func (r *GetBookingsResponse) FromModels(models []model.BookingWithStatus, totalData, page, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.CurrentPage = page

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}
