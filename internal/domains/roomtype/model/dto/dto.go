package dto

import (
	"stayhub/internal/domains/roomtype/model"
	"stayhub/shared"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	PropertyID    string  `json:"property_id"    validate:"required"`
	Name          string  `json:"name"           validate:"required,max=100"`
	Qty           int     `json:"qty"            validate:"required,min=1"`
	Price         float64 `json:"price"          validate:"required,gt=0"`
	GuestCapacity int     `json:"guest_capacity" validate:"required,min=1"`
}

func (c *CreateRoomTypeRequest) ToModel(tenantID string) model.RoomType {
	return model.RoomType{
		ID:            uuid.NewString(),
		PropertyID:    c.PropertyID,
		Name:          c.Name,
		Qty:           c.Qty,
		Price:         c.Price,
		GuestCapacity: c.GuestCapacity,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  tenantID,
			ModifiedBy: tenantID,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name          string   `db:"name"           json:"name"           validate:"omitempty,max=100"`
	Qty           *int     `db:"qty"            json:"qty"            validate:"omitempty,min=0"`
	Price         *float64 `db:"price"          json:"price"          validate:"omitempty,gt=0"`
	GuestCapacity *int     `db:"guest_capacity" json:"guest_capacity" validate:"omitempty,min=1"`
}

type RoomTypeResponse struct {
	ID            string  `json:"id"`
	PropertyID    string  `json:"property_id"`
	Name          string  `json:"name"`
	Qty           int     `json:"qty"`
	Price         float64 `json:"price"`
	GuestCapacity int     `json:"guest_capacity"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(mod model.RoomType) {
	r.ID = mod.ID
	r.PropertyID = mod.PropertyID
	r.Name = mod.Name
	r.Qty = mod.Qty
	r.Price = mod.Price
	r.GuestCapacity = mod.GuestCapacity
	r.Metadata.FromModel(mod.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}
