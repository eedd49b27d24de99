package model

import "stayhub/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID            = "id"
	FieldPropertyID    = "property_id"
	FieldName          = "name"
	FieldQty           = "qty"
	FieldPrice         = "price"
	FieldGuestCapacity = "guest_capacity"
)

type RoomType struct {
	ID            string  `db:"id"`
	PropertyID    string  `db:"property_id"`
	Name          string  `db:"name"`
	Qty           int     `db:"qty"`
	Price         float64 `db:"price"`
	GuestCapacity int     `db:"guest_capacity"`
	model.Metadata
}
