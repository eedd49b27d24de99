package model

import "stayhub/shared/model"

const (
	TableName  = "reviews"
	EntityName = "review"

	FieldID         = "id"
	FieldCustomerID = "customer_id"
	FieldPropertyID = "property_id"
	FieldRating     = "rating"
	FieldComment    = "comment"
	FieldReply      = "reply"
)

type Review struct {
	ID         string  `db:"id"`
	CustomerID string  `db:"customer_id"`
	PropertyID string  `db:"property_id"`
	Rating     int     `db:"rating"`
	Comment    string  `db:"comment"`
	Reply      *string `db:"reply"`
	model.Metadata
}
