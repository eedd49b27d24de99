package model

import "stayhub/shared/model"

const (
	TableName  = "properties"
	EntityName = "property"

	FieldID          = "id"
	FieldTenantID    = "tenant_id"
	FieldName        = "name"
	FieldDescription = "description"
	FieldAddress     = "address"
	FieldCity        = "city"
	FieldImage       = "image"
)

type Property struct {
	ID          string `db:"id"`
	TenantID    string `db:"tenant_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	Address     string `db:"address"`
	City        string `db:"city"`
	Image       string `db:"image"`
	model.Metadata
}
