package dto

import (
	"mime/multipart"

	"stayhub/internal/domains/property/model"
	"stayhub/shared"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"

	"github.com/google/uuid"
)

type CreatePropertyRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Description string                `json:"description" validate:"omitempty,max=1000"`
	Address     string                `json:"address"     validate:"required,max=255"`
	City        string                `json:"city"        validate:"required,max=100"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
}

func (c *CreatePropertyRequest) ToModel(tenantID string, imageURL string) model.Property {
	return model.Property{
		ID:          uuid.NewString(),
		TenantID:    tenantID,
		Name:        c.Name,
		Description: c.Description,
		Address:     c.Address,
		City:        c.City,
		Image:       imageURL,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  tenantID,
			ModifiedBy: tenantID,
		},
	}
}

type UpdatePropertyRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=1000"`
	Address     string                `db:"address"     json:"address"     validate:"omitempty,max=255"`
	City        string                `db:"city"        json:"city"        validate:"omitempty,max=100"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
}

type PropertyResponse struct {
	ID          string `json:"id"`
	TenantID    string `json:"tenant_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Address     string `json:"address"`
	City        string `json:"city"`
	Image       string `json:"image"`
	gDto.Metadata
}

func (r *PropertyResponse) FromModel(mod model.Property) {
	r.ID = mod.ID
	r.TenantID = mod.TenantID
	r.Name = mod.Name
	r.Description = mod.Description
	r.Address = mod.Address
	r.City = mod.City
	r.Image = mod.Image
	r.Metadata.FromModel(mod.Metadata)
}

type GetPropertiesResponse struct {
	Properties []PropertyResponse `json:"properties"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetPropertiesResponse) FromModels(models []model.Property, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Properties = make([]PropertyResponse, len(models))
	for i, mod := range models {
		r.Properties[i].FromModel(mod)
	}
}
