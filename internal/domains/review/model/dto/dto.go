package dto

import (
	"stayhub/internal/domains/review/model"
	"stayhub/shared"
	gDto "stayhub/shared/dto"
	gModel "stayhub/shared/model"
	"stayhub/shared/timezone"

	"github.com/google/uuid"
)

type CreateReviewRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	Rating     int    `json:"rating"      validate:"required,min=1,max=5"`
	Comment    string `json:"comment"     validate:"omitempty,max=1000"`
}

func (c *CreateReviewRequest) ToModel(customerID string) model.Review {
	return model.Review{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		PropertyID: c.PropertyID,
		Rating:     c.Rating,
		Comment:    c.Comment,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type ReplyReviewRequest struct {
	Reply string `json:"reply" validate:"required,max=1000"`
}

type ReviewResponse struct {
	ID         string  `json:"id"`
	CustomerID string  `json:"customer_id"`
	PropertyID string  `json:"property_id"`
	Rating     int     `json:"rating"`
	Comment    string  `json:"comment"`
	Reply      *string `json:"reply"`
	gDto.Metadata
}

func (r *ReviewResponse) FromModel(mod model.Review) {
	r.ID = mod.ID
	r.CustomerID = mod.CustomerID
	r.PropertyID = mod.PropertyID
	r.Rating = mod.Rating
	r.Comment = mod.Comment
	r.Reply = mod.Reply
	r.Metadata.FromModel(mod.Metadata)
}

type GetReviewsResponse struct {
	Reviews   []ReviewResponse `json:"reviews"`
	TotalPage int              `json:"total_page"`
	TotalData int              `json:"total_data"`
}

func (r *GetReviewsResponse) FromModels(models []model.Review, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reviews = make([]ReviewResponse, len(models))
	for i, mod := range models {
		r.Reviews[i].FromModel(mod)
	}
}
