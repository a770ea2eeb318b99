package request

import (
	"campuscoffee/internal/usecase/commands"

	"github.com/google/uuid"
)

type SubmitReviewRequest struct {
	PosID   uuid.UUID `json:"pos_id" binding:"required"`
	Content string    `json:"content" binding:"required,max=2000"`
}

func (r *SubmitReviewRequest) ToInput() commands.SubmitReviewInput {
	return commands.SubmitReviewInput{
		PosID:   r.PosID,
		Content: r.Content,
	}
}

type UpdateReviewRequest struct {
	PosID   uuid.UUID `json:"pos_id" binding:"required"`
	Content string    `json:"content" binding:"required,max=2000"`
}

func (r *UpdateReviewRequest) ToInput(reviewID uuid.UUID) commands.SubmitReviewInput {
	return commands.SubmitReviewInput{
		ReviewID: reviewID,
		PosID:    r.PosID,
		Content:  r.Content,
	}
}
