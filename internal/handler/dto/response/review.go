package response

import (
	"campuscoffee/internal/usecase/commands"
	"campuscoffee/internal/usecase/queries"
)

type ReviewResponse struct {
	ID            string `json:"id"`
	PosID         string `json:"pos_id"`
	PosName       string `json:"pos_name"`
	AuthorID      string `json:"author_id"`
	AuthorEmail   string `json:"author_email"`
	Content       string `json:"content"`
	ApprovalCount int32  `json:"approval_count"`
	Approved      bool   `json:"approved"`
	CreatedAt     int64  `json:"created_at"`
	UpdatedAt     int64  `json:"updated_at"`
}

func FromReviewView(v *queries.ReviewView) *ReviewResponse {
	return &ReviewResponse{
		ID:            v.ID.String(),
		PosID:         v.PosID.String(),
		PosName:       v.PosName,
		AuthorID:      v.AuthorID.String(),
		AuthorEmail:   v.AuthorEmail,
		Content:       v.Content,
		ApprovalCount: v.ApprovalCount,
		Approved:      v.Approved,
		CreatedAt:     v.CreatedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
	}
}

type ReviewListItemResponse struct {
	ID            string `json:"id"`
	AuthorEmail   string `json:"author_email"`
	Content       string `json:"content"`
	ApprovalCount int32  `json:"approval_count"`
	Approved      bool   `json:"approved"`
	CreatedAt     int64  `json:"created_at"`
}

func FromReviewList(items []*queries.ReviewListItem) []*ReviewListItemResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:            it.ID.String(),
			AuthorEmail:   it.AuthorEmail,
			Content:       it.Content,
			ApprovalCount: it.ApprovalCount,
			Approved:      it.Approved,
			CreatedAt:     it.CreatedAt.Unix(),
		}
	}
	return res
}

type ApprovalResponse struct {
	ReviewID      string `json:"review_id"`
	ApprovalCount int32  `json:"approval_count"`
	Approved      bool   `json:"approved"`
}

func FromApprovalResult(r *commands.ApproveReviewResult) *ApprovalResponse {
	return &ApprovalResponse{
		ReviewID:      r.ReviewID.String(),
		ApprovalCount: r.ApprovalCount,
		Approved:      r.Approved,
	}
}
