//go:build unit || e2e

package builder

import (
	"time"

	domreview "campuscoffee/internal/domain/review"
	reqdto "campuscoffee/internal/handler/dto/request"
	"campuscoffee/internal/usecase/queries"
	"campuscoffee/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReviewBuilder struct {
	PosID         uuid.UUID
	PosName       string
	AuthorID      uuid.UUID
	AuthorEmail   string
	Content       string
	ApprovalCount int32
	Approved      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		PosID:         uuid.New(),
		PosName:       "Library Cafe",
		AuthorID:      uuid.New(),
		AuthorEmail:   "reviewer@example.com",
		Content:       "Great espresso, short queue in the morning.",
		ApprovalCount: 0,
		Approved:      false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	return domreview.NewReview(r.PosID, r.AuthorID, r.Content, r.CreatedAt)
}

func (r *ReviewBuilder) BuildSubmitRequestDTO() reqdto.SubmitReviewRequest {
	return reqdto.SubmitReviewRequest{
		PosID:   r.PosID,
		Content: r.Content,
	}
}

func (r *ReviewBuilder) BuildUpdateRequestDTO() reqdto.UpdateReviewRequest {
	return reqdto.UpdateReviewRequest{
		PosID:   r.PosID,
		Content: r.Content,
	}
}

func (r *ReviewBuilder) BuildViewQuery() *queries.ReviewView {
	id := uuid.New()
	return &queries.ReviewView{
		ID:            id,
		PosID:         r.PosID,
		PosName:       r.PosName,
		AuthorID:      r.AuthorID,
		AuthorEmail:   r.AuthorEmail,
		Content:       r.Content,
		ApprovalCount: r.ApprovalCount,
		Approved:      r.Approved,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	id := uuid.New()
	return &queries.ReviewListItem{
		ID:            id,
		AuthorEmail:   r.AuthorEmail,
		Content:       r.Content,
		ApprovalCount: r.ApprovalCount,
		Approved:      r.Approved,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildSnapshot() *shared.ReviewSnapshot {
	id := uuid.New()
	return &shared.ReviewSnapshot{
		ID:            id,
		PosID:         r.PosID,
		AuthorID:      r.AuthorID,
		Content:       r.Content,
		ApprovalCount: r.ApprovalCount,
		Approved:      r.Approved,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithPosID(posID uuid.UUID) *ReviewBuilder {
	r.PosID = posID
	return r
}

func (r *ReviewBuilder) WithPosName(name string) *ReviewBuilder {
	r.PosName = name
	return r
}

func (r *ReviewBuilder) WithAuthorID(authorID uuid.UUID) *ReviewBuilder {
	r.AuthorID = authorID
	return r
}

func (r *ReviewBuilder) WithAuthorEmail(email string) *ReviewBuilder {
	r.AuthorEmail = email
	return r
}

func (r *ReviewBuilder) WithContent(content string) *ReviewBuilder {
	r.Content = content
	return r
}

func (r *ReviewBuilder) WithApprovalCount(count int32) *ReviewBuilder {
	r.ApprovalCount = count
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *ReviewBuilder) AsApproved(count int32) *ReviewBuilder {
	r.ApprovalCount = count
	r.Approved = true
	return r
}
