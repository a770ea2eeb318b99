package review

import (
	"time"

	"github.com/google/uuid"
)

// Review is an immutable snapshot of a user's review for a point of sale.
// Approval state is never mutated in place; RecordApproval and
// WithApprovalStatus return updated copies.
type Review struct {
	id            uuid.UUID
	posID         uuid.UUID
	authorID      uuid.UUID
	content       Content
	approvalCount int32
	approved      bool
	createdAt     time.Time
	updatedAt     time.Time
}

// NewReview builds a fresh draft: zero approvals, not approved.
func NewReview(posID, authorID uuid.UUID, contentText string, now time.Time) (*Review, error) {
	content, err := NewContent(contentText)
	if err != nil {
		return nil, err
	}

	return &Review{
		id:            uuid.New(),
		posID:         posID,
		authorID:      authorID,
		content:       content,
		approvalCount: 0,
		approved:      false,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// ReconstructReview rehydrates a stored review without re-running draft rules.
func ReconstructReview(id, posID, authorID uuid.UUID, content Content, approvalCount int32, approved bool, createdAt, updatedAt time.Time) *Review {
	return &Review{
		id:            id,
		posID:         posID,
		authorID:      authorID,
		content:       content,
		approvalCount: approvalCount,
		approved:      approved,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// RecordApproval returns a copy with one more approval and the approved flag
// recomputed against the quorum. Repeat approvals by the same user are not
// deduplicated; the count is raw.
func (r *Review) RecordApproval(minCount int, now time.Time) *Review {
	next := *r
	next.approvalCount++
	next.approved = next.approvalCount >= int32(minCount)
	next.updatedAt = now
	return &next
}

// WithApprovalStatus returns a copy with the approved flag recomputed from the
// current approval count.
func (r *Review) WithApprovalStatus(minCount int, now time.Time) *Review {
	next := *r
	next.approved = next.approvalCount >= int32(minCount)
	next.updatedAt = now
	return &next
}

func (r *Review) ID() uuid.UUID        { return r.id }
func (r *Review) PosID() uuid.UUID     { return r.posID }
func (r *Review) AuthorID() uuid.UUID  { return r.authorID }
func (r *Review) Content() Content     { return r.content }
func (r *Review) ApprovalCount() int32 { return r.approvalCount }
func (r *Review) Approved() bool       { return r.approved }
func (r *Review) CreatedAt() time.Time { return r.createdAt }
func (r *Review) UpdatedAt() time.Time { return r.updatedAt }
