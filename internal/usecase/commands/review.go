package commands

import (
	"context"
	"log/slog"

	domreview "campuscoffee/internal/domain/review"
	"campuscoffee/internal/infra"
	"campuscoffee/internal/pkg/clock"
	"campuscoffee/internal/pkg/config"
	"campuscoffee/internal/pkg/errs"
	"campuscoffee/internal/usecase/shared"

	"github.com/google/uuid"
)

// Rule violations callers should treat as validation failures.
var (
	ErrPosRequired     = errs.Mark(errs.New("pos must not be empty"), errs.ErrDomainValidation)
	ErrAuthorRequired  = errs.Mark(errs.New("author must not be empty"), errs.ErrDomainValidation)
	ErrReviewRequired  = errs.Mark(errs.New("review id must not be empty"), errs.ErrDomainValidation)
	ErrDuplicateReview = errs.Mark(errs.New("users can only submit one review per pos"), errs.ErrDomainValidation)
	ErrSelfApproval    = errs.Mark(errs.New("users cannot approve their own reviews"), errs.ErrDomainValidation)
)

type SubmitReviewInput struct {
	ReviewID uuid.UUID // uuid.Nil submits a new draft
	PosID    uuid.UUID
	Content  string
}

type SubmitReviewResult struct {
	ReviewID uuid.UUID
}

type ApproveReviewResult struct {
	ReviewID      uuid.UUID
	ApprovalCount int32
	Approved      bool
}

type ReviewCommands interface {
	Submit(ctx context.Context, input SubmitReviewInput, authorID uuid.UUID) (*SubmitReviewResult, error)
	Approve(ctx context.Context, reviewID, approverID uuid.UUID) (*ApproveReviewResult, error)
}

type reviewUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	approval config.ApprovalConfig
}

func NewReviewCommands(uow shared.UnitOfWork, clk clock.Clock, approval config.ApprovalConfig) ReviewCommands {
	return &reviewUseCaseImpl{uow: uow, clock: clk, approval: approval}
}

// Submit enforces the submission rules: both references must be present and
// resolvable, and an author gets exactly one review per POS. A draft without
// an identity is persisted fresh (zero approvals); a draft carrying one is an
// update and keeps the stored approval count, re-deriving the approved flag.
func (uc *reviewUseCaseImpl) Submit(ctx context.Context, input SubmitReviewInput, authorID uuid.UUID) (*SubmitReviewResult, error) {
	if input.PosID == uuid.Nil {
		return nil, ErrPosRequired
	}
	if authorID == uuid.Nil {
		return nil, ErrAuthorRequired
	}

	var resultID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().PosByID(ctx, input.PosID); derr != nil {
			return markNotFound(derr, errs.ErrPosNotFound)
		}
		if _, derr := tx.Reads().UserByID(ctx, authorID); derr != nil {
			return markNotFound(derr, errs.ErrUserNotFound)
		}

		existing, derr := tx.Reads().ReviewsByPosAndAuthor(ctx, input.PosID, authorID)
		if derr != nil {
			return derr
		}
		// The review being resubmitted is not its own duplicate.
		for _, ex := range existing {
			if ex.ID != input.ReviewID {
				slog.Warn("duplicate review submission rejected",
					"pos_id", input.PosID, "author_id", authorID)
				return ErrDuplicateReview
			}
		}

		if input.ReviewID == uuid.Nil {
			rev, derr := domreview.NewReview(input.PosID, authorID, input.Content, uc.clock.Now())
			if derr != nil {
				return errs.Mark(derr, errs.ErrDomainValidation)
			}
			id, derr := tx.Reviews().Create(ctx, tx.DB(), rev)
			if derr != nil {
				return derr
			}
			resultID = id
			return nil
		}

		rev, derr := uc.reviseStored(ctx, tx, input, authorID)
		if derr != nil {
			return derr
		}
		if derr := tx.Reviews().Save(ctx, tx.DB(), rev); derr != nil {
			return derr
		}
		resultID = rev.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &SubmitReviewResult{ReviewID: resultID}, nil
}

// reviseStored rebuilds the review to persist on the update path. The stored
// approval state wins over whatever the draft claims; when no stored row
// exists the draft itself is kept, starting from zero approvals.
func (uc *reviewUseCaseImpl) reviseStored(ctx context.Context, tx shared.Tx, input SubmitReviewInput, authorID uuid.UUID) (*domreview.Review, error) {
	content, err := domreview.NewContent(input.Content)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	now := uc.clock.Now()
	stored, err := tx.Reads().ReviewByID(ctx, input.ReviewID)
	var rev *domreview.Review
	switch {
	case err == nil:
		rev = domreview.ReconstructReview(stored.ID, stored.PosID, stored.AuthorID, content,
			stored.ApprovalCount, stored.Approved, stored.CreatedAt, now)
	case infra.IsKind(err, infra.KindNotFound):
		rev = domreview.ReconstructReview(input.ReviewID, input.PosID, authorID, content, 0, false, now, now)
	default:
		return nil, err
	}

	return rev.WithApprovalStatus(uc.approval.MinCount, now), nil
}

// Approve records one more approval for the stored review. Approvals by the
// review's own author are rejected; repeat approvals by the same user are
// counted as-is.
func (uc *reviewUseCaseImpl) Approve(ctx context.Context, reviewID, approverID uuid.UUID) (*ApproveReviewResult, error) {
	if reviewID == uuid.Nil {
		return nil, ErrReviewRequired
	}

	var result *ApproveReviewResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, derr := tx.Reads().UserByID(ctx, approverID); derr != nil {
			return markNotFound(derr, errs.ErrUserNotFound)
		}

		stored, derr := tx.Reads().ReviewByID(ctx, reviewID)
		if derr != nil {
			return markNotFound(derr, errs.ErrReviewNotFound)
		}

		if stored.AuthorID == approverID {
			slog.Warn("self-approval rejected", "review_id", reviewID, "user_id", approverID)
			return ErrSelfApproval
		}

		rev := domreview.ReconstructReview(stored.ID, stored.PosID, stored.AuthorID,
			domreview.ReconstructContent(stored.Content),
			stored.ApprovalCount, stored.Approved, stored.CreatedAt, stored.UpdatedAt)
		rev = rev.RecordApproval(uc.approval.MinCount, uc.clock.Now())

		if derr := tx.Reviews().Save(ctx, tx.DB(), rev); derr != nil {
			return derr
		}

		result = &ApproveReviewResult{
			ReviewID:      rev.ID(),
			ApprovalCount: rev.ApprovalCount(),
			Approved:      rev.Approved(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func markNotFound(err error, sentinel error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, sentinel)
	}
	return err
}
