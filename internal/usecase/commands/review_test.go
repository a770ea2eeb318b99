//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	domreview "campuscoffee/internal/domain/review"
	"campuscoffee/internal/infra"
	"campuscoffee/internal/infra/db"
	"campuscoffee/internal/pkg/clock"
	"campuscoffee/internal/pkg/config"
	"campuscoffee/internal/pkg/errs"
	"campuscoffee/internal/usecase/commands"
	"campuscoffee/internal/usecase/shared"
	"campuscoffee/tests/common/builder"
	sharedmock "campuscoffee/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reviewCommandsFixture struct {
	uow     *sharedmock.MockUnitOfWork
	tx      *sharedmock.MockTx
	reads   *sharedmock.MockCommandReads
	reviews *sharedmock.MockReviewRepository
	clock   *clock.MockClock
	cmds    commands.ReviewCommands
}

func newReviewCommandsFixture(t *testing.T, minCount int) *reviewCommandsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &reviewCommandsFixture{
		uow:     sharedmock.NewMockUnitOfWork(ctrl),
		tx:      sharedmock.NewMockTx(ctrl),
		reads:   sharedmock.NewMockCommandReads(ctrl),
		reviews: sharedmock.NewMockReviewRepository(ctrl),
		clock:   clock.NewMockClock(time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)),
	}

	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Reads().Return(f.reads).AnyTimes()
	f.tx.EXPECT().Reviews().Return(f.reviews).AnyTimes()
	f.tx.EXPECT().DB().Return(nil).AnyTimes()

	f.cmds = commands.NewReviewCommands(f.uow, f.clock, config.ApprovalConfig{MinCount: minCount})
	return f
}

func notFoundErr(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

func TestReviewCommands_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("new draft is persisted with zero approvals", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		posID := uuid.New()
		authorID := uuid.New()
		input := commands.SubmitReviewInput{PosID: posID, Content: "Good coffee"}

		f.reads.EXPECT().PosByID(ctx, posID).Return(&shared.PosSnapshot{ID: posID}, nil)
		f.reads.EXPECT().UserByID(ctx, authorID).Return(&shared.UserSnapshot{ID: authorID}, nil)
		f.reads.EXPECT().ReviewsByPosAndAuthor(ctx, posID, authorID).Return(nil, nil)

		createdID := uuid.New()
		f.reviews.EXPECT().Create(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, rev *domreview.Review) (uuid.UUID, error) {
				assert.Equal(t, int32(0), rev.ApprovalCount())
				assert.False(t, rev.Approved())
				return createdID, nil
			})

		result, err := f.cmds.Submit(ctx, input, authorID)
		require.NoError(t, err)
		assert.Equal(t, createdID, result.ReviewID)
	})

	t.Run("empty pos reference is rejected", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)

		_, err := f.cmds.Submit(ctx, commands.SubmitReviewInput{Content: "x"}, uuid.New())
		require.ErrorIs(t, err, commands.ErrPosRequired)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("empty author reference is rejected", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)

		_, err := f.cmds.Submit(ctx, commands.SubmitReviewInput{PosID: uuid.New(), Content: "x"}, uuid.Nil)
		require.ErrorIs(t, err, commands.ErrAuthorRequired)
	})

	t.Run("unknown pos maps to not found", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		posID := uuid.New()

		f.reads.EXPECT().PosByID(ctx, posID).Return(nil, notFoundErr("pos not found"))

		_, err := f.cmds.Submit(ctx, commands.SubmitReviewInput{PosID: posID, Content: "x"}, uuid.New())
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPosNotFound))
	})

	t.Run("unknown author maps to not found", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		posID := uuid.New()
		authorID := uuid.New()

		f.reads.EXPECT().PosByID(ctx, posID).Return(&shared.PosSnapshot{ID: posID}, nil)
		f.reads.EXPECT().UserByID(ctx, authorID).Return(nil, notFoundErr("user not found"))

		_, err := f.cmds.Submit(ctx, commands.SubmitReviewInput{PosID: posID, Content: "x"}, authorID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUserNotFound))
	})

	t.Run("second review for the same pos is rejected", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		posID := uuid.New()
		authorID := uuid.New()

		existing := builder.NewReviewBuilder().WithPosID(posID).WithAuthorID(authorID).BuildSnapshot()

		f.reads.EXPECT().PosByID(ctx, posID).Return(&shared.PosSnapshot{ID: posID}, nil)
		f.reads.EXPECT().UserByID(ctx, authorID).Return(&shared.UserSnapshot{ID: authorID}, nil)
		f.reads.EXPECT().ReviewsByPosAndAuthor(ctx, posID, authorID).Return([]*shared.ReviewSnapshot{existing}, nil)

		_, err := f.cmds.Submit(ctx, commands.SubmitReviewInput{PosID: posID, Content: "x"}, authorID)
		require.ErrorIs(t, err, commands.ErrDuplicateReview)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("invalid content is a validation error", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		posID := uuid.New()
		authorID := uuid.New()

		f.reads.EXPECT().PosByID(ctx, posID).Return(&shared.PosSnapshot{ID: posID}, nil)
		f.reads.EXPECT().UserByID(ctx, authorID).Return(&shared.UserSnapshot{ID: authorID}, nil)
		f.reads.EXPECT().ReviewsByPosAndAuthor(ctx, posID, authorID).Return(nil, nil)

		_, err := f.cmds.Submit(ctx, commands.SubmitReviewInput{PosID: posID, Content: "   "}, authorID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("update keeps the stored approval state", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		posID := uuid.New()
		authorID := uuid.New()
		reviewID := uuid.New()

		stored := builder.NewReviewBuilder().
			WithPosID(posID).
			WithAuthorID(authorID).
			WithApprovalCount(3).
			BuildSnapshot()
		stored.ID = reviewID

		f.reads.EXPECT().PosByID(ctx, posID).Return(&shared.PosSnapshot{ID: posID}, nil)
		f.reads.EXPECT().UserByID(ctx, authorID).Return(&shared.UserSnapshot{ID: authorID}, nil)
		// The author's existing review is the one being resubmitted; it must
		// not trip the duplicate rule.
		f.reads.EXPECT().ReviewsByPosAndAuthor(ctx, posID, authorID).Return([]*shared.ReviewSnapshot{stored}, nil)
		f.reads.EXPECT().ReviewByID(ctx, reviewID).Return(stored, nil)

		var saved *domreview.Review
		f.reviews.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ db.DBTX, rev *domreview.Review) error {
				saved = rev
				return nil
			})

		input := commands.SubmitReviewInput{ReviewID: reviewID, PosID: posID, Content: "Updated text"}
		result, err := f.cmds.Submit(ctx, input, authorID)
		require.NoError(t, err)
		assert.Equal(t, reviewID, result.ReviewID)

		require.NotNil(t, saved)
		assert.Equal(t, "Updated text", saved.Content().String())
		assert.Equal(t, int32(3), saved.ApprovalCount())
		assert.True(t, saved.Approved())
	})

	t.Run("update naming a different review still trips the duplicate rule", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		posID := uuid.New()
		authorID := uuid.New()

		existing := builder.NewReviewBuilder().WithPosID(posID).WithAuthorID(authorID).BuildSnapshot()

		f.reads.EXPECT().PosByID(ctx, posID).Return(&shared.PosSnapshot{ID: posID}, nil)
		f.reads.EXPECT().UserByID(ctx, authorID).Return(&shared.UserSnapshot{ID: authorID}, nil)
		f.reads.EXPECT().ReviewsByPosAndAuthor(ctx, posID, authorID).Return([]*shared.ReviewSnapshot{existing}, nil)

		input := commands.SubmitReviewInput{ReviewID: uuid.New(), PosID: posID, Content: "x"}
		_, err := f.cmds.Submit(ctx, input, authorID)
		require.ErrorIs(t, err, commands.ErrDuplicateReview)
	})

	t.Run("update for a missing stored review starts from zero approvals", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		posID := uuid.New()
		authorID := uuid.New()
		reviewID := uuid.New()

		f.reads.EXPECT().PosByID(ctx, posID).Return(&shared.PosSnapshot{ID: posID}, nil)
		f.reads.EXPECT().UserByID(ctx, authorID).Return(&shared.UserSnapshot{ID: authorID}, nil)
		f.reads.EXPECT().ReviewsByPosAndAuthor(ctx, posID, authorID).Return(nil, nil)
		f.reads.EXPECT().ReviewByID(ctx, reviewID).Return(nil, notFoundErr("review not found"))
		f.reviews.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil)

		input := commands.SubmitReviewInput{ReviewID: reviewID, PosID: posID, Content: "Fresh text"}
		result, err := f.cmds.Submit(ctx, input, authorID)
		require.NoError(t, err)
		assert.Equal(t, reviewID, result.ReviewID)
	})
}

func TestReviewCommands_Approve(t *testing.T) {
	ctx := context.Background()

	storedReview := func(authorID uuid.UUID, count int32) *shared.ReviewSnapshot {
		s := builder.NewReviewBuilder().WithAuthorID(authorID).WithApprovalCount(count).BuildSnapshot()
		return s
	}

	t.Run("approval below quorum increments the count", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		approverID := uuid.New()
		authorID := uuid.New()
		stored := storedReview(authorID, 0)

		f.reads.EXPECT().UserByID(ctx, approverID).Return(&shared.UserSnapshot{ID: approverID}, nil)
		f.reads.EXPECT().ReviewByID(ctx, stored.ID).Return(stored, nil)
		f.reviews.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.cmds.Approve(ctx, stored.ID, approverID)
		require.NoError(t, err)
		assert.Equal(t, int32(1), result.ApprovalCount)
		assert.False(t, result.Approved)
	})

	t.Run("approval at quorum flips approved", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		approverID := uuid.New()
		authorID := uuid.New()
		stored := storedReview(authorID, 1)

		f.reads.EXPECT().UserByID(ctx, approverID).Return(&shared.UserSnapshot{ID: approverID}, nil)
		f.reads.EXPECT().ReviewByID(ctx, stored.ID).Return(stored, nil)
		f.reviews.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.cmds.Approve(ctx, stored.ID, approverID)
		require.NoError(t, err)
		assert.Equal(t, int32(2), result.ApprovalCount)
		assert.True(t, result.Approved)
	})

	t.Run("quorum of one approves on the first approval", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 1)
		approverID := uuid.New()
		authorID := uuid.New()
		stored := storedReview(authorID, 0)

		f.reads.EXPECT().UserByID(ctx, approverID).Return(&shared.UserSnapshot{ID: approverID}, nil)
		f.reads.EXPECT().ReviewByID(ctx, stored.ID).Return(stored, nil)
		f.reviews.EXPECT().Save(ctx, gomock.Any(), gomock.Any()).Return(nil)

		result, err := f.cmds.Approve(ctx, stored.ID, approverID)
		require.NoError(t, err)
		assert.True(t, result.Approved)
	})

	t.Run("authors cannot approve their own review", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		authorID := uuid.New()
		stored := storedReview(authorID, 0)

		f.reads.EXPECT().UserByID(ctx, authorID).Return(&shared.UserSnapshot{ID: authorID}, nil)
		f.reads.EXPECT().ReviewByID(ctx, stored.ID).Return(stored, nil)

		_, err := f.cmds.Approve(ctx, stored.ID, authorID)
		require.ErrorIs(t, err, commands.ErrSelfApproval)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("empty review reference is rejected", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)

		_, err := f.cmds.Approve(ctx, uuid.Nil, uuid.New())
		require.ErrorIs(t, err, commands.ErrReviewRequired)
	})

	t.Run("unknown approver maps to not found", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		approverID := uuid.New()

		f.reads.EXPECT().UserByID(ctx, approverID).Return(nil, notFoundErr("user not found"))

		_, err := f.cmds.Approve(ctx, uuid.New(), approverID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrUserNotFound))
	})

	t.Run("unknown review maps to not found", func(t *testing.T) {
		f := newReviewCommandsFixture(t, 2)
		approverID := uuid.New()
		reviewID := uuid.New()

		f.reads.EXPECT().UserByID(ctx, approverID).Return(&shared.UserSnapshot{ID: approverID}, nil)
		f.reads.EXPECT().ReviewByID(ctx, reviewID).Return(nil, notFoundErr("review not found"))

		_, err := f.cmds.Approve(ctx, reviewID, approverID)
		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrReviewNotFound))
	})
}
