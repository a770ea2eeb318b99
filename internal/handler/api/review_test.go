//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"campuscoffee/internal/domain/user"
	"campuscoffee/internal/handler/api"
	resdto "campuscoffee/internal/handler/dto/response"
	"campuscoffee/internal/pkg/errs"
	"campuscoffee/internal/pkg/ptr"
	"campuscoffee/internal/usecase/commands"
	"campuscoffee/internal/usecase/queries"
	"campuscoffee/tests/common/builder"
	"campuscoffee/tests/common/httptest"
	"campuscoffee/tests/common/testutil"
	commandsmock "campuscoffee/tests/mock/commands"
	queriesmock "campuscoffee/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	authedUserID uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.authedUserID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.authedUserID)
		c.Set("user_role", user.RoleMember)
		c.Next()
	}

	s.router.POST("/reviews", authMiddleware, s.handler.Submit)
	s.router.PUT("/reviews/:id", authMiddleware, s.handler.Update)
	s.router.POST("/reviews/:id/approvals", authMiddleware, s.handler.Approve)
	s.router.GET("/reviews/:id", s.handler.Get)
	s.router.GET("/pos/:id/reviews", s.handler.ListByPos)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestSubmit
// ================================================================================

func (s *ReviewHandlerTestSuite) TestSubmit() {
	url := "/reviews"

	reqBody := builder.NewReviewBuilder().BuildSubmitRequestDTO()
	returnView := builder.NewReviewBuilder().WithPosID(reqBody.PosID).BuildViewQuery()
	expectedResult := &commands.SubmitReviewResult{ReviewID: returnView.ID}

	// Validation boundary cases
	bound := []testCaseReview{
		{name: "content length OK (2000 chars)", mutate: testutil.Field("content", strings.Repeat("a", 2000)), expectCode: http.StatusCreated},
		{name: "content length invalid (2001 chars)", mutate: testutil.Field("content", strings.Repeat("a", 2001)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReview{
		{name: "missing field: pos_id (required)", mutate: testutil.Field("pos_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: content (required)", mutate: testutil.Field("content", nil), expectCode: http.StatusBadRequest},
	}

	empty := []testCaseReview{
		{name: "empty content", mutate: testutil.Field("content", ""), expectCode: http.StatusBadRequest},
	}

	allValidationTestCases := [][]testCaseReview{bound, missing, empty}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody.ToInput(), s.authedUserID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID.String(), response.ID)
		s.Equal(returnView.Content, response.Content)
		s.Equal(int32(0), response.ApprovalCount)
		s.False(response.Approved)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		for _, testCaseGroup := range allValidationTestCases {
			for _, tc := range testCaseGroup {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)

					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().Submit(gomock.Any(), gomock.Any(), s.authedUserID).
							Return(expectedResult, nil).Times(1)
						s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).
							Return(returnView, nil).Times(1)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					if tc.expectCode == http.StatusCreated {
						httptest.AssertSuccessResponse(s.T(), rec, tc.expectCode, nil)
					} else {
						httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
					}
				})
			}
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "duplicate review",
				commandsError:  commands.ErrDuplicateReview,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Submit review failed",
			},
			{
				name:           "pos not found",
				commandsError:  errs.Mark(errs.New("pos not found"), errs.ErrPosNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "author not found",
				commandsError:  errs.Mark(errs.New("user not found"), errs.ErrUserNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody.ToInput(), s.authedUserID).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestUpdate() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	reqBody := builder.NewReviewBuilder().BuildUpdateRequestDTO()
	returnView := builder.NewReviewBuilder().WithPosID(reqBody.PosID).AsApproved(2).BuildViewQuery()
	returnView.ID = reviewID
	expectedResult := &commands.SubmitReviewResult{ReviewID: reviewID}

	s.Run("success: returns 200 OK and keeps stored approval state", func() {
		s.mockCommands.EXPECT().Submit(gomock.Any(), reqBody.ToInput(reviewID), s.authedUserID).
			Return(expectedResult, nil).Times(1)
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reviewID.String(), response.ID)
		s.Equal(int32(2), response.ApprovalCount)
		s.True(response.Approved)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/reviews/invalid-uuid", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestApprove
// ================================================================================

func (s *ReviewHandlerTestSuite) TestApprove() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String() + "/approvals"

	s.Run("success: returns 200 OK with approval state", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), reviewID, s.authedUserID).
			Return(&commands.ApproveReviewResult{ReviewID: reviewID, ApprovalCount: 2, Approved: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var response resdto.ApprovalResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reviewID.String(), response.ReviewID)
		s.Equal(int32(2), response.ApprovalCount)
		s.True(response.Approved)
	})

	s.Run("error: 400 Bad Request on self approval", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), reviewID, s.authedUserID).
			Return(nil, commands.ErrSelfApproval).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Approve review failed")
	})

	s.Run("error: 404 Not Found for missing review", func() {
		s.mockCommands.EXPECT().Approve(gomock.Any(), reviewID, s.authedUserID).
			Return(nil, errs.Mark(errs.New("review not found"), errs.ErrReviewNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/reviews/invalid-uuid/approvals", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGet() {
	reviewID := uuid.New()
	url := "/reviews/" + reviewID.String()

	returnView := builder.NewReviewBuilder().BuildViewQuery()
	returnView.ID = reviewID

	s.Run("success: returns 200 OK with ReviewResponse", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.ReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(reviewID.String(), response.ID)
		s.Equal(returnView.Content, response.Content)
		s.Equal(returnView.PosName, response.PosName)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reviews/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 Not Found for missing review", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), reviewID).
			Return(nil, queries.ErrReviewNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})
}

// ================================================================================
// TestListByPos
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByPos() {
	posID := uuid.New()
	url := "/pos/" + posID.String() + "/reviews"

	items := []*queries.ReviewListItem{
		builder.NewReviewBuilder().WithPosID(posID).BuildListItem(),
		builder.NewReviewBuilder().WithPosID(posID).AsApproved(2).BuildListItem(),
	}

	s.Run("success: returns 200 OK with review list", func() {
		s.mockQueries.EXPECT().ListByPos(gomock.Any(), posID, queries.ReviewFilters{}, (*queries.Cursor)(nil), 20).
			Return(items, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response struct {
			Reviews    []*resdto.ReviewListItemResponse `json:"reviews"`
			NextCursor string                           `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 2)
		s.Empty(response.NextCursor)
	})

	s.Run("success: passes approved filter and pagination params", func() {
		cursor := &queries.Cursor{After: "abc"}
		s.mockQueries.EXPECT().ListByPos(gomock.Any(), posID, queries.ReviewFilters{Approved: ptr.To(true)}, cursor, 10).
			Return(items[1:], &queries.Cursor{After: "def"}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?approved=true&limit=10&after=abc", nil, "")

		var response struct {
			Reviews    []*resdto.ReviewListItemResponse `json:"reviews"`
			NextCursor string                           `json:"next_cursor"`
		}
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Reviews, 1)
		s.Equal("def", response.NextCursor)
	})

	s.Run("error: 400 Bad Request for malformed approved filter", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?approved=banana", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid approved filter")
	})

	s.Run("error: 404 Not Found for unknown pos", func() {
		s.mockQueries.EXPECT().ListByPos(gomock.Any(), posID, queries.ReviewFilters{}, (*queries.Cursor)(nil), 20).
			Return(nil, nil, queries.ErrPosNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Not found")
	})

	s.Run("error: 400 Bad Request for invalid cursor", func() {
		cursor := &queries.Cursor{After: "!!!"}
		s.mockQueries.EXPECT().ListByPos(gomock.Any(), posID, queries.ReviewFilters{}, cursor, 20).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?after=%21%21%21", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cursor")
	})

	s.Run("error: 400 Bad Request for invalid pos UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/pos/invalid-uuid/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid pos id")
	})
}
