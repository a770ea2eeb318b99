package api

import (
	"net/http"

	"campuscoffee/internal/handler/httperr"
	"campuscoffee/internal/pkg/errs"
	"campuscoffee/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortCommandError translates use-case failures into HTTP statuses:
// missing references map to 404, rule violations to 400, the rest to 500.
// Matching goes through errs.Is so marked errors classify correctly.
func abortCommandError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errs.Is(err, errs.ErrPosNotFound),
		errs.Is(err, errs.ErrUserNotFound),
		errs.Is(err, errs.ErrReviewNotFound),
		errs.Is(err, queries.ErrPosNotFound),
		errs.Is(err, queries.ErrReviewNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, errs.ErrDomainValidation),
		errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, fallbackMsg, nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func errorIsNotFound(err error) bool {
	return errs.Is(err, queries.ErrPosNotFound) ||
		errs.Is(err, queries.ErrReviewNotFound) ||
		errs.Is(err, errs.ErrPosNotFound) ||
		errs.Is(err, errs.ErrReviewNotFound)
}
