package controllers

import (
	"errors"

	"backend/pkg/resp"
	"backend/services"

	"github.com/gin-gonic/gin"
)

var notFoundErrs = []error{
	services.ErrRestaurantNotFound,
	services.ErrItemNotFound,
	services.ErrCartNotFound,
	services.ErrCartItemNotFound,
	services.ErrOrderNotFound,
	services.ErrProfileNotFound,
	services.ErrFavoriteNotFound,
}

var badRequestErrs = []error{
	services.ErrPhoneTaken,
	services.ErrUnknownRole,
	services.ErrWrongOldPassword,
	services.ErrOrderNotReviewable,
	services.ErrOrderNotCompleted,
	services.ErrDuplicateReview,
	services.ErrDuplicateFavorite,
	services.ErrInvalidState,
	services.ErrInvalidTransition,
	services.ErrInvalidFilter,
}

// fail maps a service error onto the NotFound/Validation taxonomy;
// anything unrecognized is a 500.
func fail(c *gin.Context, err error) {
	for _, e := range notFoundErrs {
		if errors.Is(err, e) {
			resp.NotFound(c, err.Error())
			return
		}
	}
	for _, e := range badRequestErrs {
		if errors.Is(err, e) {
			resp.BadRequest(c, err.Error())
			return
		}
	}
	resp.ServerError(c, err)
}
