package services

import "errors"

// Service-level errors. Controllers map these onto the HTTP taxonomy:
// not-found → 404, validation → 400, forbidden → 403.
var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrItemNotFound       = errors.New("item not found")
	ErrCartNotFound       = errors.New("cart not found")
	ErrCartItemNotFound   = errors.New("cart item not found")
	ErrOrderNotFound      = errors.New("order not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrFavoriteNotFound   = errors.New("favorite not found")

	ErrPhoneTaken         = errors.New("a user with this phone number already exists")
	ErrUnknownRole        = errors.New("unsupported role")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongOldPassword   = errors.New("old password is incorrect")

	ErrOrderNotReviewable = errors.New("you can only review orders that you have placed")
	ErrOrderNotCompleted  = errors.New("only completed orders can be reviewed")
	ErrDuplicateReview    = errors.New("you have already reviewed this order")
	ErrDuplicateFavorite  = errors.New("this restaurant is already in your favorites")

	ErrInvalidState      = errors.New("invalid order state")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrInvalidFilter     = errors.New("invalid filter option")
)
