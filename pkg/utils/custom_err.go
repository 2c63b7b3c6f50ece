package utils

import "errors"

var (
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
	ErrCacheError      = errors.New("cache error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUnauthorized       = errors.New("unauthorized")

	ErrPlanNotFound     = errors.New("plan not found or expired")
	ErrTierNotFound     = errors.New("tier not found in plan")
	ErrTripNotFound     = errors.New("trip not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrForbidden        = errors.New("forbidden")
	ErrBookingNotActive = errors.New("booking cannot be cancelled in its current status")
	ErrEmptySelection   = errors.New("no services selected")
	ErrPaymentFailed    = errors.New("payment failed")

	// ErrPaymentNotRecorded means the charge went through but the bookings
	// could not be stored. The error text carries the payment reference.
	ErrPaymentNotRecorded = errors.New("payment captured but booking not recorded")

	ErrDestinationNotFound = errors.New("destination not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrAlreadyReviewed     = errors.New("destination already reviewed by this user")

	ErrExportFailed         = errors.New("export failed")
	ErrAssistantUnavailable = errors.New("assistant unavailable")
)
