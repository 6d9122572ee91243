package utils

import "errors"

var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound         = errors.New("user not found")
	ErrItemNotFound         = errors.New("item not found")
	ErrVariantNotFound      = errors.New("item variant not found")
	ErrMarketNotFound       = errors.New("market not found")
	ErrReportNotFound       = errors.New("report not found")
	ErrNotificationNotFound = errors.New("notification not found")

	// A report leaves pending exactly once; losers of the verify race and
	// repeat attempts both land here.
	ErrReportAlreadyResolved = errors.New("report already resolved")
	ErrSelfVerification      = errors.New("cannot verify own report")
	ErrDuplicateReport       = errors.New("duplicate report within the hour")

	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrDatabaseError   = errors.New("database error")
)
