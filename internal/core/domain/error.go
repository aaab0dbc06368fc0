package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound   = errors.New("data not found")
	ErrInvalidCatalog = errors.New("package catalog is not valid")

	// * Communication errors.
	ErrBadRequest   = errors.New("error parsing request")
	ErrLookupFailed = errors.New("user lookup failed")

	// * Business errors.
	ErrInsufficientBalance = errors.New("balance is not enough")
	ErrUnknownPackage      = errors.New("package is not in catalog")
	ErrSendUnavailable     = errors.New("send is not available for current form state")
	ErrSendInProgress      = errors.New("send is already in progress")
)
