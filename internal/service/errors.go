package service

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrRequestNotFound = errors.New("item request not found")

	// ErrOwnerSelfBooking: owners cannot book their own items.
	ErrOwnerSelfBooking = errors.New("owner cannot book own item")

	// ErrItemUnavailable covers both a non-available item and a time conflict
	// with an approved booking; to the caller both mean "can't book now".
	ErrItemUnavailable = errors.New("item is not available for booking")

	ErrAlreadyDecided  = errors.New("booking is already approved")
	ErrNotOwner        = errors.New("user is not related to the booking or item")
	ErrUnknownState    = errors.New("unknown state")
	ErrInvalidInterval = errors.New("booking start must be before its end")

	ErrEmailTaken = errors.New("email is already in use")

	// ErrNoFinishedBooking: comments are only accepted from users who had an
	// approved booking of the item that has already started.
	ErrNoFinishedBooking = errors.New("user has no finished booking of this item")
)
