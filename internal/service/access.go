package service

import "github.com/AlexMarkGIT/shareit/internal/models"

// Relationship guards. Pure checks over the entities passed in; they do no
// lookups of their own.

func requireOwner(userID uint, item *models.Item) error {
	if item.OwnerID != userID {
		return ErrNotOwner
	}
	return nil
}

func requireNotOwner(userID uint, item *models.Item) error {
	if item.OwnerID == userID {
		return ErrOwnerSelfBooking
	}
	return nil
}

func requireBookerOrOwner(userID uint, booking *models.Booking, item *models.Item) error {
	if booking.BookerID != userID && item.OwnerID != userID {
		return ErrNotOwner
	}
	return nil
}
