package service

import (
	"time"

	"github.com/AlexMarkGIT/shareit/internal/models"
)

// hasTimeConflict reports whether the candidate interval overlaps any approved
// booking of the item. Waiting and rejected bookings never block. Touching
// endpoints count as overlap: a booking ending exactly when the candidate
// starts is still a conflict.
func hasTimeConflict(bookings []models.Booking, start, end time.Time) bool {
	for i := range bookings {
		b := &bookings[i]
		if b.Status != models.StatusApproved {
			continue
		}
		if !(start.After(b.End) || end.Before(b.Start)) {
			return true
		}
	}
	return false
}
