package service

import (
	"sort"
	"time"

	"github.com/AlexMarkGIT/shareit/internal/models"
)

// State is the temporal bucket a booking list is filtered by.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

func ParseState(s string) (State, error) {
	switch State(s) {
	case StateAll, StateCurrent, StatePast, StateFuture, StateWaiting, StateRejected:
		return State(s), nil
	default:
		return "", ErrUnknownState
	}
}

// matchesState evaluates the bucket predicate against now. CURRENT is
// inclusive of both bounds; WAITING additionally requires a future start.
func matchesState(b *models.Booking, state State, now time.Time) (bool, error) {
	switch state {
	case StateAll:
		return true, nil
	case StateCurrent:
		return !now.Before(b.Start) && !now.After(b.End), nil
	case StatePast:
		return b.End.Before(now), nil
	case StateFuture:
		return b.Start.After(now), nil
	case StateWaiting:
		return b.Status == models.StatusWaiting && b.Start.After(now), nil
	case StateRejected:
		return b.Status == models.StatusRejected, nil
	default:
		return false, ErrUnknownState
	}
}

// filterBookings classifies an unsorted set into the requested bucket, sorts
// it by start descending and applies paging. from is an absolute offset whose
// page is picked by integer division: from=1, size=1 yields the second record,
// not the second page.
func filterBookings(bookings []models.Booking, state State, now time.Time, from, size int) ([]models.Booking, error) {
	filtered := make([]models.Booking, 0, len(bookings))
	for i := range bookings {
		ok, err := matchesState(&bookings[i], state, now)
		if err != nil {
			return nil, err
		}
		if ok {
			filtered = append(filtered, bookings[i])
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Start.After(filtered[j].Start)
	})

	return paginate(filtered, from, size), nil
}

// paginate picks the page containing the absolute offset from, page length
// size.
func paginate[T any](records []T, from, size int) []T {
	lo := (from / size) * size
	if lo >= len(records) {
		return []T{}
	}
	hi := lo + size
	if hi > len(records) {
		hi = len(records)
	}
	return records[lo:hi]
}
