package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AlexMarkGIT/shareit/internal/models"
	"github.com/AlexMarkGIT/shareit/internal/repository"
	"github.com/AlexMarkGIT/shareit/pkg/rabbitmq"
	"gorm.io/gorm"
)

type BookingService interface {
	Create(ctx context.Context, bookerID, itemID uint, start, end time.Time) (*models.Booking, error)
	Decide(ctx context.Context, bookingID, userID uint, approved bool) (*models.Booking, error)
	GetByID(ctx context.Context, bookingID, userID uint) (*models.Booking, error)
	ListByBooker(ctx context.Context, userID uint, state State, from, size int) ([]models.Booking, error)
	ListByOwner(ctx context.Context, userID uint, state State, from, size int) ([]models.Booking, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	publisher   *rabbitmq.Publisher

	// now is swapped out in tests
	now func() time.Time
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	publisher *rabbitmq.Publisher,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		publisher:   publisher,
		now:         time.Now,
	}
}

// Create books an item for the given interval. The whole path runs in one
// transaction with the item row locked, so two overlapping requests for the
// same item cannot both pass the conflict check.
func (s *bookingService) Create(ctx context.Context, bookerID, itemID uint, start, end time.Time) (*models.Booking, error) {
	if !start.Before(end) {
		return nil, ErrInvalidInterval
	}

	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booker, err := s.userRepo.FindByID(ctx, bookerID)
		if err != nil {
			return asNotFound(err, ErrUserNotFound)
		}

		item, err := s.itemRepo.FindByIDForUpdate(ctx, tx, itemID)
		if err != nil {
			return asNotFound(err, ErrItemNotFound)
		}

		if err := requireNotOwner(booker.ID, item); err != nil {
			return err
		}
		if !item.Available {
			return ErrItemUnavailable
		}

		existing, err := s.bookingRepo.FindAllByItem(ctx, tx, item.ID)
		if err != nil {
			return fmt.Errorf("load bookings of item %d: %w", item.ID, err)
		}
		if hasTimeConflict(existing, start, end) {
			return ErrItemUnavailable
		}

		booking := &models.Booking{
			ItemID:   item.ID,
			BookerID: booker.ID,
			Start:    start,
			End:      end,
			Status:   models.StatusWaiting,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			return fmt.Errorf("create booking: %w", err)
		}

		booking.Item = item
		booking.Booker = booker
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish("booking.requested", result)
	return result, nil
}

// Decide lets the item owner approve or reject a waiting booking. An approved
// booking is final; a rejected one may still be approved later.
func (s *bookingService) Decide(ctx context.Context, bookingID, userID uint, approved bool) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, asNotFound(err, ErrBookingNotFound)
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	if booking.Status == models.StatusApproved {
		return nil, ErrAlreadyDecided
	}

	if err := requireOwner(user.ID, booking.Item); err != nil {
		return nil, err
	}

	routingKey := "booking.rejected"
	booking.Status = models.StatusRejected
	if approved {
		routingKey = "booking.approved"
		booking.Status = models.StatusApproved
	}

	if err := s.bookingRepo.Save(ctx, booking); err != nil {
		return nil, fmt.Errorf("save booking %d: %w", bookingID, err)
	}

	s.publish(routingKey, booking)
	return booking, nil
}

// GetByID returns the booking to its booker or the item owner; nobody else
// may view it.
func (s *bookingService) GetByID(ctx context.Context, bookingID, userID uint) (*models.Booking, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, asNotFound(err, ErrBookingNotFound)
	}

	if err := requireBookerOrOwner(user.ID, booking, booking.Item); err != nil {
		return nil, err
	}

	return booking, nil
}

func (s *bookingService) ListByBooker(ctx context.Context, userID uint, state State, from, size int) ([]models.Booking, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	bookings, err := s.bookingRepo.FindAllByBooker(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load bookings of booker %d: %w", userID, err)
	}

	return filterBookings(bookings, state, s.now(), from, size)
}

func (s *bookingService) ListByOwner(ctx context.Context, userID uint, state State, from, size int) ([]models.Booking, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	bookings, err := s.bookingRepo.FindAllByOwner(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load bookings of owner %d: %w", userID, err)
	}

	return filterBookings(bookings, state, s.now(), from, size)
}

func (s *bookingService) publish(routingKey string, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	_ = s.publisher.Publish(routingKey, booking)
}

// asNotFound maps a missing record onto the matching domain error and keeps
// everything else as a storage fault.
func asNotFound(err error, notFound error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
