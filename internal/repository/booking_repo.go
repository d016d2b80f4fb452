package repository

import (
	"context"
	"time"

	"github.com/AlexMarkGIT/shareit/internal/models"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	Save(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uint) (*models.Booking, error)
	FindAllByItem(ctx context.Context, tx *gorm.DB, itemID uint) ([]models.Booking, error)
	FindAllByBooker(ctx context.Context, bookerID uint) ([]models.Booking, error)
	FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error)
	FindApprovedPastByBookerAndItem(ctx context.Context, bookerID, itemID uint, now time.Time) ([]models.Booking, error)
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) Save(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	var booking models.Booking
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		First(&booking, id).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindAllByItem(ctx context.Context, tx *gorm.DB, itemID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := tx.WithContext(ctx).
		Where("item_id = ?", itemID).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAllByBooker(ctx context.Context, bookerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Where("booker_id = ?", bookerID).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *bookingRepository) FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Preload("Item").
		Preload("Booker").
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindApprovedPastByBookerAndItem backs the comment guard: only users who
// actually picked the item up at least once may comment on it.
func (r *bookingRepository) FindApprovedPastByBookerAndItem(ctx context.Context, bookerID, itemID uint, now time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := r.db.WithContext(ctx).
		Where("booker_id = ? AND item_id = ? AND start_date < ? AND status = ?",
			bookerID, itemID, now, models.StatusApproved).
		Find(&bookings).Error
	if err != nil {
		return nil, err
	}
	return bookings, nil
}
