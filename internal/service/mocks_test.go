package service

import (
	"context"
	"time"

	"github.com/AlexMarkGIT/shareit/internal/models"
	"gorm.io/gorm"
)

// Hand-rolled repository mocks shared by the service tests. Unset functions
// fall back to "not found" / empty results.

type mockUserRepo struct {
	createFn   func(ctx context.Context, user *models.User) error
	saveFn     func(ctx context.Context, user *models.User) error
	findByIDFn func(ctx context.Context, id uint) (*models.User, error)
	findAllFn  func(ctx context.Context) ([]models.User, error)
	deleteFn   func(ctx context.Context, id uint) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, user)
}

func (m *mockUserRepo) Save(ctx context.Context, user *models.User) error {
	if m.saveFn == nil {
		return nil
	}
	return m.saveFn(ctx, user)
}

func (m *mockUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]models.User, error) {
	if m.findAllFn == nil {
		return []models.User{}, nil
	}
	return m.findAllFn(ctx)
}

func (m *mockUserRepo) Delete(ctx context.Context, id uint) error {
	if m.deleteFn == nil {
		return nil
	}
	return m.deleteFn(ctx, id)
}

type mockItemRepo struct {
	createFn            func(ctx context.Context, item *models.Item) error
	saveFn              func(ctx context.Context, item *models.Item) error
	findByIDFn          func(ctx context.Context, id uint) (*models.Item, error)
	findByIDForUpdateFn func(ctx context.Context, tx *gorm.DB, id uint) (*models.Item, error)
	findAllByOwnerFn    func(ctx context.Context, ownerID uint) ([]models.Item, error)
	findAllByRequestFn  func(ctx context.Context, requestID uint) ([]models.Item, error)
	searchFn            func(ctx context.Context, text string) ([]models.Item, error)
}

func (m *mockItemRepo) Create(ctx context.Context, item *models.Item) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, item)
}

func (m *mockItemRepo) Save(ctx context.Context, item *models.Item) error {
	if m.saveFn == nil {
		return nil
	}
	return m.saveFn(ctx, item)
}

func (m *mockItemRepo) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockItemRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Item, error) {
	if m.findByIDForUpdateFn != nil {
		return m.findByIDForUpdateFn(ctx, tx, id)
	}
	return m.FindByID(ctx, id)
}

func (m *mockItemRepo) FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Item, error) {
	if m.findAllByOwnerFn == nil {
		return []models.Item{}, nil
	}
	return m.findAllByOwnerFn(ctx, ownerID)
}

func (m *mockItemRepo) FindAllByRequest(ctx context.Context, requestID uint) ([]models.Item, error) {
	if m.findAllByRequestFn == nil {
		return []models.Item{}, nil
	}
	return m.findAllByRequestFn(ctx, requestID)
}

func (m *mockItemRepo) Search(ctx context.Context, text string) ([]models.Item, error) {
	if m.searchFn == nil {
		return []models.Item{}, nil
	}
	return m.searchFn(ctx, text)
}

type mockBookingRepo struct {
	createFn           func(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	saveFn             func(ctx context.Context, booking *models.Booking) error
	findByIDFn         func(ctx context.Context, id uint) (*models.Booking, error)
	findAllByItemFn    func(ctx context.Context, tx *gorm.DB, itemID uint) ([]models.Booking, error)
	findAllByBookerFn  func(ctx context.Context, bookerID uint) ([]models.Booking, error)
	findAllByOwnerFn   func(ctx context.Context, ownerID uint) ([]models.Booking, error)
	findApprovedPastFn func(ctx context.Context, bookerID, itemID uint, now time.Time) ([]models.Booking, error)
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, tx, booking)
}

func (m *mockBookingRepo) Save(ctx context.Context, booking *models.Booking) error {
	if m.saveFn == nil {
		return nil
	}
	return m.saveFn(ctx, booking)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id uint) (*models.Booking, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockBookingRepo) FindAllByItem(ctx context.Context, tx *gorm.DB, itemID uint) ([]models.Booking, error) {
	if m.findAllByItemFn == nil {
		return []models.Booking{}, nil
	}
	return m.findAllByItemFn(ctx, tx, itemID)
}

func (m *mockBookingRepo) FindAllByBooker(ctx context.Context, bookerID uint) ([]models.Booking, error) {
	if m.findAllByBookerFn == nil {
		return []models.Booking{}, nil
	}
	return m.findAllByBookerFn(ctx, bookerID)
}

func (m *mockBookingRepo) FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Booking, error) {
	if m.findAllByOwnerFn == nil {
		return []models.Booking{}, nil
	}
	return m.findAllByOwnerFn(ctx, ownerID)
}

func (m *mockBookingRepo) FindApprovedPastByBookerAndItem(ctx context.Context, bookerID, itemID uint, now time.Time) ([]models.Booking, error) {
	if m.findApprovedPastFn == nil {
		return []models.Booking{}, nil
	}
	return m.findApprovedPastFn(ctx, bookerID, itemID, now)
}

func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

type mockCommentRepo struct {
	createFn        func(ctx context.Context, comment *models.Comment) error
	findAllByItemFn func(ctx context.Context, itemID uint) ([]models.Comment, error)
}

func (m *mockCommentRepo) Create(ctx context.Context, comment *models.Comment) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, comment)
}

func (m *mockCommentRepo) FindAllByItem(ctx context.Context, itemID uint) ([]models.Comment, error) {
	if m.findAllByItemFn == nil {
		return []models.Comment{}, nil
	}
	return m.findAllByItemFn(ctx, itemID)
}

type mockRequestRepo struct {
	createFn             func(ctx context.Context, request *models.ItemRequest) error
	findByIDFn           func(ctx context.Context, id uint) (*models.ItemRequest, error)
	findAllByRequesterFn func(ctx context.Context, requesterID uint) ([]models.ItemRequest, error)
	findAllByOthersFn    func(ctx context.Context, requesterID uint) ([]models.ItemRequest, error)
}

func (m *mockRequestRepo) Create(ctx context.Context, request *models.ItemRequest) error {
	if m.createFn == nil {
		return nil
	}
	return m.createFn(ctx, request)
}

func (m *mockRequestRepo) FindByID(ctx context.Context, id uint) (*models.ItemRequest, error) {
	if m.findByIDFn == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return m.findByIDFn(ctx, id)
}

func (m *mockRequestRepo) FindAllByRequester(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	if m.findAllByRequesterFn == nil {
		return []models.ItemRequest{}, nil
	}
	return m.findAllByRequesterFn(ctx, requesterID)
}

func (m *mockRequestRepo) FindAllByOthers(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	if m.findAllByOthersFn == nil {
		return []models.ItemRequest{}, nil
	}
	return m.findAllByOthersFn(ctx, requesterID)
}
