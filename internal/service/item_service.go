package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AlexMarkGIT/shareit/internal/models"
	"github.com/AlexMarkGIT/shareit/internal/repository"
)

// ItemDetails is an item as shown to a viewer. Last/next bookings are filled
// only when the viewer owns the item.
type ItemDetails struct {
	Item        models.Item
	LastBooking *models.Booking
	NextBooking *models.Booking
	Comments    []models.Comment
}

type ItemService interface {
	Create(ctx context.Context, ownerID uint, item *models.Item) (*models.Item, error)
	Update(ctx context.Context, itemID, userID uint, name, description *string, available *bool) (*models.Item, error)
	GetByID(ctx context.Context, itemID, userID uint) (*ItemDetails, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]ItemDetails, error)
	Search(ctx context.Context, text string) ([]models.Item, error)
	GetByRequest(ctx context.Context, requestID uint) ([]models.Item, error)
	CreateComment(ctx context.Context, itemID, authorID uint, text string) (*models.Comment, error)
}

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
	requestRepo repository.RequestRepository

	now func() time.Time
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
	requestRepo repository.RequestRepository,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
		requestRepo: requestRepo,
		now:         time.Now,
	}
}

func (s *itemService) Create(ctx context.Context, ownerID uint, item *models.Item) (*models.Item, error) {
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	if item.RequestID != nil {
		if _, err := s.requestRepo.FindByID(ctx, *item.RequestID); err != nil {
			return nil, asNotFound(err, ErrRequestNotFound)
		}
	}

	item.OwnerID = owner.ID
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// Update patches name, description and/or availability; owner only.
func (s *itemService) Update(ctx context.Context, itemID, userID uint, name, description *string, available *bool) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, asNotFound(err, ErrItemNotFound)
	}

	if err := requireOwner(userID, item); err != nil {
		return nil, err
	}

	if name != nil {
		item.Name = *name
	}
	if description != nil {
		item.Description = *description
	}
	if available != nil {
		item.Available = *available
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, fmt.Errorf("update item %d: %w", itemID, err)
	}
	return item, nil
}

func (s *itemService) GetByID(ctx context.Context, itemID, userID uint) (*ItemDetails, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, asNotFound(err, ErrItemNotFound)
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	details := &ItemDetails{Item: *item}
	if item.OwnerID == user.ID {
		if err := s.setLastNext(ctx, details); err != nil {
			return nil, err
		}
	}
	if err := s.setComments(ctx, details); err != nil {
		return nil, err
	}
	return details, nil
}

func (s *itemService) ListByOwner(ctx context.Context, ownerID uint) ([]ItemDetails, error) {
	owner, err := s.userRepo.FindByID(ctx, ownerID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	items, err := s.itemRepo.FindAllByOwner(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("load items of owner %d: %w", ownerID, err)
	}

	detailed := make([]ItemDetails, 0, len(items))
	for i := range items {
		details := ItemDetails{Item: items[i]}
		if err := s.setLastNext(ctx, &details); err != nil {
			return nil, err
		}
		if err := s.setComments(ctx, &details); err != nil {
			return nil, err
		}
		detailed = append(detailed, details)
	}
	return detailed, nil
}

func (s *itemService) Search(ctx context.Context, text string) ([]models.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []models.Item{}, nil
	}
	return s.itemRepo.Search(ctx, text)
}

func (s *itemService) GetByRequest(ctx context.Context, requestID uint) ([]models.Item, error) {
	return s.itemRepo.FindAllByRequest(ctx, requestID)
}

// CreateComment accepts a comment only from a user with an approved booking
// of the item that has already started.
func (s *itemService) CreateComment(ctx context.Context, itemID, authorID uint, text string) (*models.Comment, error) {
	author, err := s.userRepo.FindByID(ctx, authorID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, asNotFound(err, ErrItemNotFound)
	}

	bookings, err := s.bookingRepo.FindApprovedPastByBookerAndItem(ctx, author.ID, item.ID, s.now())
	if err != nil {
		return nil, fmt.Errorf("load bookings of booker %d for item %d: %w", authorID, itemID, err)
	}
	if len(bookings) == 0 {
		return nil, ErrNoFinishedBooking
	}

	comment := &models.Comment{
		ItemID:   item.ID,
		AuthorID: author.ID,
		Text:     text,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	comment.Author = author
	return comment, nil
}

// setLastNext picks, among approved bookings of the item, the one already
// started with the latest end and the upcoming one with the earliest end.
func (s *itemService) setLastNext(ctx context.Context, details *ItemDetails) error {
	bookings, err := s.bookingRepo.FindAllByItem(ctx, s.bookingRepo.GetDB(), details.Item.ID)
	if err != nil {
		return fmt.Errorf("load bookings of item %d: %w", details.Item.ID, err)
	}

	now := s.now()
	for i := range bookings {
		b := &bookings[i]
		if b.Status != models.StatusApproved {
			continue
		}
		switch {
		case b.Start.Before(now):
			if details.LastBooking == nil || b.End.After(details.LastBooking.End) {
				details.LastBooking = b
			}
		case b.Start.After(now):
			if details.NextBooking == nil || b.End.Before(details.NextBooking.End) {
				details.NextBooking = b
			}
		}
	}
	return nil
}

func (s *itemService) setComments(ctx context.Context, details *ItemDetails) error {
	comments, err := s.commentRepo.FindAllByItem(ctx, details.Item.ID)
	if err != nil {
		return fmt.Errorf("load comments of item %d: %w", details.Item.ID, err)
	}
	details.Comments = comments
	return nil
}
