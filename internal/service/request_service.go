package service

import (
	"context"
	"fmt"

	"github.com/AlexMarkGIT/shareit/internal/models"
	"github.com/AlexMarkGIT/shareit/internal/repository"
)

// RequestDetails couples an item request with the items offered in answer.
type RequestDetails struct {
	Request models.ItemRequest
	Items   []models.Item
}

type RequestService interface {
	Create(ctx context.Context, userID uint, description string) (*models.ItemRequest, error)
	GetAllByRequester(ctx context.Context, userID uint) ([]RequestDetails, error)
	GetAll(ctx context.Context, userID uint, from, size int) ([]RequestDetails, error)
	GetByID(ctx context.Context, userID, requestID uint) (*RequestDetails, error)
}

type requestService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
	}
}

func (s *requestService) Create(ctx context.Context, userID uint, description string) (*models.ItemRequest, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	request := &models.ItemRequest{
		RequesterID: user.ID,
		Description: description,
	}
	if err := s.requestRepo.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("create item request: %w", err)
	}
	return request, nil
}

func (s *requestService) GetAllByRequester(ctx context.Context, userID uint) ([]RequestDetails, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	requests, err := s.requestRepo.FindAllByRequester(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load requests of user %d: %w", userID, err)
	}
	return s.withItems(ctx, requests)
}

// GetAll lists other users' requests, newest first, paged the same way as
// booking lists.
func (s *requestService) GetAll(ctx context.Context, userID uint, from, size int) ([]RequestDetails, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	requests, err := s.requestRepo.FindAllByOthers(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("load requests: %w", err)
	}
	return s.withItems(ctx, paginate(requests, from, size))
}

func (s *requestService) GetByID(ctx context.Context, userID, requestID uint) (*RequestDetails, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		return nil, asNotFound(err, ErrUserNotFound)
	}

	request, err := s.requestRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, asNotFound(err, ErrRequestNotFound)
	}

	items, err := s.itemRepo.FindAllByRequest(ctx, request.ID)
	if err != nil {
		return nil, fmt.Errorf("load items of request %d: %w", requestID, err)
	}
	return &RequestDetails{Request: *request, Items: items}, nil
}

func (s *requestService) withItems(ctx context.Context, requests []models.ItemRequest) ([]RequestDetails, error) {
	detailed := make([]RequestDetails, 0, len(requests))
	for _, request := range requests {
		items, err := s.itemRepo.FindAllByRequest(ctx, request.ID)
		if err != nil {
			return nil, fmt.Errorf("load items of request %d: %w", request.ID, err)
		}
		detailed = append(detailed, RequestDetails{Request: request, Items: items})
	}
	return detailed, nil
}
