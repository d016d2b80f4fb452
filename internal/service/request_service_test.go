package service

import (
	"context"
	"testing"

	"github.com/AlexMarkGIT/shareit/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRequestService(requestRepo *mockRequestRepo, userRepo *mockUserRepo, itemRepo *mockItemRepo) RequestService {
	return NewRequestService(requestRepo, userRepo, itemRepo)
}

func TestRequestCreate(t *testing.T) {
	repo := &mockRequestRepo{
		createFn: func(ctx context.Context, request *models.ItemRequest) error {
			request.ID = 7
			return nil
		},
	}
	svc := newRequestService(repo, userRepoWith(&models.User{ID: 2}), &mockItemRepo{})

	request, err := svc.Create(context.Background(), 2, "need a drill")

	require.NoError(t, err)
	assert.Equal(t, uint(7), request.ID)
	assert.Equal(t, uint(2), request.RequesterID)
}

func TestRequestCreate_UserMissing(t *testing.T) {
	svc := newRequestService(&mockRequestRepo{}, &mockUserRepo{}, &mockItemRepo{})

	_, err := svc.Create(context.Background(), 2, "need a drill")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestRequestGetAll_PagesOthersRequests(t *testing.T) {
	repo := &mockRequestRepo{
		findAllByOthersFn: func(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
			return []models.ItemRequest{{ID: 3}, {ID: 2}, {ID: 1}}, nil
		},
	}
	itemRepo := &mockItemRepo{
		findAllByRequestFn: func(ctx context.Context, requestID uint) ([]models.Item, error) {
			if requestID == 2 {
				return []models.Item{{ID: 10, RequestID: &requestID}}, nil
			}
			return []models.Item{}, nil
		},
	}
	svc := newRequestService(repo, userRepoWith(&models.User{ID: 2}), itemRepo)

	details, err := svc.GetAll(context.Background(), 2, 1, 1)

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, uint(2), details[0].Request.ID)
	require.Len(t, details[0].Items, 1)
	assert.Equal(t, uint(10), details[0].Items[0].ID)
}

func TestRequestGetByID_NotFound(t *testing.T) {
	svc := newRequestService(&mockRequestRepo{}, userRepoWith(&models.User{ID: 2}), &mockItemRepo{})

	_, err := svc.GetByID(context.Background(), 2, 99)
	assert.ErrorIs(t, err, ErrRequestNotFound)
}

func TestRequestGetAllByRequester(t *testing.T) {
	repo := &mockRequestRepo{
		findAllByRequesterFn: func(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
			return []models.ItemRequest{{ID: 4, RequesterID: requesterID}}, nil
		},
	}
	svc := newRequestService(repo, userRepoWith(&models.User{ID: 2}), &mockItemRepo{})

	details, err := svc.GetAllByRequester(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, details, 1)
	assert.Equal(t, uint(4), details[0].Request.ID)
	assert.Empty(t, details[0].Items)
}
