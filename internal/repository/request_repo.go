package repository

import (
	"context"

	"github.com/AlexMarkGIT/shareit/internal/models"
	"gorm.io/gorm"
)

type RequestRepository interface {
	Create(ctx context.Context, request *models.ItemRequest) error
	FindByID(ctx context.Context, id uint) (*models.ItemRequest, error)
	FindAllByRequester(ctx context.Context, requesterID uint) ([]models.ItemRequest, error)
	FindAllByOthers(ctx context.Context, requesterID uint) ([]models.ItemRequest, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, request *models.ItemRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

func (r *requestRepository) FindByID(ctx context.Context, id uint) (*models.ItemRequest, error) {
	var request models.ItemRequest
	if err := r.db.WithContext(ctx).First(&request, id).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) FindAllByRequester(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepository) FindAllByOthers(ctx context.Context, requesterID uint) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	err := r.db.WithContext(ctx).
		Where("requester_id <> ?", requesterID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}
