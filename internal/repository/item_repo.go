package repository

import (
	"context"

	"github.com/AlexMarkGIT/shareit/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository interface {
	Create(ctx context.Context, item *models.Item) error
	Save(ctx context.Context, item *models.Item) error
	FindByID(ctx context.Context, id uint) (*models.Item, error)
	FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Item, error)
	FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Item, error)
	FindAllByRequest(ctx context.Context, requestID uint) ([]models.Item, error)
	Search(ctx context.Context, text string) ([]models.Item, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemRepository) Save(ctx context.Context, item *models.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemRepository) FindByID(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByIDForUpdate locks the item row, serializing concurrent booking
// attempts against the same item.
func (r *itemRepository) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uint) (*models.Item, error) {
	var item models.Item
	err := tx.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindAllByOwner(ctx context.Context, ownerID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) FindAllByRequest(ctx context.Context, requestID uint) ([]models.Item, error) {
	var items []models.Item
	err := r.db.WithContext(ctx).
		Where("request_id = ?", requestID).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Search(ctx context.Context, text string) ([]models.Item, error) {
	var items []models.Item
	pattern := "%" + text + "%"
	err := r.db.WithContext(ctx).
		Where("available = true AND (name ILIKE ? OR description ILIKE ?)", pattern, pattern).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
