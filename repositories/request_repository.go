package repositories

import (
	"context"

	"gin-shareit/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IItemRequestRepository interface {
	Create(ctx context.Context, request models.ItemRequest) (*models.ItemRequest, error)
	FindByID(ctx context.Context, requestID uint) (*models.ItemRequest, error)
	FindByRequestor(ctx context.Context, requestorID uint, page Page) ([]models.ItemRequest, error)
	FindOthers(ctx context.Context, requestorID uint, page Page) ([]models.ItemRequest, error)
}

type ItemRequestRepository struct {
	db *gorm.DB
}

func NewItemRequestRepository(db *gorm.DB) IItemRequestRepository {
	return &ItemRequestRepository{db: db}
}

func (r *ItemRequestRepository) Create(ctx context.Context, request models.ItemRequest) (*models.ItemRequest, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&request)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindByID(ctx, request.ID)
}

func (r *ItemRequestRepository) FindByID(ctx context.Context, requestID uint) (*models.ItemRequest, error) {
	var request models.ItemRequest
	result := r.db.WithContext(ctx).Preload("Requestor").First(&request, "id = ?", requestID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &request, nil
}

func (r *ItemRequestRepository) FindByRequestor(ctx context.Context, requestorID uint, page Page) ([]models.ItemRequest, error) {
	return r.find(ctx, page, "requestor_id = ?", requestorID)
}

func (r *ItemRequestRepository) FindOthers(ctx context.Context, requestorID uint, page Page) ([]models.ItemRequest, error) {
	return r.find(ctx, page, "requestor_id <> ?", requestorID)
}

// 新しい順。同時刻は id の降順
func (r *ItemRequestRepository) find(ctx context.Context, page Page, cond string, args ...interface{}) ([]models.ItemRequest, error) {
	var requests []models.ItemRequest
	result := page.apply(r.db.WithContext(ctx).Preload("Requestor").
		Where(cond, args...).
		Order("created DESC").
		Order("id DESC")).
		Find(&requests)
	if result.Error != nil {
		return nil, result.Error
	}
	return requests, nil
}
