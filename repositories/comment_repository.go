package repositories

import (
	"context"

	"gin-shareit/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ICommentRepository interface {
	Create(ctx context.Context, comment models.Comment) (*models.Comment, error)
	FindByItemIDs(ctx context.Context, itemIDs []uint) ([]models.Comment, error)
}

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) ICommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment models.Comment) (*models.Comment, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&comment)
	if result.Error != nil {
		return nil, result.Error
	}
	var created models.Comment
	if err := r.db.WithContext(ctx).Preload("Author").First(&created, "id = ?", comment.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (r *CommentRepository) FindByItemIDs(ctx context.Context, itemIDs []uint) ([]models.Comment, error) {
	comments := []models.Comment{}
	if len(itemIDs) == 0 {
		return comments, nil
	}
	result := r.db.WithContext(ctx).Preload("Author").
		Where("item_id IN ?", itemIDs).
		Order("created").
		Order("id").
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}
