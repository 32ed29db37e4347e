package repositories

import (
	"context"
	"strings"

	"gin-shareit/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IItemRepository interface {
	Create(ctx context.Context, newItem models.Item) (*models.Item, error)
	FindByID(ctx context.Context, itemID uint) (*models.Item, error)
	FindByOwner(ctx context.Context, ownerID uint, page Page) ([]models.Item, error)
	Search(ctx context.Context, text string, page Page) ([]models.Item, error)
	FindByRequestIDs(ctx context.Context, requestIDs []uint) ([]models.Item, error)
	Update(ctx context.Context, itemID uint, updates map[string]interface{}) (*models.Item, error)
}

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) IItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, newItem models.Item) (*models.Item, error) {
	result := r.db.WithContext(ctx).Omit(clause.Associations).Create(&newItem)
	if result.Error != nil {
		return nil, result.Error
	}
	return r.FindByID(ctx, newItem.ID)
}

func (r *ItemRepository) FindByID(ctx context.Context, itemID uint) (*models.Item, error) {
	var item models.Item
	result := r.db.WithContext(ctx).Preload("Owner").First(&item, "id = ?", itemID)
	if result.Error != nil {
		return nil, result.Error
	}
	return &item, nil
}

func (r *ItemRepository) FindByOwner(ctx context.Context, ownerID uint, page Page) ([]models.Item, error) {
	var items []models.Item
	result := page.apply(r.db.WithContext(ctx).Preload("Owner").
		Where("owner_id = ?", ownerID).
		Order("id")).
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

// LIKE のワイルドカードを ! でエスケープする
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// Search は貸出可能かつ名前か説明に text を含むアイテムを返す（大文字小文字を区別しない）
// text 中の % と _ は文字どおりに扱う
func (r *ItemRepository) Search(ctx context.Context, text string, page Page) ([]models.Item, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(text)) + "%"
	var items []models.Item
	result := page.apply(r.db.WithContext(ctx).Preload("Owner").
		Where("available = ?", true).
		Where(r.db.Where("LOWER(name) LIKE ? ESCAPE '!'", pattern).
			Or("LOWER(description) LIKE ? ESCAPE '!'", pattern)).
		Order("id")).
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (r *ItemRepository) FindByRequestIDs(ctx context.Context, requestIDs []uint) ([]models.Item, error) {
	items := []models.Item{}
	if len(requestIDs) == 0 {
		return items, nil
	}
	result := r.db.WithContext(ctx).
		Where("request_id IN ?", requestIDs).
		Order("id").
		Find(&items)
	if result.Error != nil {
		return nil, result.Error
	}
	return items, nil
}

func (r *ItemRepository) Update(ctx context.Context, itemID uint, updates map[string]interface{}) (*models.Item, error) {
	if len(updates) > 0 {
		result := r.db.WithContext(ctx).Model(&models.Item{}).
			Where("id = ?", itemID).
			Updates(updates)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, gorm.ErrRecordNotFound
		}
	}
	return r.FindByID(ctx, itemID)
}
