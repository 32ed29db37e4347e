package dto

import "gin-shareit/models"

type CreateItemInput struct {
	Name        string `json:"name" binding:"required,notblank"`
	Description string `json:"description" binding:"required,notblank"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *uint  `json:"requestId" binding:"omitempty,min=1"`
}

type UpdateItemInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *uint   `json:"requestId" binding:"omitempty,min=1"`
}

type SearchItemsQuery struct {
	Text string `form:"text"`
	PageQuery
}

type ItemResponse struct {
	ID          uint              `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Available   bool              `json:"available"`
	Owner       UserShortResponse `json:"owner"`
	RequestID   *uint             `json:"requestId"`
}

// ItemDetailResponse は直近・次回の予約とコメントを含む
type ItemDetailResponse struct {
	ItemResponse
	LastBooking *BookingShortResponse `json:"lastBooking"`
	NextBooking *BookingShortResponse `json:"nextBooking"`
	Comments    []CommentResponse     `json:"comments"`
}

type ItemForRequestResponse struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	RequestID   uint   `json:"requestId"`
}

func NewItemResponse(item models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
		Owner:       NewUserShortResponse(item.Owner),
		RequestID:   item.RequestID,
	}
}

func NewItemResponses(items []models.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, NewItemResponse(item))
	}
	return out
}

func NewItemDetailResponse(item models.Item) ItemDetailResponse {
	return ItemDetailResponse{
		ItemResponse: NewItemResponse(item),
		Comments:     []CommentResponse{},
	}
}

func NewItemForRequestResponse(item models.Item) ItemForRequestResponse {
	out := ItemForRequestResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Available:   item.Available,
	}
	if item.RequestID != nil {
		out.RequestID = *item.RequestID
	}
	return out
}
