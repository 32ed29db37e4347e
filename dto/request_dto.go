package dto

import "gin-shareit/models"

type CreateItemRequestInput struct {
	Description string `json:"description" binding:"required,notblank"`
}

type ItemRequestResponse struct {
	ID          uint         `json:"id"`
	Description string       `json:"description"`
	Requestor   UserResponse `json:"requestor"`
	Created     DateTime     `json:"created"`
}

type ItemRequestWithItemsResponse struct {
	ID          uint                     `json:"id"`
	Description string                   `json:"description"`
	Created     DateTime                 `json:"created"`
	Items       []ItemForRequestResponse `json:"items"`
}

func NewItemRequestResponse(r models.ItemRequest) ItemRequestResponse {
	return ItemRequestResponse{
		ID:          r.ID,
		Description: r.Description,
		Requestor:   NewUserResponse(r.Requestor),
		Created:     NewDateTime(r.Created),
	}
}

func NewItemRequestWithItemsResponse(r models.ItemRequest, items []models.Item) ItemRequestWithItemsResponse {
	out := ItemRequestWithItemsResponse{
		ID:          r.ID,
		Description: r.Description,
		Created:     NewDateTime(r.Created),
		Items:       make([]ItemForRequestResponse, 0, len(items)),
	}
	for _, item := range items {
		out.Items = append(out.Items, NewItemForRequestResponse(item))
	}
	return out
}
