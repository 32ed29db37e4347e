package dto

import "gin-shareit/models"

type CreateUserInput struct {
	Name  string `json:"name" binding:"required,notblank"`
	Email string `json:"email" binding:"required,email"`
}

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email" binding:"omitempty,email"`
}

type UserResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserShortResponse はメールアドレスを含まない
type UserShortResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}

func NewUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

func NewUserShortResponse(u models.User) UserShortResponse {
	return UserShortResponse{ID: u.ID, Name: u.Name}
}
