package dto

import "gin-shareit/models"

type CreateCommentInput struct {
	Text string `json:"text" binding:"required,notblank"`
}

type CommentResponse struct {
	ID         uint     `json:"id"`
	Text       string   `json:"text"`
	AuthorName string   `json:"authorName"`
	Created    DateTime `json:"created"`
}

func NewCommentResponse(c models.Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID,
		Text:       c.Text,
		AuthorName: c.Author.Name,
		Created:    NewDateTime(c.Created),
	}
}

func NewCommentResponses(comments []models.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentResponse(c))
	}
	return out
}
