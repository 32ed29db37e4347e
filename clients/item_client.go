package clients

import (
	"context"
	"net/http"

	"gin-shareit/dto"
)

const itemsPath = "/items"

type IItemClient interface {
	Create(ctx context.Context, userID uint, input dto.CreateItemInput) (*Response, error)
	Update(ctx context.Context, userID uint, itemID uint, input dto.UpdateItemInput) (*Response, error)
	FindByID(ctx context.Context, userID uint, itemID uint) (*Response, error)
	FindByOwner(ctx context.Context, userID uint, page dto.PageQuery) (*Response, error)
	Search(ctx context.Context, userID uint, query dto.SearchItemsQuery) (*Response, error)
	AddComment(ctx context.Context, userID uint, itemID uint, input dto.CreateCommentInput) (*Response, error)
}

type ItemClient struct {
	base *BaseClient
}

func NewItemClient(base *BaseClient) IItemClient {
	return &ItemClient{base: base}
}

func (c *ItemClient) Create(ctx context.Context, userID uint, input dto.CreateItemInput) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodPost, Path: itemsPath, UserID: userID, Body: input})
}

func (c *ItemClient) Update(ctx context.Context, userID uint, itemID uint, input dto.UpdateItemInput) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodPatch, Path: idPath(itemsPath, itemID), UserID: userID, Body: input})
}

func (c *ItemClient) FindByID(ctx context.Context, userID uint, itemID uint) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodGet, Path: idPath(itemsPath, itemID), UserID: userID})
}

func (c *ItemClient) FindByOwner(ctx context.Context, userID uint, page dto.PageQuery) (*Response, error) {
	return c.base.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   itemsPath,
		UserID: userID,
		Query:  pageQuery(page.From, page.Size),
	})
}

func (c *ItemClient) Search(ctx context.Context, userID uint, query dto.SearchItemsQuery) (*Response, error) {
	q := pageQuery(query.From, query.Size)
	q.Set("text", query.Text)
	return c.base.Do(ctx, Call{Method: http.MethodGet, Path: itemsPath + "/search", UserID: userID, Query: q})
}

func (c *ItemClient) AddComment(ctx context.Context, userID uint, itemID uint, input dto.CreateCommentInput) (*Response, error) {
	return c.base.Do(ctx, Call{
		Method: http.MethodPost,
		Path:   idPath(itemsPath, itemID) + "/comment",
		UserID: userID,
		Body:   input,
	})
}
