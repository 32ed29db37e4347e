package clients

import (
	"context"
	"net/http"

	"gin-shareit/dto"
)

const requestsPath = "/requests"

type IItemRequestClient interface {
	Create(ctx context.Context, userID uint, input dto.CreateItemRequestInput) (*Response, error)
	FindOwn(ctx context.Context, userID uint, page dto.PageQuery) (*Response, error)
	FindOthers(ctx context.Context, userID uint, page dto.PageQuery) (*Response, error)
	FindByID(ctx context.Context, userID uint, requestID uint) (*Response, error)
}

type ItemRequestClient struct {
	base *BaseClient
}

func NewItemRequestClient(base *BaseClient) IItemRequestClient {
	return &ItemRequestClient{base: base}
}

func (c *ItemRequestClient) Create(ctx context.Context, userID uint, input dto.CreateItemRequestInput) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodPost, Path: requestsPath, UserID: userID, Body: input})
}

func (c *ItemRequestClient) FindOwn(ctx context.Context, userID uint, page dto.PageQuery) (*Response, error) {
	return c.base.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   requestsPath,
		UserID: userID,
		Query:  pageQuery(page.From, page.Size),
	})
}

func (c *ItemRequestClient) FindOthers(ctx context.Context, userID uint, page dto.PageQuery) (*Response, error) {
	return c.base.Do(ctx, Call{
		Method: http.MethodGet,
		Path:   requestsPath + "/all",
		UserID: userID,
		Query:  pageQuery(page.From, page.Size),
	})
}

func (c *ItemRequestClient) FindByID(ctx context.Context, userID uint, requestID uint) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodGet, Path: idPath(requestsPath, requestID), UserID: userID})
}
