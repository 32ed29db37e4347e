package clients

import (
	"context"
	"net/http"

	"gin-shareit/dto"
)

const usersPath = "/users"

type IUserClient interface {
	Create(ctx context.Context, input dto.CreateUserInput) (*Response, error)
	FindAll(ctx context.Context) (*Response, error)
	FindByID(ctx context.Context, userID uint) (*Response, error)
	Update(ctx context.Context, userID uint, input dto.UpdateUserInput) (*Response, error)
	Delete(ctx context.Context, userID uint) (*Response, error)
}

type UserClient struct {
	base *BaseClient
}

func NewUserClient(base *BaseClient) IUserClient {
	return &UserClient{base: base}
}

func (c *UserClient) Create(ctx context.Context, input dto.CreateUserInput) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodPost, Path: usersPath, Body: input})
}

func (c *UserClient) FindAll(ctx context.Context) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodGet, Path: usersPath})
}

func (c *UserClient) FindByID(ctx context.Context, userID uint) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodGet, Path: idPath(usersPath, userID)})
}

func (c *UserClient) Update(ctx context.Context, userID uint, input dto.UpdateUserInput) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodPatch, Path: idPath(usersPath, userID), Body: input})
}

func (c *UserClient) Delete(ctx context.Context, userID uint) (*Response, error) {
	return c.base.Do(ctx, Call{Method: http.MethodDelete, Path: idPath(usersPath, userID)})
}
