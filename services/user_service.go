package services

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"gin-shareit/dto"
	"gin-shareit/models"
	"gin-shareit/repositories"

	"github.com/patrickmn/go-cache"
	"gorm.io/gorm"
)

type IUserService interface {
	Create(ctx context.Context, input dto.CreateUserInput) (*dto.UserResponse, error)
	FindByID(ctx context.Context, userID uint) (*dto.UserResponse, error)
	FindAll(ctx context.Context) ([]dto.UserResponse, error)
	Update(ctx context.Context, userID uint, input dto.UpdateUserInput) (*dto.UserResponse, error)
	Delete(ctx context.Context, userID uint) error
	// Require は存在しないユーザーなら NotFound を返す。結果はキャッシュされる
	Require(ctx context.Context, userID uint) (*models.User, error)
}

type UserService struct {
	repository repositories.IUserRepository
	cache      *cache.Cache

	// 更新・削除のたびに進める。読み込み中に変わったらキャッシュしない
	mu         sync.Mutex
	generation uint64
}

func NewUserService(repository repositories.IUserRepository, userCache *cache.Cache) IUserService {
	return &UserService{repository: repository, cache: userCache}
}

func (s *UserService) Create(ctx context.Context, input dto.CreateUserInput) (*dto.UserResponse, error) {
	user, err := s.repository.Create(ctx, models.User{Name: input.Name, Email: input.Email})
	if err != nil {
		return nil, userError(err, 0, input.Email)
	}
	res := dto.NewUserResponse(*user)
	return &res, nil
}

func (s *UserService) FindByID(ctx context.Context, userID uint) (*dto.UserResponse, error) {
	user, err := s.Require(ctx, userID)
	if err != nil {
		return nil, err
	}
	res := dto.NewUserResponse(*user)
	return &res, nil
}

func (s *UserService) FindAll(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponses(users), nil
}

func (s *UserService) Update(ctx context.Context, userID uint, input dto.UpdateUserInput) (*dto.UserResponse, error) {
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name_user"] = *input.Name
	}
	var email string
	if input.Email != nil {
		email = *input.Email
		updates["email"] = email
	}

	user, err := s.repository.Update(ctx, userID, updates)
	if err != nil {
		return nil, userError(err, userID, email)
	}
	s.invalidate(userID)

	res := dto.NewUserResponse(*user)
	return &res, nil
}

func (s *UserService) Delete(ctx context.Context, userID uint) error {
	if err := s.repository.Delete(ctx, userID); err != nil {
		return userError(err, userID, "")
	}
	s.invalidate(userID)
	return nil
}

func (s *UserService) Require(ctx context.Context, userID uint) (*models.User, error) {
	key := cacheKey(userID)
	if cached, ok := s.cache.Get(key); ok {
		user := cached.(models.User)
		return &user, nil
	}

	s.mu.Lock()
	generation := s.generation
	s.mu.Unlock()

	user, err := s.repository.FindByID(ctx, userID)
	if err != nil {
		return nil, userError(err, userID, "")
	}

	s.mu.Lock()
	if s.generation == generation {
		s.cache.SetDefault(key, *user)
	}
	s.mu.Unlock()
	return user, nil
}

func (s *UserService) invalidate(userID uint) {
	s.mu.Lock()
	s.generation++
	s.cache.Delete(cacheKey(userID))
	s.mu.Unlock()
}

func cacheKey(userID uint) string {
	return "user:" + strconv.FormatUint(uint64(userID), 10)
}

func userError(err error, userID uint, email string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFoundf("user %d not found", userID)
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrInvalidf("email %s is already in use", email)
	default:
		return err
	}
}
