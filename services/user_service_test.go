package services

import (
	"context"
	"testing"
	"time"

	"gin-shareit/dto"
	"gin-shareit/models"
	"gin-shareit/repositories"

	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created := f.user(t, "alice")
	assert.Equal(t, "alice@example.com", created.Email)

	found, err := f.users.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, *found)

	_, err = f.users.FindByID(ctx, 999)
	assert.Equal(t, CodeNotFound, apiCode(t, err))
}

func TestUserService_DuplicateEmailIsInvalid(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.user(t, "alice")
	bob := f.user(t, "bob")

	_, err := f.users.Create(ctx, dto.CreateUserInput{Name: "alice2", Email: "alice@example.com"})
	assert.Equal(t, CodeInvalidArgument, apiCode(t, err))

	_, err = f.users.Update(ctx, bob.ID, dto.UpdateUserInput{Email: strPtr("alice@example.com")})
	assert.Equal(t, CodeInvalidArgument, apiCode(t, err))
}

func TestUserService_UpdateInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")

	// キャッシュに載せる
	_, err := f.users.Require(ctx, alice.ID)
	require.NoError(t, err)

	updated, err := f.users.Update(ctx, alice.ID, dto.UpdateUserInput{Name: strPtr("alicia")})
	require.NoError(t, err)
	assert.Equal(t, "alicia", updated.Name)
	assert.Equal(t, "alice@example.com", updated.Email)

	cached, err := f.users.Require(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "alicia", cached.Name)

	_, err = f.users.Update(ctx, 999, dto.UpdateUserInput{Name: strPtr("x")})
	assert.Equal(t, CodeNotFound, apiCode(t, err))
}

func TestUserService_DeleteInvalidatesCache(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")

	_, err := f.users.Require(ctx, alice.ID)
	require.NoError(t, err)

	require.NoError(t, f.users.Delete(ctx, alice.ID))
	_, err = f.users.Require(ctx, alice.ID)
	assert.Equal(t, CodeNotFound, apiCode(t, err))

	assert.Equal(t, CodeNotFound, apiCode(t, f.users.Delete(ctx, alice.ID)))
}

// deletingUserRepository は最初の FindByID の直後に afterFind を一度だけ呼ぶ
type deletingUserRepository struct {
	repositories.IUserRepository
	afterFind func()
}

func (r *deletingUserRepository) FindByID(ctx context.Context, userID uint) (*models.User, error) {
	user, err := r.IUserRepository.FindByID(ctx, userID)
	if hook := r.afterFind; hook != nil {
		r.afterFind = nil
		hook()
	}
	return user, err
}

func TestUserService_DeleteDuringLookupIsNotCached(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	alice := f.user(t, "alice")

	repository := &deletingUserRepository{IUserRepository: repositories.NewUserRepository(f.db)}
	users := NewUserService(repository, cache.New(time.Minute, time.Minute))
	repository.afterFind = func() {
		require.NoError(t, users.Delete(ctx, alice.ID))
	}

	// 読み込みは削除前の行を返すが、キャッシュには残らない
	_, err := users.Require(ctx, alice.ID)
	require.NoError(t, err)

	_, err = users.Require(ctx, alice.ID)
	assert.Equal(t, CodeNotFound, apiCode(t, err))
}

func TestUserService_FindAll(t *testing.T) {
	f := newFixture(t)
	alice := f.user(t, "alice")
	bob := f.user(t, "bob")

	users, err := f.users.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []dto.UserResponse{alice, bob}, users)
}
