package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vietanh2810/medicamp-api/internal/domain"
)

func TestUserService_Register(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	repo.On("Create", ctx, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleParticipant && u.Email == "a@b.c"
	})).Return(domain.CreateUserResult{Created: false, Message: "user already exists"}, nil).Once()

	result, err := svc.Register(ctx, domain.User{Email: "a@b.c", Role: domain.RoleOrganizer})
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Nil(t, result.InsertedID)
	repo.AssertExpectations(t)
}

func TestUserService_HasRole(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	repo.On("FindByEmail", ctx, "org@x.io").Return(domain.User{Role: domain.RoleOrganizer}, nil)
	repo.On("FindByEmail", ctx, "ghost@x.io").Return(domain.User{}, ErrUserNotFound)
	repo.On("FindByEmail", ctx, "down@x.io").Return(domain.User{}, errors.New("connection reset"))

	ok, err := svc.HasRole(ctx, "org@x.io", domain.RoleOrganizer)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.HasRole(ctx, "org@x.io", domain.RoleParticipant)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.HasRole(ctx, "ghost@x.io", domain.RoleOrganizer)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = svc.HasRole(ctx, "down@x.io", domain.RoleOrganizer)
	assert.Error(t, err)
}

func TestUserService_FindRoleByEmail(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()

	repo.On("FindByEmail", ctx, "ghost@x.io").Return(domain.User{}, ErrUserNotFound)

	_, err := svc.FindRoleByEmail(ctx, "ghost@x.io")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserService_UpdateOwnProfile(t *testing.T) {
	repo := &mockUserRepo{}
	svc := NewUserService(repo)
	ctx := context.Background()
	patch := domain.ProfilePatch{Name: "New"}

	repo.On("FindByID", ctx, "u1").Return(domain.User{ID: "u1", Email: "me@x.io"}, nil)
	repo.On("UpdateProfile", ctx, "u1", patch).Return(domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil).Once()

	_, err := svc.UpdateOwnProfile(ctx, "other@x.io", "u1", patch)
	assert.ErrorIs(t, err, ErrNotOwner)

	_, err = svc.UpdateOwnProfile(ctx, "me@x.io", "u1", domain.ProfilePatch{})
	assert.ErrorIs(t, err, ErrEmptyPatch)

	result, err := svc.UpdateOwnProfile(ctx, "me@x.io", "u1", patch)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ModifiedCount)
	repo.AssertExpectations(t)
}
