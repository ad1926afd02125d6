package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/repository"
)

type UserRepository interface {
	Create(ctx context.Context, user domain.User) (domain.CreateUserResult, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByID(ctx context.Context, id string) (domain.User, error)
	UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (domain.UpdateResult, error)
}

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{
		repo: repo,
	}
}

// Register stores a user on first sign-in. Self-registration always yields a Participant;
// organizer accounts are promoted in the store.
func (s *UserService) Register(ctx context.Context, user domain.User) (domain.CreateUserResult, error) {
	user.Role = domain.RoleParticipant

	result, err := s.repo.Create(ctx, user)
	if err != nil {
		return domain.CreateUserResult{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return result, nil
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return users, nil
}

func (s *UserService) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return user, nil
}

// FindRoleByEmail backs the organizer gate. It is called on every gated request.
func (s *UserService) FindRoleByEmail(ctx context.Context, email string) (domain.Role, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return user.Role, nil
}

// HasRole reports whether the user holds role. An unknown email is not an error.
func (s *UserService) HasRole(ctx context.Context, email string, role domain.Role) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return user.Role == role, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (domain.UpdateResult, error) {
	if patch.IsEmpty() {
		return domain.UpdateResult{}, ErrEmptyPatch
	}

	result, err := s.repo.UpdateProfile(ctx, id, patch)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("s.repo.UpdateProfile -> %w", err)
	}

	return result, nil
}

// UpdateOwnProfile is UpdateProfile restricted to the profile of actorEmail.
func (s *UserService) UpdateOwnProfile(ctx context.Context, actorEmail, id string, patch domain.ProfilePatch) (domain.UpdateResult, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if user.Email != actorEmail {
		return domain.UpdateResult{}, ErrNotOwner
	}

	return s.UpdateProfile(ctx, id, patch)
}
