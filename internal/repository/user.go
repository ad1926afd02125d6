package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/repository/dao"
)

var (
	ErrUserEmailExists = dao.ErrUserEmailExists
	ErrUserNotFound    = dao.ErrUserNotFound
	ErrInvalidID       = dao.ErrInvalidID
)

type UserDAO interface {
	InsertIfAbsent(ctx context.Context, user dao.User) (primitive.ObjectID, bool, error)
	FindAll(ctx context.Context) ([]dao.User, error)
	FindByEmail(ctx context.Context, email string) (dao.User, error)
	FindByID(ctx context.Context, id string) (dao.User, error)
	UpdateProfile(ctx context.Context, id string, patch dao.User) (dao.UpdateResult, error)
	Count(ctx context.Context) (int64, error)
}

type UserRepository struct {
	dao UserDAO
}

func NewUserRepository(dao UserDAO) *UserRepository {
	return &UserRepository{
		dao: dao,
	}
}

func (r *UserRepository) Create(ctx context.Context, user domain.User) (domain.CreateUserResult, error) {
	id, created, err := r.dao.InsertIfAbsent(ctx, dao.User{
		Email:   user.Email,
		Name:    user.Name,
		Image:   user.Image,
		Role:    string(user.Role),
		Contact: user.Contact,
	})
	if err != nil {
		return domain.CreateUserResult{}, fmt.Errorf("r.dao.InsertIfAbsent -> %w", err)
	}

	if !created {
		return domain.CreateUserResult{Created: false, InsertedID: nil, Message: ErrUserEmailExists.Error()}, nil
	}

	hex := id.Hex()
	return domain.CreateUserResult{Created: true, InsertedID: &hex}, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	users := make([]domain.User, 0, len(found))
	for _, u := range found {
		users = append(users, r.daoToDomain(u))
	}

	return users, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (domain.UpdateResult, error) {
	result, err := r.dao.UpdateProfile(ctx, id, dao.User{
		Name:    patch.Name,
		Image:   patch.Image,
		Contact: patch.Contact,
	})
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("r.dao.UpdateProfile -> %w", err)
	}

	return updateToDomain(result), nil
}

func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.dao.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("r.dao.Count -> %w", err)
	}

	return count, nil
}

// daoToDomain maps a stored user. A role outside the known set reads as Participant so it
// never grants organizer rights.
func (r *UserRepository) daoToDomain(u dao.User) domain.User {
	role := domain.Role(u.Role)
	if !role.IsValid() {
		role = domain.RoleParticipant
	}

	return domain.User{
		ID:        u.ID.Hex(),
		Email:     u.Email,
		Name:      u.Name,
		Image:     u.Image,
		Role:      role,
		Contact:   u.Contact,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
