package service

import (
	"context"
	"fmt"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/repository"
)

var ErrCampNotFound = repository.ErrCampNotFound

type CampRepository interface {
	Create(ctx context.Context, camp domain.Camp) (domain.InsertResult, error)
	FindByID(ctx context.Context, id string) (domain.Camp, error)
	List(ctx context.Context, q domain.CampQuery) ([]domain.Camp, error)
	Count(ctx context.Context, search string) (int64, error)
	Update(ctx context.Context, id string, camp domain.Camp) (domain.UpdateResult, error)
	Delete(ctx context.Context, id string) (domain.DeleteResult, error)
	IncrementParticipantCount(ctx context.Context, id string) (domain.UpdateResult, error)
}

type CampService struct {
	repo CampRepository
}

func NewCampService(repo CampRepository) *CampService {
	return &CampService{
		repo: repo,
	}
}

func (s *CampService) CreateCamp(ctx context.Context, camp domain.Camp) (domain.InsertResult, error) {
	camp.ParticipantCount = 0

	result, err := s.repo.Create(ctx, camp)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return result, nil
}

func (s *CampService) GetCamp(ctx context.Context, id string) (domain.Camp, error) {
	camp, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Camp{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return camp, nil
}

func (s *CampService) ListCamps(ctx context.Context, q domain.CampQuery) ([]domain.Camp, error) {
	camps, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return camps, nil
}

func (s *CampService) CountCamps(ctx context.Context, search string) (int64, error) {
	count, err := s.repo.Count(ctx, search)
	if err != nil {
		return 0, fmt.Errorf("s.repo.Count -> %w", err)
	}

	return count, nil
}

func (s *CampService) PopularCamps(ctx context.Context) ([]domain.Camp, error) {
	return s.highlighted(ctx, domain.CampSortParticipantCount)
}

func (s *CampService) AffordableCamps(ctx context.Context) ([]domain.Camp, error) {
	return s.highlighted(ctx, domain.CampSortFeesAsc)
}

func (s *CampService) highlighted(ctx context.Context, sort domain.CampSort) ([]domain.Camp, error) {
	camps, err := s.repo.List(ctx, domain.CampQuery{
		Sort: sort,
		Page: domain.Page{Index: 0, Size: domain.HighlightedCampsLimit},
	})
	if err != nil {
		return nil, fmt.Errorf("s.repo.List -> %w", err)
	}

	return camps, nil
}

func (s *CampService) UpdateCamp(ctx context.Context, id string, camp domain.Camp) (domain.UpdateResult, error) {
	result, err := s.repo.Update(ctx, id, camp)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return result, nil
}

func (s *CampService) DeleteCamp(ctx context.Context, id string) (domain.DeleteResult, error) {
	result, err := s.repo.Delete(ctx, id)
	if err != nil {
		return domain.DeleteResult{}, fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return result, nil
}

// IncrementParticipantCount adds one to the camp counter. It is never decremented.
func (s *CampService) IncrementParticipantCount(ctx context.Context, id string) (domain.UpdateResult, error) {
	result, err := s.repo.IncrementParticipantCount(ctx, id)
	if err != nil {
		return domain.UpdateResult{}, fmt.Errorf("s.repo.IncrementParticipantCount -> %w", err)
	}

	return result, nil
}
