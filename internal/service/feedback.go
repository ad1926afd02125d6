package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/medicamp-api/internal/domain"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f domain.Feedback) (domain.InsertResult, error)
	FindAll(ctx context.Context) ([]domain.Feedback, error)
	Summary(ctx context.Context, latest int64) (domain.FeedbackSummary, error)
}

type FeedbackService struct {
	repo FeedbackRepository
}

func NewFeedbackService(repo FeedbackRepository) *FeedbackService {
	return &FeedbackService{
		repo: repo,
	}
}

func (s *FeedbackService) CreateFeedback(ctx context.Context, actorEmail string, f domain.Feedback) (domain.InsertResult, error) {
	f.Email = actorEmail
	f.Date = time.Now().UTC()

	result, err := s.repo.Create(ctx, f)
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return result, nil
}

func (s *FeedbackService) ListFeedbacks(ctx context.Context) ([]domain.Feedback, error) {
	feedbacks, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return feedbacks, nil
}

func (s *FeedbackService) Summary(ctx context.Context) (domain.FeedbackSummary, error) {
	summary, err := s.repo.Summary(ctx, domain.LatestFeedbackLimit)
	if err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("s.repo.Summary -> %w", err)
	}

	return summary, nil
}
