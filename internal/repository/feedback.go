package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/repository/dao"
)

type FeedbackDAO interface {
	Insert(ctx context.Context, f dao.Feedback) (dao.InsertResult, error)
	FindAll(ctx context.Context, limit int64) ([]dao.Feedback, error)
	Summary(ctx context.Context, latest int64) (dao.FeedbackSummary, error)
}

type FeedbackRepository struct {
	dao FeedbackDAO
}

func NewFeedbackRepository(dao FeedbackDAO) *FeedbackRepository {
	return &FeedbackRepository{
		dao: dao,
	}
}

func (r *FeedbackRepository) Create(ctx context.Context, f domain.Feedback) (domain.InsertResult, error) {
	result, err := r.dao.Insert(ctx, dao.Feedback{
		Email:    f.Email,
		Name:     f.Name,
		Image:    f.Image,
		Rating:   f.Rating,
		Feedback: f.Feedback,
		CampName: f.CampName,
		Date:     f.Date,
	})
	if err != nil {
		return domain.InsertResult{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return insertToDomain(result), nil
}

func (r *FeedbackRepository) FindAll(ctx context.Context) ([]domain.Feedback, error) {
	found, err := r.dao.FindAll(ctx, 0)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	return r.daoSliceToDomain(found), nil
}

func (r *FeedbackRepository) Summary(ctx context.Context, latest int64) (domain.FeedbackSummary, error) {
	summary, err := r.dao.Summary(ctx, latest)
	if err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("r.dao.Summary -> %w", err)
	}

	return domain.FeedbackSummary{
		Count:         summary.Count,
		AverageRating: summary.AverageRating,
		Ratings:       summary.Ratings,
		Latest:        r.daoSliceToDomain(summary.Latest),
	}, nil
}

func (r *FeedbackRepository) daoSliceToDomain(found []dao.Feedback) []domain.Feedback {
	feedbacks := make([]domain.Feedback, 0, len(found))
	for _, f := range found {
		feedbacks = append(feedbacks, domain.Feedback{
			ID:       f.ID.Hex(),
			Email:    f.Email,
			Name:     f.Name,
			Image:    f.Image,
			Rating:   f.Rating,
			Feedback: f.Feedback,
			CampName: f.CampName,
			Date:     f.Date,
		})
	}

	return feedbacks
}
