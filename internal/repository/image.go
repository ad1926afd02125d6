package repository

import (
	"context"
	"fmt"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/repository/dao"
)

type ImageDAO interface {
	Insert(ctx context.Context, img dao.GeneratedImage) (dao.InsertResult, error)
	FindByEmail(ctx context.Context, email string) ([]dao.GeneratedImage, error)
}

type ImageRepository struct {
	dao ImageDAO
}

func NewImageRepository(dao ImageDAO) *ImageRepository {
	return &ImageRepository{
		dao: dao,
	}
}

func (r *ImageRepository) Create(ctx context.Context, img domain.GeneratedImage) (domain.GeneratedImage, error) {
	result, err := r.dao.Insert(ctx, dao.GeneratedImage{
		Email:     img.Email,
		Name:      img.Name,
		Prompt:    img.Prompt,
		Category:  img.Category,
		ImageURL:  img.ImageURL,
		CreatedAt: img.CreatedAt,
	})
	if err != nil {
		return domain.GeneratedImage{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	img.ID = result.InsertedID.Hex()
	return img, nil
}

func (r *ImageRepository) FindByEmail(ctx context.Context, email string) ([]domain.GeneratedImage, error) {
	found, err := r.dao.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByEmail -> %w", err)
	}

	images := make([]domain.GeneratedImage, 0, len(found))
	for _, img := range found {
		images = append(images, domain.GeneratedImage{
			ID:        img.ID.Hex(),
			Email:     img.Email,
			Name:      img.Name,
			Prompt:    img.Prompt,
			Category:  img.Category,
			ImageURL:  img.ImageURL,
			CreatedAt: img.CreatedAt,
		})
	}

	return images, nil
}
