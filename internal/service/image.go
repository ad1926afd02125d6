package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/pkg/imagegen"
)

var ErrImageGenUnavailable = imagegen.ErrMissingAPIKey

type ImageRepository interface {
	Create(ctx context.Context, img domain.GeneratedImage) (domain.GeneratedImage, error)
	FindByEmail(ctx context.Context, email string) ([]domain.GeneratedImage, error)
}

type ImageGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ImageService struct {
	repo      ImageRepository
	generator ImageGenerator
}

func NewImageService(repo ImageRepository, generator ImageGenerator) *ImageService {
	return &ImageService{
		repo:      repo,
		generator: generator,
	}
}

// Generate renders and hosts an image for the prompt, then stores the record for actorEmail.
func (s *ImageService) Generate(ctx context.Context, actorEmail, name, category, prompt string) (domain.GeneratedImage, error) {
	url, err := s.generator.Generate(ctx, domain.ImagePrompt(category, prompt))
	if err != nil {
		return domain.GeneratedImage{}, fmt.Errorf("s.generator.Generate -> %w", err)
	}

	img, err := s.repo.Create(ctx, domain.GeneratedImage{
		Email:     actorEmail,
		Name:      name,
		Prompt:    prompt,
		Category:  category,
		ImageURL:  url,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return domain.GeneratedImage{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return img, nil
}

func (s *ImageService) ListImages(ctx context.Context, email string) ([]domain.GeneratedImage, error) {
	images, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByEmail -> %w", err)
	}

	return images, nil
}
