// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package preview supports the back-office entry editor with link metadata
lookup and cover-image generation.

Both capabilities call external APIs and are administrator-only tooling;
neither is on the public submission path.
*/
package preview

import (
	"context"
	"log/slog"

	"github.com/groupdex/groupdex/internal/platform/validate"
)

// LinkPreview is the metadata scraped for an invite link.
type LinkPreview struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// Fetcher looks up metadata for a URL.
type Fetcher interface {
	Fetch(context context.Context, url string) (*LinkPreview, error)
}

// Generator produces a cover image from entry text and returns its public URL.
type Generator interface {
	Generate(context context.Context, title, description string) (string, error)
}

// Service wires the two capabilities behind validation.
type Service struct {
	fetcher   Fetcher
	generator Generator
	logger    *slog.Logger
}

// NewService creates a preview service instance.
func NewService(fetcher Fetcher, generator Generator, logger *slog.Logger) *Service {
	return &Service{
		fetcher:   fetcher,
		generator: generator,
		logger:    logger,
	}
}

// Fetch looks up metadata for the given absolute URL.
func (service *Service) Fetch(context context.Context, url string) (*LinkPreview, error) {
	validator := validate.New().
		Required("url", url).
		URL("url", url)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	preview, err := service.fetcher.Fetch(context, url)
	if err != nil {
		return nil, err
	}

	service.logger.Info("link preview fetched", slog.String("url", url))
	return preview, nil
}

// Generate produces a cover image for the given entry text.
func (service *Service) Generate(context context.Context, title, description string) (string, error) {
	validator := validate.New().
		Required("title", title).
		Required("description", description)
	if err := validator.Err(); err != nil {
		return "", err
	}

	imageURL, err := service.generator.Generate(context, title, description)
	if err != nil {
		return "", err
	}

	service.logger.Info("cover image generated", slog.String("image_url", imageURL))
	return imageURL, nil
}
