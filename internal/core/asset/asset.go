// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package asset handles administrator image uploads to object storage.

Uploads feed the entry editor and the layout settings (logos, backgrounds).
The object store serves the files; this package only validates and forwards
them.
*/
package asset

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/groupdex/groupdex/internal/platform/apperr"
)

// MaxUploadBytes bounds a single uploaded file.
const MaxUploadBytes = 5 << 20

// Uploader is the outbound contract to object storage.
type Uploader interface {
	Upload(context context.Context, contentType string, body io.Reader) (string, error)
}

// Service contains the upload business logic.
type Service struct {
	uploader Uploader
	logger   *slog.Logger
}

// NewService creates an asset service instance.
func NewService(uploader Uploader, logger *slog.Logger) *Service {
	return &Service{
		uploader: uploader,
		logger:   logger,
	}
}

/*
Upload validates the file and stores it, returning the public URL.

Only images are accepted; the size limit is enforced by the handler via
http.MaxBytesReader before the body reaches this method.
*/
func (service *Service) Upload(context context.Context, contentType string, body io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", apperr.ValidationError("Only image uploads are allowed")
	}

	url, err := service.uploader.Upload(context, contentType, body)
	if err != nil {
		return "", apperr.Internal(err)
	}

	service.logger.Info("asset uploaded",
		slog.String("content_type", contentType),
		slog.String("url", url),
	)
	return url, nil
}
