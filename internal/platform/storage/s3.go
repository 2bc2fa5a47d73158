// Copyright (c) 2026 Groupdex. All rights reserved.

/*
Package storage provides an S3-compatible object storage client used for
entry image uploads.

It targets Cloudflare R2 / MinIO style deployments: a custom endpoint with
static credentials and a public base URL from which uploaded objects are
served. The bucket itself is provisioned out of band.
*/
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/groupdex/groupdex/pkg/uuid"
)

// Uploader stores objects in a single bucket and resolves public URLs.
type Uploader struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
	logger        *slog.Logger
}

// Options holds the connection settings for the object store.
type Options struct {
	Bucket        string
	Region        string
	Endpoint      string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string
}

// NewUploader constructs an S3 client against the configured endpoint.
func NewUploader(ctx context.Context, opts Options, logger *slog.Logger) (*Uploader, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(opts.Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			opts.AccessKey,
			opts.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("storage: failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		// Path-style addressing is required by MinIO and most self-hosted stores.
		o.UsePathStyle = true
	})

	logger.Info("object storage configured",
		slog.String("bucket", opts.Bucket),
		slog.String("endpoint", opts.Endpoint),
	)

	return &Uploader{
		client:        client,
		bucket:        opts.Bucket,
		publicBaseURL: strings.TrimRight(opts.PublicBaseURL, "/"),
		logger:        logger,
	}, nil
}

// Upload stores the body under a date-partitioned random key and returns the
// publicly resolvable URL of the object.
func (uploader *Uploader) Upload(ctx context.Context, contentType string, body io.Reader) (string, error) {
	key := randomKey()

	_, err := uploader.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(uploader.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("storage: put object failed: %w", err)
	}

	return uploader.publicBaseURL + "/" + key, nil
}

// randomKey builds a date-partitioned object key so that bucket listings
// stay navigable as volume grows.
func randomKey() string {
	now := time.Now().UTC()
	return fmt.Sprintf("uploads/%d/%02d/%s", now.Year(), int(now.Month()), uuid.New())
}
