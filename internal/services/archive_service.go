package services

import (
	"bytes"
	"context"
	"fmt"
	"log"

	appconfig "vente-backend/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ArchiveService uploads rendered invoice PDFs to S3-compatible object
// storage (R2). When archiving is disabled or misconfigured the service
// is a no-op; invoice creation never depends on it.
type ArchiveService struct {
	client *s3.Client
	bucket string
}

func NewArchiveService(cfg *appconfig.Config) *ArchiveService {
	if !cfg.Archive.Enabled {
		return &ArchiveService{}
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Archive.AccessKey,
			cfg.Archive.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Archive.Region),
	)
	if err != nil {
		log.Printf("[Archive] config failed, archiving disabled: %v", err)
		return &ArchiveService{}
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Archive.Endpoint)
	})

	return &ArchiveService{
		client: client,
		bucket: cfg.Archive.Bucket,
	}
}

// Enabled reports whether uploads will actually happen.
func (s *ArchiveService) Enabled() bool {
	return s.client != nil
}

// StoreInvoicePDF uploads a rendered invoice under invoices/<number>.pdf.
func (s *ArchiveService) StoreInvoicePDF(ctx context.Context, number string, pdf []byte) error {
	if s.client == nil {
		return nil
	}

	key := fmt.Sprintf("invoices/%s.pdf", number)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}
	return nil
}
