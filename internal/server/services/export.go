package services

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/gophvault/internal/common"
	"github.com/dmitrijs2005/gophvault/internal/logging"
	"github.com/dmitrijs2005/gophvault/internal/models"
	sc "github.com/dmitrijs2005/gophvault/internal/server/config"
	"github.com/dmitrijs2005/gophvault/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// Snapshot is the exported document. It holds only what the server already
// stores, so it is as opaque as the database rows.
type Snapshot struct {
	AccountID  string         `json:"accountId"`
	ExportedAt time.Time      `json:"exportedAt"`
	Entries    []models.Entry `json:"entries"`
}

// Export describes an uploaded snapshot.
type Export struct {
	Key       string
	URL       string
	ExpiresAt time.Time
}

// ExportService uploads vault snapshots to S3-compatible storage and hands
// out short-lived download links.
type ExportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
	config      *sc.Config
	now         func() time.Time
}

func NewExportService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger, cfg *sc.Config) *ExportService {
	return &ExportService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "export_service"),
		config:      cfg,
		now:         time.Now,
	}
}

func exportKey(accountID string, d time.Time) string {
	return fmt.Sprintf("exports/%s/%d/%02d/%02d/%s.json", accountID, d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *ExportService) getClient(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

// Export uploads the account's current entries and returns a presigned GET
// link valid for the configured export link duration.
func (s *ExportService) Export(ctx context.Context, accountID string) (*Export, error) {
	list, err := s.repomanager.Entries(s.db).List(ctx, accountID)
	if err != nil {
		s.logger.Error(ctx, "export list failed", common.AccountIDKey, accountID, "error", err)
		return nil, common.ErrorInternal
	}
	if list == nil {
		list = []models.Entry{}
	}

	now := s.now().UTC()
	body, err := json.Marshal(Snapshot{AccountID: accountID, ExportedAt: now, Entries: list})
	if err != nil {
		return nil, common.ErrorInternal
	}

	client, err := s.getClient(ctx)
	if err != nil {
		s.logger.Error(ctx, "s3 client failed", "error", err)
		return nil, common.ErrStoreUnavailable
	}

	bucket := s.config.S3Bucket
	key := exportKey(accountID, now)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		s.logger.Error(ctx, "export upload failed", "object", key, "error", err)
		return nil, common.ErrStoreUnavailable
	}

	ttl := s.config.ExportLinkValidityDuration
	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ttl))
	if err != nil {
		s.logger.Error(ctx, "export presign failed", "object", key, "error", err)
		return nil, common.ErrStoreUnavailable
	}

	s.logger.Info(ctx, "vault exported", common.AccountIDKey, accountID, "entries", len(list), "object", key)
	return &Export{Key: key, URL: req.URL, ExpiresAt: now.Add(ttl)}, nil
}
