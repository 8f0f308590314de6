package services

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"time"

	appconfig "lunchbox-backend/internal/config"
	"lunchbox-backend/internal/timeutil"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// BackupService exports the day's packlist and the invoice ledger to an
// S3-compatible bucket (Cloudflare R2) so the kitchen and accounts teams
// have an offline copy if the API is down
type BackupService struct {
	cfg      *appconfig.Config
	packlist *PacklistService
	receipts *ReceiptService
	stopChan chan struct{}
}

func NewBackupService(cfg *appconfig.Config, packlist *PacklistService, receipts *ReceiptService) *BackupService {
	return &BackupService{
		cfg:      cfg,
		packlist: packlist,
		receipts: receipts,
		stopChan: make(chan struct{}),
	}
}

func (s *BackupService) client(ctx context.Context) (*s3.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.cfg.Backup.AccessKey,
			s.cfg.Backup.SecretKey,
			"",
		)),
		awsconfig.WithRegion(s.cfg.Backup.Region),
	)
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.cfg.Backup.Endpoint)
	}), nil
}

// RunExport performs a single export of tomorrow's packlist and the full
// invoice ledger
func (s *BackupService) RunExport() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("[Backup] Starting export...")

	client, err := s.client(ctx)
	if err != nil {
		log.Printf("[Backup] Failed to configure client: %v", err)
		return
	}

	// The kitchen packs tomorrow's boxes overnight
	date := timeutil.Now().AddDate(0, 0, 1).Format(timeutil.DateLayout)
	if p, err := s.packlist.Build(ctx, date); err != nil {
		log.Printf("[Backup] Failed to build packlist: %v", err)
	} else if data, err := PacklistCSV(p); err != nil {
		log.Printf("[Backup] Failed to render packlist CSV: %v", err)
	} else {
		s.upload(ctx, client, fmt.Sprintf("packlists/packlist_%s.csv", date), data)
	}

	if data, err := s.receipts.InvoicesCSV(ctx); err != nil {
		log.Printf("[Backup] Failed to render invoices CSV: %v", err)
	} else {
		key := fmt.Sprintf("invoices/invoices_%s.csv", timeutil.Now().Format("20060102_150405"))
		s.upload(ctx, client, key, data)
	}
}

func (s *BackupService) upload(ctx context.Context, client *s3.Client, key string, data []byte) {
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.cfg.Backup.Bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv"),
	})
	if err != nil {
		log.Printf("[Backup] Failed to upload %s: %v", key, err)
		return
	}
	log.Printf("[Backup] Uploaded %s (%d bytes)", key, len(data))
}

// Start runs the nightly export loop until Stop is called. The first
// export fires at the next 23:00 IST, then every 24h.
func (s *BackupService) Start() {
	if !s.cfg.Backup.Enabled {
		log.Println("[Backup] Disabled, export loop not started")
		return
	}

	go func() {
		for {
			now := timeutil.Now()
			next := time.Date(now.Year(), now.Month(), now.Day(), 23, 0, 0, 0, timeutil.IST)
			if !next.After(now) {
				next = next.AddDate(0, 0, 1)
			}

			select {
			case <-time.After(next.Sub(now)):
				s.RunExport()
			case <-s.stopChan:
				return
			}
		}
	}()
	log.Println("[Backup] Nightly export loop started")
}

// Stop terminates the export loop
func (s *BackupService) Stop() {
	close(s.stopChan)
}
