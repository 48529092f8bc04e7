package backup

import (
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ledgerTables are archived separately from full backups. The transaction
// history is the billing audit trail and gets its own retention schedule.
var ledgerTables = []string{"token_transactions", "token_grants"}

// Service handles ledger database backups
type Service struct {
	s3Client       *s3.Client
	bucket         string
	databaseURL    string
	localBackupDir string
	retentionDays  int
}

// Config holds backup configuration
type Config struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	S3Bucket           string
	DatabaseURL        string
	LocalBackupDir     string
	RetentionDays      int // Number of days to keep full backups
}

// NewService creates a new backup service
func NewService(cfg Config) (*Service, error) {
	awsCfg, err := config.LoadDefaultConfig(context.Background(),
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	if err := os.MkdirAll(cfg.LocalBackupDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create backup directory: %w", err)
	}

	return &Service{
		s3Client:       s3.NewFromConfig(awsCfg),
		bucket:         cfg.S3Bucket,
		databaseURL:    cfg.DatabaseURL,
		localBackupDir: cfg.LocalBackupDir,
		retentionDays:  cfg.RetentionDays,
	}, nil
}

// Result contains backup operation results
type Result struct {
	Filename     string
	FileSize     int64
	S3Key        string
	Duration     time.Duration
	UploadedToS3 bool
}

// CreateBackup dumps the full ledger database and uploads it to S3
func (s *Service) CreateBackup(ctx context.Context) (*Result, error) {
	timestamp := time.Now().UTC().Format("20060102-150405")
	filename := fmt.Sprintf("nexa-ledger-%s.sql.gz", timestamp)

	return s.runDump(ctx, filename, "backups/"+filename, nil)
}

// ArchiveTransactions dumps only the transaction and grant tables. Archives
// live under their own prefix and are never pruned by the retention cleanup.
func (s *Service) ArchiveTransactions(ctx context.Context) (*Result, error) {
	timestamp := time.Now().UTC().Format("20060102-150405")
	filename := fmt.Sprintf("nexa-ledger-audit-%s.sql.gz", timestamp)

	args := []string{"--data-only"}
	for _, table := range ledgerTables {
		args = append(args, "--table="+table)
	}

	return s.runDump(ctx, filename, "archive/"+filename, args)
}

func (s *Service) runDump(ctx context.Context, filename, s3Key string, extraArgs []string) (*Result, error) {
	start := time.Now()
	localPath := filepath.Join(s.localBackupDir, filename)

	file, err := os.Create(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create backup file: %w", err)
	}
	defer file.Close()

	gzipWriter := gzip.NewWriter(file)
	defer gzipWriter.Close()

	log.Printf("🔄 Starting ledger backup: %s", filename)
	args := append(extraArgs, s.databaseURL)
	cmd := exec.CommandContext(ctx, "pg_dump", args...)
	cmd.Stdout = gzipWriter
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		os.Remove(localPath)
		return nil, fmt.Errorf("pg_dump failed: %w", err)
	}

	if err := gzipWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close gzip writer: %w", err)
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat backup file: %w", err)
	}

	result := &Result{
		Filename: filename,
		FileSize: fileInfo.Size(),
		S3Key:    s3Key,
		Duration: time.Since(start),
	}

	if s.bucket != "" {
		if err := s.uploadToS3(ctx, localPath, result.S3Key); err != nil {
			return result, fmt.Errorf("backup created locally but S3 upload failed: %w", err)
		}
		result.UploadedToS3 = true
		log.Printf("✅ Backup uploaded to S3: s3://%s/%s", s.bucket, result.S3Key)

		if err := s.cleanupOldBackups(ctx); err != nil {
			log.Printf("⚠️  Failed to cleanup old backups: %v", err)
		}
	}

	log.Printf("✅ Backup completed: %s (size: %d bytes, duration: %s)",
		filename, result.FileSize, result.Duration)

	return result, nil
}

func (s *Service) uploadToS3(ctx context.Context, localPath, s3Key string) error {
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(s.bucket),
		Key:          aws.String(s3Key),
		Body:         file,
		StorageClass: types.StorageClassStandardIa, // Infrequent Access for backups
	})
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

// cleanupOldBackups deletes full backups older than the retention period.
// Audit archives under archive/ are kept indefinitely.
func (s *Service) cleanupOldBackups(ctx context.Context) error {
	if s.retentionDays <= 0 {
		return nil
	}

	cutoffDate := time.Now().UTC().AddDate(0, 0, -s.retentionDays)

	result, err := s.s3Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String("backups/"),
	})
	if err != nil {
		return fmt.Errorf("failed to list S3 objects: %w", err)
	}

	var deleted int
	for _, obj := range result.Contents {
		if obj.LastModified.Before(cutoffDate) {
			_, err := s.s3Client.DeleteObject(ctx, &s3.DeleteObjectInput{
				Bucket: aws.String(s.bucket),
				Key:    obj.Key,
			})
			if err != nil {
				log.Printf("⚠️  Failed to delete old backup %s: %v", *obj.Key, err)
				continue
			}
			deleted++
			log.Printf("🗑️  Deleted old backup: %s (age: %d days)",
				*obj.Key, int(time.Since(*obj.LastModified).Hours()/24))
		}
	}

	if deleted > 0 {
		log.Printf("✅ Cleaned up %d old backups (retention: %d days)", deleted, s.retentionDays)
	}

	return nil
}

// Info describes one stored backup
type Info struct {
	Key          string
	Size         int64
	LastModified time.Time
	Age          time.Duration
}

// ListBackups lists all full backups in S3
func (s *Service) ListBackups(ctx context.Context) ([]Info, error) {
	if s.bucket == "" {
		return nil, fmt.Errorf("S3 bucket not configured")
	}

	result, err := s.s3Client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String("backups/"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list S3 objects: %w", err)
	}

	backups := make([]Info, 0, len(result.Contents))
	for _, obj := range result.Contents {
		backups = append(backups, Info{
			Key:          *obj.Key,
			Size:         *obj.Size,
			LastModified: *obj.LastModified,
			Age:          time.Since(*obj.LastModified),
		})
	}

	return backups, nil
}

// RestoreBackup downloads a backup from S3 and restores it with psql
func (s *Service) RestoreBackup(ctx context.Context, s3Key string) error {
	log.Printf("🔄 Downloading backup from S3: %s", s3Key)
	result, err := s.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s3Key),
	})
	if err != nil {
		return fmt.Errorf("failed to download from S3: %w", err)
	}
	defer result.Body.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(result.Body); err != nil {
		return fmt.Errorf("failed to read backup data: %w", err)
	}

	gzipReader, err := gzip.NewReader(&buf)
	if err != nil {
		return fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer gzipReader.Close()

	log.Printf("🔄 Restoring ledger database from backup...")
	cmd := exec.CommandContext(ctx, "psql", s.databaseURL)
	cmd.Stdin = gzipReader
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("psql restore failed: %w", err)
	}

	log.Printf("✅ Ledger database restored from: %s", s3Key)
	return nil
}
