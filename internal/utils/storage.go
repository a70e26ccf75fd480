package utils

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/devnolife/sakti-certify/internal/config"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type StorageService struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
}

const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// Allowed content types untuk file template
var AllowedTemplateTypes = map[string]string{
	DocxContentType:            ".docx",
	"application/octet-stream": ".docx", // beberapa browser kirim docx tanpa tipe spesifik
}

const MaxFileSize = 10 * 1024 * 1024 // 10 MB

func NewStorageService(cfg *config.MinIOConfig) (*StorageService, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.User, cfg.Password, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	// Pastikan bucket ada
	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		if err := client.MakeBucket(ctx, cfg.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	return &StorageService{
		client:   client,
		bucket:   cfg.Bucket,
		endpoint: fmt.Sprintf("%s://%s", scheme, cfg.Endpoint),
		useSSL:   cfg.UseSSL,
	}, nil
}

// UploadTemplate simpan binary template DOCX dan kembalikan object key-nya
func (s *StorageService) UploadTemplate(ctx context.Context, name string, data []byte) (string, error) {
	if len(data) > MaxFileSize {
		return "", fmt.Errorf("ukuran file melebihi batas maksimal 10MB")
	}

	// Sanitasi nama file
	name = strings.ReplaceAll(name, " ", "-")
	name = strings.ReplaceAll(name, "/", "-")
	objectKey := fmt.Sprintf("templates/%s-%s-%s.docx",
		time.Now().Format("20060102"),
		name,
		uuid.New().String()[:8],
	)

	reader := bytes.NewReader(data)
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, int64(len(data)), minio.PutObjectOptions{
		ContentType: DocxContentType,
	})
	if err != nil {
		return "", fmt.Errorf("gagal upload template: %w", err)
	}

	return objectKey, nil
}

// DownloadObject ambil kembali isi object dari MinIO
func (s *StorageService) DownloadObject(ctx context.Context, objectKey string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("gagal mengambil object: %w", err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("gagal membaca object: %w", err)
	}
	return data, nil
}

// DeleteObject hapus object dari MinIO
func (s *StorageService) DeleteObject(ctx context.Context, objectKey string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
}
