package objstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"

	appcfg "DocKeeper/internal/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/google/uuid"
)

// Upload — содержимое файла для загрузки.
type Upload struct {
	Data        []byte
	ContentType string
}

// UploadResult — результат загрузки: публичный URL, ключ удаления и размер.
type UploadResult struct {
	URL  string
	Key  string
	Size int64
}

// BlobStore — контракт объектного хранилища для файлов карточек.
type BlobStore interface {
	// Upload кладёт файл в хранилище в пространстве владельца.
	Upload(ctx context.Context, ownerID int64, up Upload) (UploadResult, error)

	// Delete удаляет объект по ключу. Идемпотентен: отсутствие объекта — не ошибка.
	Delete(ctx context.Context, key string) error
}

type s3Store struct {
	client        *s3.Client
	bucket        string
	publicBaseURL string
}

// NewS3Store создаёт BlobStore поверх S3-совместимого хранилища (MinIO и т.п.).
func NewS3Store(ctx context.Context, cfg *appcfg.Config) (BlobStore, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.S3AccessKey,
			cfg.S3SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("failed to load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.S3Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true // MinIO не понимает virtual-host адресацию
		}
	})

	return &s3Store{
		client:        client,
		bucket:        cfg.S3Bucket,
		publicBaseURL: strings.TrimRight(cfg.S3PublicBaseURL, "/"),
	}, nil
}

func (s *s3Store) Upload(ctx context.Context, ownerID int64, up Upload) (UploadResult, error) {
	key := storageKey(ownerID, up.ContentType)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(up.Data),
		ContentType: aws.String(up.ContentType),
	})
	if err != nil {
		return UploadResult{}, fmt.Errorf("failed to upload object %q: %w", key, err)
	}

	return UploadResult{
		URL:  publicURL(s.publicBaseURL, key),
		Key:  key,
		Size: int64(len(up.Data)),
	}, nil
}

func (s *s3Store) Delete(ctx context.Context, key string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		// отсутствие объекта приравниваем к успеху
		var nsk *types.NoSuchKey
		var nf *types.NotFound
		if errors.As(err, &nsk) || errors.As(err, &nf) {
			return nil
		}
		return fmt.Errorf("failed to delete object %q: %w", key, err)
	}
	return nil
}

// storageKey строит ключ объекта в пространстве владельца, чтобы файлы
// разных пользователей не пересекались. Изображения и прочие файлы
// раскладываются по разным префиксам.
func storageKey(ownerID int64, contentType string) string {
	return fmt.Sprintf("docs_app/%d/%s/%s", ownerID, classifyResource(contentType), uuid.New())
}

// classifyResource различает изображения и произвольные бинарные файлы.
func classifyResource(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return "image"
	}
	return "raw"
}

func publicURL(base, key string) string {
	if base == "" {
		return key
	}
	return base + "/" + key
}
