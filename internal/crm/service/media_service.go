package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/entity"
	"github.com/Mandeepthenoncoder/themainsarkarcrm-sub000/internal/crm/repository"
	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
)

// ErrMediaDisabled returned when object storage is not configured. The server
// runs without MinIO; media endpoints refuse instead of recording phantom rows.
var ErrMediaDisabled = errors.New("media storage is not configured")

// MediaService design-reference uploads stored in object storage
type MediaService struct {
	mediaRepo    *repository.MediaRepository
	customerRepo *repository.CustomerRepository
	minioClient  *minio.Client
	bucketName   string
}

func NewMediaService(
	mediaRepo *repository.MediaRepository,
	customerRepo *repository.CustomerRepository,
	minioClient *minio.Client,
	bucketName string,
) *MediaService {
	return &MediaService{
		mediaRepo:    mediaRepo,
		customerRepo: customerRepo,
		minioClient:  minioClient,
		bucketName:   bucketName,
	}
}

// Upload stores the file under customers/{id}/ and records its metadata
func (s *MediaService) Upload(ctx context.Context, customerID, fileName, contentType string, size int64, reader io.Reader, uploadedBy string) (*entity.MediaFile, error) {
	if s.minioClient == nil {
		return nil, ErrMediaDisabled
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("customer not found: %w", err)
	}

	objectName := fmt.Sprintf("customers/%s/%d%s", customer.ID, time.Now().UnixNano(), path.Ext(fileName))

	_, err = s.minioClient.PutObject(ctx, s.bucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	media := &entity.MediaFile{
		ID:          uuid.New().String(),
		CustomerID:  customer.ID,
		FileName:    fileName,
		ObjectName:  objectName,
		ContentType: contentType,
		SizeBytes:   size,
		UploadedBy:  uploadedBy,
	}
	if err := s.mediaRepo.Create(ctx, media); err != nil {
		return nil, fmt.Errorf("record media: %w", err)
	}
	return media, nil
}

// Download streams a stored object
func (s *MediaService) Download(ctx context.Context, id string) (*entity.MediaFile, io.ReadCloser, error) {
	if s.minioClient == nil {
		return nil, nil, ErrMediaDisabled
	}

	media, err := s.mediaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	obj, err := s.minioClient.GetObject(ctx, s.bucketName, media.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, fmt.Errorf("fetch object: %w", err)
	}
	return media, obj, nil
}

// ListByCustomer lists a customer's uploads
func (s *MediaService) ListByCustomer(ctx context.Context, customerID string) ([]entity.MediaFile, error) {
	return s.mediaRepo.ListByCustomer(ctx, customerID)
}
