package storage

import (
	"context"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
)

// StorageService stores uploaded plant photos.
type StorageService interface {
	// UploadFile uploads a local file into destFolder and returns its
	// permanent public ID.
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	// DeleteFile removes a stored file by its public ID.
	DeleteFile(ctx context.Context, publicID string) error
	// DownloadURL returns the public delivery URL for a stored image.
	DownloadURL(publicID string) (string, error)
	// SecureDownloadURL returns a signed, short-lived URL.
	SecureDownloadURL(publicID string, expires time.Duration) (string, error)
}

// CloudinaryStorageService implements StorageService on Cloudinary.
type CloudinaryStorageService struct {
	cld       *cloudinary.Cloudinary
	cloudName string
	apiSecret string
}

// NewStorageService returns a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary, cloudName, apiSecret string) StorageService {
	return &CloudinaryStorageService{
		cld:       cld,
		cloudName: cloudName,
		apiSecret: apiSecret,
	}
}
