package storage

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// UploadFile uploads a file into the given folder and returns the
// permanent identifier used for delivery URLs and deletion.
func (s *CloudinaryStorageService) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return "", fmt.Errorf("storage: no public ID returned")
	}
	return result.PublicID, nil
}

// DeleteFile removes a stored file given its public ID.
func (s *CloudinaryStorageService) DeleteFile(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}

// DownloadURL constructs the public delivery URL for an image asset.
func (s *CloudinaryStorageService) DownloadURL(publicID string) (string, error) {
	img, err := s.cld.Image(publicID)
	if err != nil {
		return "", fmt.Errorf("storage: failed to resolve asset: %w", err)
	}
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("storage: failed to build URL: %w", err)
	}
	return url, nil
}

// SecureDownloadURL generates a signed URL for an authenticated resource.
// The signature is SHA-1 over "expires_at" and "public_id" concatenated
// with the API secret.
func (s *CloudinaryStorageService) SecureDownloadURL(publicID string, expires time.Duration) (string, error) {
	expiresAt := time.Now().Add(expires).Unix()
	stringToSign := fmt.Sprintf("expires_at=%d&public_id=%s%s", expiresAt, publicID, s.apiSecret)
	sum := sha1.Sum([]byte(stringToSign))
	signature := hex.EncodeToString(sum[:])
	return fmt.Sprintf("https://res.cloudinary.com/%s/image/authenticated/s--%s--/expires_%d/%s",
		s.cloudName, signature, expiresAt, publicID), nil
}
