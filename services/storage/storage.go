package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// StorageService is the image hosting interface used for listing and market
// images. The platform only needs an upload that yields a stable URL.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
}

type cloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

// NewStorageService returns a Cloudinary-backed StorageService.
func NewStorageService(cld *cloudinary.Cloudinary) StorageService {
	return &cloudinaryStorage{cld: cld}
}

// UploadFile uploads a file into the given folder and returns its secure URL.
func (s *cloudinaryStorage) UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error) {
	result, err := s.cld.Upload.Upload(ctx, localFilePath, uploader.UploadParams{Folder: destFolder})
	if err != nil {
		return "", fmt.Errorf("storage: failed to upload file: %w", err)
	}
	if result.SecureURL == "" {
		return "", fmt.Errorf("storage: no URL returned for upload")
	}
	return result.SecureURL, nil
}

func (s *cloudinaryStorage) DeleteFile(ctx context.Context, publicID string) error {
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: failed to delete file: %w", err)
	}
	return nil
}
