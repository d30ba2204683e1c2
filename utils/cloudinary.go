package utils

import (
	"fmt"

	"growlytics/config"

	"github.com/cloudinary/cloudinary-go/v2"
)

// Cloudinary builds the media client from config credentials.
func Cloudinary() (*cloudinary.Cloudinary, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return cld, nil
}
