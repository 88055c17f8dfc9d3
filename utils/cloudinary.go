package utils

import (
	"fmt"

	"bestdental/config"
	"bestdental/services/storage"

	"github.com/cloudinary/cloudinary-go/v2"
)

// MediaResolver returns the Cloudinary resolver when CLOUDINARY_URL is set
// and the static resolver otherwise.
func MediaResolver() (storage.MediaResolver, error) {
	static := storage.NewStaticResolver("/static/img")
	if config.AppConfig.CloudinaryURL == "" {
		return static, nil
	}

	cld, err := cloudinary.NewFromURL(config.AppConfig.CloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("utils.MediaResolver: failed to initialize Cloudinary: %w", err)
	}
	return storage.NewCloudinaryResolver(cld, config.AppConfig.CloudinaryFolder, static, GetLogger()), nil
}
