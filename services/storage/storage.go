package storage

import (
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"go.uber.org/zap"
)

// CloudinaryResolver builds delivery URLs for images hosted on Cloudinary.
// No network calls are made; URLs are derived from the public ID.
type CloudinaryResolver struct {
	cld      *cloudinary.Cloudinary
	folder   string
	fallback MediaResolver
	logger   *zap.Logger
}

// NewCloudinaryResolver creates a resolver. References that cannot be turned
// into a Cloudinary URL fall back to the static resolver.
func NewCloudinaryResolver(cld *cloudinary.Cloudinary, folder string, fallback MediaResolver, logger *zap.Logger) *CloudinaryResolver {
	if fallback == nil {
		fallback = NewStaticResolver("")
	}
	cld.Config.URL.Secure = true
	return &CloudinaryResolver{
		cld:      cld,
		folder:   folder,
		fallback: fallback,
		logger:   logger,
	}
}

func (r *CloudinaryResolver) URL(ref string) string {
	if ref == "" || isAbsolute(ref) {
		return r.fallback.URL(ref)
	}
	url, err := r.imageURL(publicID(r.folder, ref))
	if err != nil {
		r.logger.Warn("CloudinaryResolver: falling back to static image", zap.String("ref", ref), zap.Error(err))
		return r.fallback.URL(ref)
	}
	return url
}

func (r *CloudinaryResolver) imageURL(id string) (string, error) {
	img, err := r.cld.Image(id)
	if err != nil {
		return "", fmt.Errorf("CloudinaryResolver: failed to get asset: %w", err)
	}
	img.Transformation = "f_auto,q_auto"
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("CloudinaryResolver: failed to get URL string: %w", err)
	}
	return url, nil
}
