package storage

import (
	"path"
	"strings"
)

// MediaResolver turns an image reference from the content files
// (e.g. "/gallery-braces-after.jpg") into a URL a browser can load.
type MediaResolver interface {
	URL(ref string) string
}

// StaticResolver serves images from the site's own static directory.
type StaticResolver struct {
	Prefix string
}

// NewStaticResolver returns a resolver rooted at prefix (default "/static/img").
func NewStaticResolver(prefix string) *StaticResolver {
	if prefix == "" {
		prefix = "/static/img"
	}
	return &StaticResolver{Prefix: strings.TrimRight(prefix, "/")}
}

func (r *StaticResolver) URL(ref string) string {
	if ref == "" {
		return r.Prefix + "/placeholder.svg"
	}
	if isAbsolute(ref) {
		return ref
	}
	return r.Prefix + "/" + strings.TrimLeft(ref, "/")
}

func isAbsolute(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// publicID maps a file reference to a Cloudinary public ID under folder.
func publicID(folder, ref string) string {
	base := path.Base("/" + strings.TrimLeft(ref, "/"))
	id := strings.TrimSuffix(base, path.Ext(base))
	if folder == "" {
		return id
	}
	return strings.Trim(folder, "/") + "/" + id
}
