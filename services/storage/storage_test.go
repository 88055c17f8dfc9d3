package storage

import (
	"testing"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStaticResolver_URL(t *testing.T) {
	r := NewStaticResolver("")

	assert.Equal(t, "/static/img/gallery-braces-after.jpg", r.URL("/gallery-braces-after.jpg"))
	assert.Equal(t, "/static/img/team/ken.jpg", r.URL("team/ken.jpg"))
	assert.Equal(t, "/static/img/placeholder.svg", r.URL(""))
	assert.Equal(t, "https://images.example/x.jpg", r.URL("https://images.example/x.jpg"))
}

func TestPublicID(t *testing.T) {
	assert.Equal(t, "bestdental/equipment-xray", publicID("bestdental", "/equipment-xray.jpg"))
	assert.Equal(t, "equipment-xray", publicID("", "equipment-xray.png"))
	assert.Equal(t, "site/veneers", publicID("/site/", "/services/veneers.webp"))
}

func TestCloudinaryResolver_URL(t *testing.T) {
	cld, err := cloudinary.NewFromParams("demo", "key", "secret")
	require.NoError(t, err)

	r := NewCloudinaryResolver(cld, "bestdental", nil, zap.NewNop())

	url := r.URL("/gallery-veneers-after.jpg")
	assert.Contains(t, url, "https://res.cloudinary.com/demo/image/upload/")
	assert.Contains(t, url, "f_auto,q_auto")
	assert.Contains(t, url, "bestdental/gallery-veneers-after")

	assert.Equal(t, "/static/img/placeholder.svg", r.URL(""))
}
