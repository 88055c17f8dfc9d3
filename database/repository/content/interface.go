package contentRepo

import (
	"errors"

	"bestdental/models"
)

var ErrServiceNotFound = errors.New("service not found")

// ContentRepository serves the site's static content. All data is loaded
// once and never changes while the server runs.
type ContentRepository interface {
	// Services returns the treatment catalog in file order.
	Services() []models.DentalService
	// ServiceByID returns the catalog entry with the given slug.
	ServiceByID(id string) (*models.DentalService, error)
	Testimonials() []models.Testimonial
	Team() []models.TeamMember
	Gallery() models.Gallery
	Clinic() models.Clinic
}
