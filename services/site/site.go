package site

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"bestdental/database/repository"
	"bestdental/models"
	"bestdental/services/booking"
)

// DefaultSiteService is the production implementation.
type DefaultSiteService struct {
	Content repository.ContentRepository
	baseURL string
	jsonLD  []byte
}

// NewSiteService builds the service and renders the structured data once;
// content does not change while the server runs.
func NewSiteService(content repository.ContentRepository, baseURL string) (*DefaultSiteService, error) {
	s := &DefaultSiteService{
		Content: content,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
	doc, err := json.Marshal(s.dentistDocument())
	if err != nil {
		return nil, fmt.Errorf("site: encode structured data: %w", err)
	}
	s.jsonLD = doc
	return s, nil
}

func (s *DefaultSiteService) Clinic() models.Clinic { return s.Content.Clinic() }

func (s *DefaultSiteService) Services() []models.DentalService { return s.Content.Services() }

func (s *DefaultSiteService) Service(slug string) (*models.DentalService, error) {
	return s.Content.ServiceByID(slug)
}

func (s *DefaultSiteService) BookingOptions() []booking.ServiceOption {
	catalog := s.Content.Services()
	options := make([]booking.ServiceOption, 0, len(catalog)+2)
	for _, svc := range catalog {
		options = append(options, booking.ServiceOption{Value: svc.ID, Label: svc.Title})
	}
	return append(options, booking.ConsultationOption, booking.OtherOption)
}

func (s *DefaultSiteService) BookingSchema(today time.Time) booking.Schema {
	return booking.BuildSchema(s.BookingOptions(), today)
}

func (s *DefaultSiteService) Testimonials() []models.Testimonial { return s.Content.Testimonials() }

func (s *DefaultSiteService) Team() []models.TeamMember { return s.Content.Team() }

func (s *DefaultSiteService) Gallery() models.Gallery { return s.Content.Gallery() }

func (s *DefaultSiteService) StructuredData() []byte { return s.jsonLD }

func (s *DefaultSiteService) BaseURL() string { return s.baseURL }

// absolute turns a site-relative path into a full URL.
func (s *DefaultSiteService) absolute(p string) string {
	if p == "" || strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return s.baseURL + "/" + strings.TrimLeft(p, "/")
}
