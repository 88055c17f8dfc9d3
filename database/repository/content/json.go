package contentRepo

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"bestdental/models"
	"bestdental/services/storage"
)

const (
	servicesFile     = "services.json"
	testimonialsFile = "testimonials.json"
	teamFile         = "team.json"
	galleryFile      = "gallery.json"
	clinicFile       = "clinic.json"
)

type jsonContentRepo struct {
	services     []models.DentalService
	byID         map[string]int
	testimonials []models.Testimonial
	team         []models.TeamMember
	gallery      models.Gallery
	clinic       models.Clinic
}

// NewJSONContentRepo reads every content file from fsys and resolves image
// references through media.
func NewJSONContentRepo(fsys fs.FS, media storage.MediaResolver) (ContentRepository, error) {
	if media == nil {
		media = storage.NewStaticResolver("")
	}
	repo := &jsonContentRepo{}

	if err := readJSON(fsys, servicesFile, &repo.services); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, testimonialsFile, &repo.testimonials); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, teamFile, &repo.team); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, galleryFile, &repo.gallery); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, clinicFile, &repo.clinic); err != nil {
		return nil, err
	}

	repo.byID = make(map[string]int, len(repo.services))
	for i := range repo.services {
		s := &repo.services[i]
		if s.ID == "" {
			return nil, fmt.Errorf("%s: entry %d has no id", servicesFile, i)
		}
		if _, dup := repo.byID[s.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate id %q", servicesFile, s.ID)
		}
		repo.byID[s.ID] = i
		s.Image = media.URL(s.Image)
	}
	for i := range repo.testimonials {
		t := &repo.testimonials[i]
		t.Rating = clampRating(t.Rating)
		t.Image = media.URL(t.Image)
	}
	for i := range repo.team {
		repo.team[i].Image = media.URL(repo.team[i].Image)
	}
	for i := range repo.gallery.Transformations {
		tr := &repo.gallery.Transformations[i]
		tr.Before = media.URL(tr.Before)
		tr.After = media.URL(tr.After)
	}
	for i := range repo.gallery.Equipment {
		repo.gallery.Equipment[i].Image = media.URL(repo.gallery.Equipment[i].Image)
	}
	repo.clinic.Logo = media.URL(repo.clinic.Logo)
	repo.clinic.Image = media.URL(repo.clinic.Image)

	return repo, nil
}

func readJSON(fsys fs.FS, name string, dst interface{}) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func clampRating(r int) int {
	if r < 0 {
		return 0
	}
	if r > models.MaxRating {
		return models.MaxRating
	}
	return r
}

func (r *jsonContentRepo) Services() []models.DentalService {
	out := make([]models.DentalService, len(r.services))
	copy(out, r.services)
	return out
}

func (r *jsonContentRepo) ServiceByID(id string) (*models.DentalService, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, ErrServiceNotFound
	}
	s := r.services[i]
	return &s, nil
}

func (r *jsonContentRepo) Testimonials() []models.Testimonial {
	out := make([]models.Testimonial, len(r.testimonials))
	copy(out, r.testimonials)
	return out
}

func (r *jsonContentRepo) Team() []models.TeamMember {
	out := make([]models.TeamMember, len(r.team))
	copy(out, r.team)
	return out
}

func (r *jsonContentRepo) Gallery() models.Gallery {
	return r.gallery
}

func (r *jsonContentRepo) Clinic() models.Clinic {
	return r.clinic
}
