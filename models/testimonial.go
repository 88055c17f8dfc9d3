// models/testimonial.go
package models

const MaxRating = 5

type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Service  string `json:"service"`
	Rating   int    `json:"rating"`
	Text     string `json:"text"`
	Image    string `json:"image"`
}

// Stars returns Rating as a slice for template range loops.
func (t Testimonial) Stars() []struct{} {
	return make([]struct{}, t.Rating)
}
