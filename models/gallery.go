// models/gallery.go
package models

// Transformation is a before/after pair.
type Transformation struct {
	ID          string `json:"id"`
	Before      string `json:"before"`
	After       string `json:"after"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Equipment struct {
	ID          string `json:"id"`
	Image       string `json:"image"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Gallery struct {
	Transformations []Transformation `json:"transformations"`
	Equipment       []Equipment      `json:"equipment"`
}
