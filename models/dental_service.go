// models/dental_service.go
package models

// DentalService is one treatment in the clinic's catalog. ID doubles as the
// URL slug and the booking form's service value.
type DentalService struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	FullDescription  string   `json:"fullDescription"`
	Price            string   `json:"price"`    // display text, e.g. "From KES 15,000"
	Duration         string   `json:"duration"` // display text, e.g. "60-90 minutes"
	Image            string   `json:"image"`
	Icon             string   `json:"icon"`
	Features         []string `json:"features"`
}
