package models

// LegalSection is one numbered section of the privacy policy page.
type LegalSection struct {
	ID      string   `json:"id"`
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Items   []string `json:"items,omitempty"`
}

// PolicyUpdated is shown under the privacy policy heading.
const PolicyUpdated = "December 2024"
