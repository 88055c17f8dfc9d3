// models/clinic.go
package models

// Clinic is the practice profile shown in the footer, the contact page and
// the structured data document.
type Clinic struct {
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Logo            string         `json:"logo"`
	Image           string         `json:"image"`
	Phone           string         `json:"phone"`
	Email           string         `json:"email"`
	Address         Address        `json:"address"`
	Geo             Geo            `json:"geo"`
	OpeningHours    []OpeningHours `json:"openingHours"`
	PriceRange      string         `json:"priceRange"`
	Currencies      string         `json:"currenciesAccepted"`
	PaymentAccepted string         `json:"paymentAccepted"`
	Founder         Person         `json:"founder"`
	Socials         []string       `json:"socials"`
}

type Address struct {
	Street   string `json:"streetAddress"`
	Locality string `json:"addressLocality"`
	Region   string `json:"addressRegion"`
	Country  string `json:"addressCountry"`
}

type Geo struct {
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

type OpeningHours struct {
	Days   []string `json:"days"`
	Opens  string   `json:"opens"`
	Closes string   `json:"closes"`
}

type Person struct {
	Name     string `json:"name"`
	JobTitle string `json:"jobTitle"`
}
