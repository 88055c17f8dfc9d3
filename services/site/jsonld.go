package site

type thing = map[string]interface{}

// dentistDocument is the schema.org Dentist description of the clinic.
func (s *DefaultSiteService) dentistDocument() thing {
	c := s.Content.Clinic()

	hours := make([]thing, 0, len(c.OpeningHours))
	for _, h := range c.OpeningHours {
		var days interface{} = h.Days
		if len(h.Days) == 1 {
			days = h.Days[0]
		}
		hours = append(hours, thing{
			"@type":     "OpeningHoursSpecification",
			"dayOfWeek": days,
			"opens":     h.Opens,
			"closes":    h.Closes,
		})
	}

	offers := []thing{}
	for _, svc := range s.Content.Services() {
		offers = append(offers, thing{
			"@type": "Offer",
			"itemOffered": thing{
				"@type":       "Service",
				"name":        svc.Title,
				"description": svc.ShortDescription,
				"url":         s.baseURL + "/services/" + svc.ID,
			},
		})
	}

	return thing{
		"@context":    "https://schema.org",
		"@type":       "Dentist",
		"name":        c.Name,
		"description": c.Description,
		"url":         s.baseURL,
		"logo":        s.absolute(c.Logo),
		"image":       s.absolute(c.Image),
		"address": thing{
			"@type":           "PostalAddress",
			"streetAddress":   c.Address.Street,
			"addressLocality": c.Address.Locality,
			"addressRegion":   c.Address.Region,
			"addressCountry":  c.Address.Country,
		},
		"geo": thing{
			"@type":     "GeoCoordinates",
			"latitude":  c.Geo.Latitude,
			"longitude": c.Geo.Longitude,
		},
		"telephone":                 c.Phone,
		"email":                     c.Email,
		"openingHoursSpecification": hours,
		"priceRange":                c.PriceRange,
		"currenciesAccepted":        c.Currencies,
		"paymentAccepted":           c.PaymentAccepted,
		"founder": thing{
			"@type":    "Person",
			"name":     c.Founder.Name,
			"jobTitle": c.Founder.JobTitle,
		},
		"sameAs": c.Socials,
		"hasOfferCatalog": thing{
			"@type":           "OfferCatalog",
			"name":            "Dental Services",
			"itemListElement": offers,
		},
	}
}
