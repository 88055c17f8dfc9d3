package site

import (
	"encoding/json"
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"bestdental/database"
	"bestdental/database/repository"
	"bestdental/services/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSite(t *testing.T) *DefaultSiteService {
	t.Helper()
	content, err := repository.NewJSONContentRepo(database.Embedded(), nil)
	require.NoError(t, err)
	s, err := NewSiteService(content, "https://bestdental.co.ke/")
	require.NoError(t, err)
	return s
}

func TestBookingOptions(t *testing.T) {
	s := newTestSite(t)
	options := s.BookingOptions()

	require.Len(t, options, len(s.Services())+2)
	assert.Equal(t, booking.ServiceOption{Value: "teeth-whitening", Label: "Teeth Whitening"}, options[0])
	assert.Equal(t, booking.ConsultationOption, options[len(options)-2])
	assert.Equal(t, booking.OtherOption, options[len(options)-1])

	schema := s.BookingSchema(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, options, schema.Services)
	assert.Equal(t, "2025-06-01", schema.MinDate)
}

func TestService(t *testing.T) {
	s := newTestSite(t)

	svc, err := s.Service("root-canal")
	require.NoError(t, err)
	assert.Len(t, svc.Features, 5)

	_, err = s.Service("nope")
	assert.ErrorIs(t, err, repository.ErrServiceNotFound)
}

func TestSitemap(t *testing.T) {
	s := newTestSite(t)
	now := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	raw, err := s.Sitemap(now)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "<?xml"))

	var set urlSet
	require.NoError(t, xml.Unmarshal(raw, &set))
	require.Len(t, set.URLs, len(StaticPages)+len(s.Services()))

	assert.Equal(t, "https://bestdental.co.ke", set.URLs[0].Loc)
	assert.Equal(t, "1.0", set.URLs[0].Priority)
	assert.Equal(t, "https://bestdental.co.ke/services", set.URLs[1].Loc)
	assert.Equal(t, "0.8", set.URLs[1].Priority)

	last := set.URLs[len(set.URLs)-1]
	assert.Equal(t, "https://bestdental.co.ke/services/smile-makeover", last.Loc)
	assert.Equal(t, "0.7", last.Priority)
	assert.Equal(t, "monthly", last.ChangeFreq)
	assert.Equal(t, "2025-01-02T03:04:05Z", last.LastMod)
}

func TestRobots(t *testing.T) {
	s := newTestSite(t)
	assert.Contains(t, s.Robots(), "Allow: /")
	assert.Contains(t, s.Robots(), "Sitemap: https://bestdental.co.ke/sitemap.xml")
}

func TestStructuredData(t *testing.T) {
	s := newTestSite(t)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(s.StructuredData(), &doc))

	assert.Equal(t, "Dentist", doc["@type"])
	assert.Equal(t, "Best Dental", doc["name"])
	assert.Equal(t, "+254724124735", doc["telephone"])
	assert.Equal(t, "https://bestdental.co.ke/static/img/logo.png", doc["logo"])

	hours := doc["openingHoursSpecification"].([]interface{})
	require.Len(t, hours, 2)
	assert.Equal(t, "Saturday", hours[1].(map[string]interface{})["dayOfWeek"])

	catalog := doc["hasOfferCatalog"].(map[string]interface{})
	assert.Len(t, catalog["itemListElement"], 6)
}

func TestPrivacySections(t *testing.T) {
	s := newTestSite(t)
	sections := s.PrivacySections()

	require.Len(t, sections, 6)
	assert.Contains(t, sections[4].Summary, "info@bestdental.co.ke")
	assert.Contains(t, sections[5].Items, "Address: Ken Walibora Road, Juja, Central Kenya")
}
