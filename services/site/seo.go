package site

import (
	"encoding/xml"
	"fmt"
	"time"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

// StaticPages lists the fixed routes in sitemap order.
var StaticPages = []string{"", "/services", "/gallery", "/about", "/testimonials", "/contact", "/privacy"}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod"`
	ChangeFreq string `xml:"changefreq"`
	Priority   string `xml:"priority"`
}

// Sitemap renders sitemap.xml: the home page at priority 1.0, the other
// static pages at 0.8 and one entry per service at 0.7.
func (s *DefaultSiteService) Sitemap(now time.Time) ([]byte, error) {
	lastMod := now.UTC().Format(time.RFC3339)
	set := urlSet{XMLNS: sitemapNS}

	for _, route := range StaticPages {
		priority := "0.8"
		if route == "" {
			priority = "1.0"
		}
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.baseURL + route,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   priority,
		})
	}
	for _, svc := range s.Content.Services() {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        s.baseURL + "/services/" + svc.ID,
			LastMod:    lastMod,
			ChangeFreq: "monthly",
			Priority:   "0.7",
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("site: encode sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func (s *DefaultSiteService) Robots() string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", s.baseURL)
}
