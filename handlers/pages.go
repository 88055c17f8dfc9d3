package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"bestdental/database/repository"
	"bestdental/models"
	"bestdental/services/bookingform"
	"bestdental/services/site"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// pageData is the data every page template receives, merged with extra.
func pageData(s site.SiteService, title string, extra gin.H) gin.H {
	data := gin.H{
		"Title":          title,
		"Clinic":         s.Clinic(),
		"StructuredData": template.JS(s.StructuredData()),
		"Year":           time.Now().Year(),
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

// PageHandler renders the public content pages.
type PageHandler struct {
	Site site.SiteService
	Now  func() time.Time
}

func NewPageHandler(s site.SiteService) *PageHandler {
	return &PageHandler{Site: s, Now: time.Now}
}

// withForm adds an empty booking form to a page.
func (h *PageHandler) withForm(extra gin.H) gin.H {
	if extra == nil {
		extra = gin.H{}
	}
	extra["Form"] = bookingform.Blank()
	extra["BookingOptions"] = h.Site.BookingOptions()
	extra["MinDate"] = h.Now().Format("2006-01-02")
	return extra
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", pageData(h.Site, "Cosmetic Dentistry in Juja", h.withForm(gin.H{
		"Services":     h.Site.Services(),
		"Testimonials": h.Site.Testimonials(),
	})))
}

func (h *PageHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.html", pageData(h.Site, "About Us", gin.H{
		"Team": h.Site.Team(),
	}))
}

func (h *PageHandler) Services(c *gin.Context) {
	c.HTML(http.StatusOK, "services.html", pageData(h.Site, "Our Services", gin.H{
		"Services": h.Site.Services(),
	}))
}

// ServiceDetail handles GET /services/:slug.
func (h *PageHandler) ServiceDetail(c *gin.Context) {
	slug := c.Param("slug")
	svc, err := h.Site.Service(slug)
	if errors.Is(err, repository.ErrServiceNotFound) {
		h.NotFound(c)
		return
	}
	if err != nil {
		getLogger(c).Error("ServiceDetail: failed to load service", zap.String("slug", slug), zap.Error(err))
		c.String(http.StatusInternalServerError, "Something went wrong. Please try again later.")
		return
	}

	form := h.withForm(gin.H{"Service": svc})
	// Preselect this treatment in the form.
	view := form["Form"].(bookingform.View)
	view.Values.Service = svc.ID
	form["Form"] = view
	c.HTML(http.StatusOK, "service.html", pageData(h.Site, svc.Title, form))
}

func (h *PageHandler) Gallery(c *gin.Context) {
	c.HTML(http.StatusOK, "gallery.html", pageData(h.Site, "Gallery", gin.H{
		"Gallery": h.Site.Gallery(),
	}))
}

func (h *PageHandler) Testimonials(c *gin.Context) {
	c.HTML(http.StatusOK, "testimonials.html", pageData(h.Site, "Patient Testimonials", gin.H{
		"Testimonials": h.Site.Testimonials(),
	}))
}

func (h *PageHandler) Contact(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", pageData(h.Site, "Contact Us", h.withForm(nil)))
}

func (h *PageHandler) Privacy(c *gin.Context) {
	c.HTML(http.StatusOK, "privacy.html", pageData(h.Site, "Privacy Policy", gin.H{
		"Sections": h.Site.PrivacySections(),
		"Updated":  models.PolicyUpdated,
	}))
}

// NotFound renders the 404 page; it is also the router's NoRoute handler.
func (h *PageHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", pageData(h.Site, "Page Not Found", nil))
}
