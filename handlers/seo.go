package handlers

import (
	"net/http"
	"time"

	"bestdental/services/site"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SEOHandler struct {
	Site site.SiteService
}

// Sitemap handles GET /sitemap.xml.
func (h *SEOHandler) Sitemap(c *gin.Context) {
	body, err := h.Site.Sitemap(time.Now())
	if err != nil {
		getLogger(c).Error("Sitemap: render failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", body)
}

// Robots handles GET /robots.txt.
func (h *SEOHandler) Robots(c *gin.Context) {
	c.String(http.StatusOK, h.Site.Robots())
}
