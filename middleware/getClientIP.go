package middleware

import (
	"net"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// UnknownCaller is the key shared by requests that carry no proxy headers.
const UnknownCaller = "unknown"

// CallerKey identifies the caller for booking rate limiting: the first
// X-Forwarded-For entry, then X-Real-IP, then UnknownCaller.
func CallerKey(r *http.Request) string {
	if ip := forwardedIP(r); ip != "" {
		return ip
	}
	return UnknownCaller
}

func forwardedIP(r *http.Request) string {
	// X-Forwarded-For can contain multiple IPs. Use the first one.
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first := strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
		if first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}
	return ""
}

// getClientIP is CallerKey with the socket address as the last resort.
// Page throttling and request logs use it.
func getClientIP(c *gin.Context) string {
	if ip := forwardedIP(c.Request); ip != "" {
		return ip
	}
	ip := c.Request.RemoteAddr
	// RemoteAddr might be in "ip:port" format; strip the port if present.
	if host, _, err := net.SplitHostPort(ip); err == nil {
		return host
	}
	if ip == "" {
		return UnknownCaller
	}
	return ip
}
