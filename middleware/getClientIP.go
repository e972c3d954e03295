package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"

	"alabraar/config"
)

// getClientIP resolves the caller's address for rate limiting. Forwarded
// headers are only honored when the connection comes from a trusted proxy
// (TRUSTED_PROXIES, comma-separated IPs or CIDR blocks), so clients cannot
// spoof their way past the limiter.
func getClientIP(c *gin.Context) string {
	peer := remoteIP(c)
	if !trustedProxy(peer) {
		return peer
	}

	// The header may carry a comma-separated chain; the first entry is the
	// originating client.
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if xri := strings.TrimSpace(c.GetHeader("X-Real-IP")); xri != "" {
		return xri
	}
	return peer
}

func remoteIP(c *gin.Context) string {
	addr := c.Request.RemoteAddr
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}

func trustedProxy(ip string) bool {
	list := config.AppConfig.TrustedProxies
	if list == "" {
		return false
	}
	addr := net.ParseIP(ip)
	if addr == nil {
		return false
	}
	for _, entry := range strings.Split(list, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		if strings.Contains(entry, "/") {
			if _, cidr, err := net.ParseCIDR(entry); err == nil && cidr.Contains(addr) {
				return true
			}
			continue
		}
		if proxy := net.ParseIP(entry); proxy != nil && proxy.Equal(addr) {
			return true
		}
	}
	return false
}
