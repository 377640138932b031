package middleware

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// HeaderHSTS is the Strict-Transport-Security response header
const HeaderHSTS = "Strict-Transport-Security"

// hstsExcludedHosts never receive an HSTS header
var hstsExcludedHosts = map[string]bool{
	"localhost": true,
	"127.0.0.1": true,
	"::1":       true,
}

// HTTPSRedirect sends plain HTTP requests to the same URL on httpsPort with
// 307 so the method and body are kept. With no port configured it does
// nothing.
func HTTPSRedirect(httpsPort string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if httpsPort == "" || c.Request.TLS != nil {
			c.Next()
			return
		}

		host := hostWithoutPort(c.Request.Host)
		if httpsPort != "443" {
			host = net.JoinHostPort(host, httpsPort)
		}

		target := fmt.Sprintf("https://%s%s", host, c.Request.URL.RequestURI())
		c.Redirect(http.StatusTemporaryRedirect, target)
		c.Abort()
	}
}

// HSTS adds Strict-Transport-Security to responses served over TLS, except
// for loopback hosts
func HSTS(maxAge time.Duration) gin.HandlerFunc {
	value := fmt.Sprintf("max-age=%d", int64(maxAge.Seconds()))

	return func(c *gin.Context) {
		if c.Request.TLS != nil && !hstsExcludedHosts[strings.ToLower(hostWithoutPort(c.Request.Host))] {
			c.Header(HeaderHSTS, value)
		}
		c.Next()
	}
}

// hostWithoutPort strips the port and IPv6 brackets from a Host header
func hostWithoutPort(hostport string) string {
	if host, _, err := net.SplitHostPort(hostport); err == nil {
		return host
	}
	return strings.Trim(hostport, "[]")
}
