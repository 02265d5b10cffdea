package promptblog

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

const contentSecurityPolicy = "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; connect-src 'self'; frame-ancestors 'none'"

// crawlDocuments are the generated text documents served at the root.
var crawlDocuments = map[string]bool{
	"/sitemap.xml": true,
	"/robots.txt":  true,
	"/feed.xml":    true,
}

func isAPI(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/api/")
}

func isStatic(c echo.Context) bool {
	return strings.HasPrefix(c.Request().URL.Path, "/public/")
}

func (a *App) setupMiddleware() {
	e := a.Echo

	// Client IPs key the API limiter; trust X-Forwarded-For from the local proxy only.
	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)
	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())
	// Canonical URLs never end in a slash, so neither do served paths.
	e.Pre(middleware.RemoveTrailingSlashWithConfig(middleware.TrailingSlashConfig{
		RedirectCode: http.StatusMovedPermanently,
	}))

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		Skipper:      isStatic,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			c.Logger().Infof("[%s] %s %s -> %d (%s)", v.RequestID, v.Method, v.URI, v.Status, v.Latency)
			return nil
		},
	}))
	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level:   5,
		Skipper: isStatic,
	}))
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: contentSecurityPolicy,
		HSTSMaxAge:            31536000,
	}))

	// The API is read-only and public; the app shells on other origins call it.
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		Skipper:      func(c echo.Context) bool { return !isAPI(c) },
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))

	e.Use(cacheControl)
}

// cacheControl sets Cache-Control by route class once the status is known.
// Successful responses are publicly cacheable; error responses (404, 429,
// 5xx) are never stored, so a shared cache cannot replay them to others.
func cacheControl(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		res := c.Response()
		res.Before(func() {
			res.Header().Set("Cache-Control", cachePolicy(c, res.Status))
		})
		return next(c)
	}
}

func cachePolicy(c echo.Context, status int) string {
	switch path := c.Request().URL.Path; {
	case status >= http.StatusBadRequest:
		return "no-store"
	case isStatic(c):
		return "public, max-age=31536000, immutable"
	case crawlDocuments[path]:
		return "public, max-age=86400"
	case isAPI(c):
		return "public, max-age=300"
	default:
		return "public, max-age=3600"
	}
}
