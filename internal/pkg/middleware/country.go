package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/piresc/movecar/internal/pkg/i18n"
	"github.com/piresc/movecar/internal/pkg/logger"
	"github.com/piresc/movecar/internal/utils"
)

// HeaderCountry is set by Cloudflare to the client's ISO country code
const HeaderCountry = "CF-IPCountry"

// CountryFilterMiddleware rejects requests from countries outside allowed.
// An empty list disables the filter, and requests without the header pass.
func CountryFilterMiddleware(allowed []string, catalog *i18n.Catalog) echo.MiddlewareFunc {
	set := make(map[string]struct{}, len(allowed))
	for _, code := range allowed {
		set[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if len(set) == 0 {
			return next
		}
		return func(c echo.Context) error {
			country := strings.ToUpper(strings.TrimSpace(c.Request().Header.Get(HeaderCountry)))
			if country == "" {
				return next(c)
			}
			if _, ok := set[country]; !ok {
				logger.Warn("Request rejected by country filter",
					logger.String("country", country),
					logger.String("client_ip", c.RealIP()),
					logger.String("path", c.Request().URL.Path))
				return utils.ForbiddenResponse(c, catalog.T(c.Request().Header.Get("Accept-Language"), i18n.ErrCountryForbidden))
			}
			return next(c)
		}
	}
}
