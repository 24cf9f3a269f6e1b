package middleware

import (
	"errors"
	"net/url"
	"strings"

	"enrollment-metrics-report/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

var ErrOriginNotAllowed = errors.New("origin not allowed by CORS")

// CORS returns the origin guard followed by Fiber's CORS handler. Requests
// without an Origin header always pass; "*" in the list allows everyone.
func CORS(allowed []string) []fiber.Handler {
	origins := normalizeOrigins(allowed)
	if allowsAny(origins) {
		return []fiber.Handler{cors.New(cors.Config{AllowOrigins: "*"})}
	}

	return []fiber.Handler{
		OriginGuard(origins),
		cors.New(cors.Config{AllowOrigins: strings.Join(origins, ",")}),
	}
}

func OriginGuard(origins []string) fiber.Handler {
	set := make(map[string]struct{}, len(origins))
	for _, o := range origins {
		set[o] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		origin := c.Get(fiber.HeaderOrigin)
		if origin == "" {
			return c.Next()
		}
		if _, ok := set[strings.ToLower(origin)]; ok {
			return c.Next()
		}
		return utils.ErrorJSON(c, fiber.StatusForbidden, ErrOriginNotAllowed)
	}
}

func allowsAny(origins []string) bool {
	for _, o := range origins {
		if o == "*" {
			return true
		}
	}
	return false
}

// normalizeOrigins lowercases entries and drops the ones that are not a bare
// scheme://host[:port]; Fiber's CORS handler panics on those.
func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, o := range origins {
		o = strings.ToLower(strings.TrimSpace(o))
		if o == "*" {
			out = append(out, o)
			continue
		}
		u, err := url.Parse(o)
		if err != nil || u.Scheme == "" || u.Host == "" || (u.Path != "" && u.Path != "/") || u.RawQuery != "" {
			log.Warnf("ignoring invalid CORS origin %q", o)
			continue
		}
		out = append(out, u.Scheme+"://"+u.Host)
	}
	return out
}
