package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gobwas/glob"
	"github.com/samber/oops"
)

// CORS allows the given origins. Patterns are globs where * stays within
// one host label, e.g. https://*.vercel.app. A lone "*" allows everything.
func CORS(origins []string) (gin.HandlerFunc, error) {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cors.New(cfg), nil
	}

	patterns := make([]glob.Glob, 0, len(origins))
	for _, o := range origins {
		g, err := glob.Compile(o, '.')
		if err != nil {
			return nil, oops.Code("CORS_ORIGIN_INVALID").With("origin", o).Wrap(err)
		}
		patterns = append(patterns, g)
	}
	cfg.AllowOriginFunc = func(origin string) bool {
		for _, g := range patterns {
			if g.Match(origin) {
				return true
			}
		}
		return false
	}
	return cors.New(cfg), nil
}
