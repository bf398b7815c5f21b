package handler

import (
	"math"
	"net/http"
	"time"

	"financy/internal/models"
	"financy/internal/util"

	"github.com/gin-gonic/gin"
)

// currentUser pulls the user resolved by the auth middleware out of the
// request context. The second return is false when the middleware did
// not run, which for protected routes means a wiring bug; the caller
// replies 401 either way.
func currentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get("currentUser")
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok || user == nil {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return nil, false
	}
	return user, true
}

// amountToCent converts a decimal amount to cents, rounding half away
// from zero.
func amountToCent(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// centToAmount converts stored cents back to the decimal amount the API
// speaks.
func centToAmount(cent int64) float64 {
	return float64(cent) / 100.0
}

// parseDate accepts the date formats clients actually send.
func parseDate(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339,          // 2025-12-03T00:00:00Z
		"2006-01-02T15:04:05", // 2025-12-03T00:00:00
		"2006-01-02",          // 2025-12-03
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
