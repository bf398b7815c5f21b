package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"financy/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// redactBody prepares a request body for the audit record. Values of
// JSON keys carrying credentials are replaced so password changes never
// persist plaintext secrets; non-JSON bodies are dropped entirely.
func redactBody(body []byte) string {
	var fields map[string]interface{}
	if err := json.Unmarshal(body, &fields); err != nil {
		return ""
	}

	redacted := false
	for key := range fields {
		if strings.Contains(strings.ToLower(key), "password") {
			fields[key] = "[REDACTED]"
			redacted = true
		}
	}
	if !redacted {
		return string(body)
	}

	b, err := json.Marshal(fields)
	if err != nil {
		return ""
	}
	return string(b)
}

// AuditMiddleware records authenticated operations after the handler ran.
func AuditMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var userID uint
		if v, ok := c.Get("currentUser"); ok {
			if user, ok := v.(*models.User); ok && user != nil {
				userID = user.ID
			}
		}

		// keep a copy of the body for the audit record
		var bodyBytes []byte
		if c.Request.Body != nil {
			bodyBytes, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
		}

		c.Next()

		// only record operations of logged-in users
		if userID == 0 {
			return
		}

		path := c.Request.URL.Path
		action := c.Request.Method + " " + path
		if len(bodyBytes) > 0 && len(bodyBytes) < 2000 {
			if body := redactBody(bodyBytes); body != "" {
				action += " " + body
			}
		}

		entry := models.AuditLog{
			UserID:    &userID,
			Method:    c.Request.Method,
			Path:      path,
			Action:    action,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}

		_ = db.Create(&entry).Error
	}
}
