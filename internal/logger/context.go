package logger

import (
	"context"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
)

// WithRequest trả về logger entry với request context từ Fiber
func WithRequest(c fiber.Ctx) *logrus.Entry {
	logger := GetAppLogger()
	entry := logger.WithContext(context.Background())

	// Request ID - Fiber request ID middleware set vào Locals
	if rid := c.Locals("requestid"); rid != nil {
		if ridStr, ok := rid.(string); ok && ridStr != "" {
			entry = entry.WithField("request_id", ridStr)
		}
	}

	entry = entry.WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"ip":     c.IP(),
	})

	return entry
}
