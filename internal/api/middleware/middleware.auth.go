// Package middleware chứa các middleware dùng chung cho API.
package middleware

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"

	authmodels "github.com/syrwx/parfum-djonkoud-sub000/internal/api/auth/models"
	authsvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/auth/service"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/common"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/logger"
)

var (
	adminServiceInstance *authsvc.AdminUserService
	adminServiceOnce     sync.Once
)

// getAdminService trả về instance duy nhất của AdminUserService (singleton pattern)
func getAdminService() *authsvc.AdminUserService {
	adminServiceOnce.Do(func() {
		var err error
		adminServiceInstance, err = authsvc.NewAdminUserService()
		if err != nil {
			panic(fmt.Sprintf("failed to create admin user service: %v", err))
		}
	})
	return adminServiceInstance
}

// AuthMiddleware xác thực token quản trị cho các route back-office.
// Token phải (1) là JWT hợp lệ ký bằng secret của server, chưa hết hạn,
// và (2) khớp với token của phiên hiện tại lưu trên bản ghi admin
// (logout hoặc login nơi khác sẽ vô hiệu token cũ ngay lập tức).
func AuthMiddleware() fiber.Handler {
	adminService := getAdminService()

	return func(c fiber.Ctx) error {
		// Lấy token từ header
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("AuthMiddleware: thiếu Authorization header")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		// Kiểm tra định dạng token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		token := parts[1]

		// Xác thực chữ ký và hạn của JWT
		claims := &authmodels.JwtToken{}
		parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(global.ServerConfig.JwtSecret), nil
		})
		if err != nil || !parsed.Valid {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
			}).Warn("AuthMiddleware: JWT không hợp lệ hoặc hết hạn")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Tra token trong database: chỉ token của phiên hiện tại mới hợp lệ
		admin, err := adminService.FindByToken(context.Background(), token)
		if err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path": c.Path(),
			}).Warn("AuthMiddleware: token không khớp phiên nào")
			HandleErrorResponse(c, common.ErrTokenInvalid)
			return nil
		}

		// Lưu thông tin admin vào context
		c.Locals("admin_id", admin.ID.Hex())
		c.Locals("admin", admin)
		c.Locals("admin_token", token)

		return c.Next()
	}
}
