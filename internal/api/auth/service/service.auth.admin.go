// Package authsvc chứa service quản lý tài khoản và phiên đăng nhập quản trị.
package authsvc

import (
	"context"
	"crypto/subtle"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	authdto "github.com/syrwx/parfum-djonkoud-sub000/internal/api/auth/dto"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/auth/models"
	basesvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/base/service"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/common"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
)

// CredentialChecker so sánh mật khẩu người dùng gửi lên với bản ghi đã lưu.
// Hiện tại dùng PlainCredentialChecker (so sánh plaintext); khi chuyển sang
// scheme hash chỉ cần thay implementation, không đổi caller.
type CredentialChecker interface {
	Check(stored string, supplied string) bool
}

// PlainCredentialChecker so sánh plaintext (constant-time để tránh lộ độ dài prefix trùng).
type PlainCredentialChecker struct{}

// Check so sánh hai chuỗi mật khẩu.
func (PlainCredentialChecker) Check(stored string, supplied string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}

// AdminUserService là cấu trúc chứa các phương thức liên quan đến tài khoản quản trị
type AdminUserService struct {
	*basesvc.BaseServiceMongoImpl[models.AdminUser]
	Checker CredentialChecker
}

// NewAdminUserService tạo mới AdminUserService
func NewAdminUserService() (*AdminUserService, error) {
	adminCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.AdminUsers)
	if !exist {
		return nil, fmt.Errorf("failed to get admin_users collection: %v", common.ErrNotFound)
	}

	return &AdminUserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.AdminUser](adminCollection),
		Checker:              PlainCredentialChecker{},
	}, nil
}

// Login kiểm tra email + mật khẩu và cấp JWT cho phiên quản trị.
// Sai email hay sai mật khẩu đều trả về ErrInvalidCredentials (401),
// không tiết lộ trường nào sai.
func (s *AdminUserService) Login(ctx context.Context, input *authdto.AdminLoginInput) (*authdto.AdminLoginOutput, error) {
	admin, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		logrus.WithField("email", input.Email).Warn("Login: không tìm thấy tài khoản")
		return nil, common.ErrInvalidCredentials
	}

	if !s.Checker.Check(admin.Password, input.Password) {
		logrus.WithField("email", input.Email).Warn("Login: sai mật khẩu")
		return nil, common.ErrInvalidCredentials
	}

	token, err := s.generateToken(admin.ID.Hex())
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Lỗi tạo token", common.StatusInternalServerError, err)
	}

	// Lưu token vào bản ghi admin; AuthMiddleware xác thực bằng cách tra token này
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, admin.ID, &basesvc.UpdateData{
		Set: map[string]interface{}{"token": token},
	})
	if err != nil {
		return nil, err
	}

	return &authdto.AdminLoginOutput{
		Token: token,
		Name:  admin.Name,
		Email: admin.Email,
	}, nil
}

// Logout xóa token của phiên hiện tại. Token đã logout sẽ không tra được
// trong AuthMiddleware nữa dù chưa hết hạn JWT.
func (s *AdminUserService) Logout(ctx context.Context, token string) error {
	admin, err := s.FindByToken(ctx, token)
	if err != nil {
		return err
	}
	_, err = s.BaseServiceMongoImpl.UpdateById(ctx, admin.ID, &basesvc.UpdateData{
		Unset: map[string]interface{}{"token": ""},
	})
	return err
}

// FindByToken tìm admin theo token của phiên hiện tại.
func (s *AdminUserService) FindByToken(ctx context.Context, token string) (models.AdminUser, error) {
	return s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"token": token}, nil)
}

// EnsureAdminAccount seed bản ghi admin duy nhất từ cấu hình nếu chưa tồn tại.
// Gọi khi khởi động (init.data). Không ghi đè mật khẩu nếu bản ghi đã có.
func (s *AdminUserService) EnsureAdminAccount(ctx context.Context, name, email, password string) error {
	exists, err := s.DocumentExists(ctx, bson.M{"email": email})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	_, err = s.InsertOne(ctx, models.AdminUser{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	logrus.WithField("email", email).Info("Đã seed tài khoản quản trị")
	return nil
}

// generateToken tạo JWT chứa adminId, thời điểm cấp và một số ngẫu nhiên
// (đảm bảo mỗi lần login sinh token khác nhau dù cùng giây).
func (s *AdminUserService) generateToken(adminID string) (string, error) {
	now := time.Now()
	claims := models.JwtToken{
		AdminID:      adminID,
		Time:         strconv.FormatInt(now.UnixMilli(), 10),
		RandomNumber: strconv.Itoa(rand.Intn(1000000)),
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(24 * time.Hour).Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(global.ServerConfig.JwtSecret))
}
