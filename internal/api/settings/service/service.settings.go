// Package settingssvc chứa service quản lý document settings singleton
// và tra cứu định tuyến tư vấn viên dựa trên settings đã lưu.
package settingssvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/base/service"
	settingsdto "github.com/syrwx/parfum-djonkoud-sub000/internal/api/settings/dto"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/settings/models"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/common"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/routing"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/utility"
)

// SettingsService là cấu trúc chứa các phương thức liên quan đến settings
type SettingsService struct {
	*basesvc.BaseServiceMongoImpl[models.Settings]
}

// NewSettingsService tạo mới SettingsService
func NewSettingsService() (*SettingsService, error) {
	settingsCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Settings)
	if !exist {
		return nil, fmt.Errorf("failed to get settings collection: %v", common.ErrNotFound)
	}

	return &SettingsService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Settings](settingsCollection),
	}, nil
}

// GetOrDefault trả về document settings đã lưu, hoặc DefaultSettings()
// nếu database chưa có (không phải lỗi).
func (s *SettingsService) GetOrDefault(ctx context.Context) (models.Settings, error) {
	settings, err := s.BaseServiceMongoImpl.FindOne(ctx, bson.M{"_id": models.SettingsID}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return models.DefaultSettings(), nil
		}
		return models.Settings{}, err
	}
	return settings, nil
}

// Replace thay thế TOÀN BỘ settings (upsert theo _id cố định).
// Không merge từng phần: trường nào không gửi lên coi như bị xóa.
func (s *SettingsService) Replace(ctx context.Context, input *settingsdto.SettingsReplaceInput) (models.Settings, error) {
	contactMap, err := utility.ToMap(input.ContactInfo)
	if err != nil {
		return models.Settings{}, common.ErrInvalidFormat
	}
	siteMap, err := utility.ToMap(input.SiteSettings)
	if err != nil {
		return models.Settings{}, common.ErrInvalidFormat
	}

	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"contactInfo":  contactMap,
			"siteSettings": siteMap,
		},
	}

	return s.BaseServiceMongoImpl.Upsert(ctx, bson.M{"_id": models.SettingsID}, update)
}

// ResolveAgent chọn tư vấn viên cho một đơn checkout dựa trên settings đã lưu
// (agents + ngưỡng sỉ) và nước nhà từ cấu hình server.
func (s *SettingsService) ResolveAgent(ctx context.Context, destCountry string, subtotal int64) (routing.Agent, string, bool, error) {
	settings, err := s.GetOrDefault(ctx)
	if err != nil {
		return routing.Agent{}, "", false, err
	}

	agent, label, ok := routing.SelectAgent(
		destCountry,
		global.ServerConfig.HomeCountry,
		subtotal,
		settings.SiteSettings.WholesaleThreshold,
		settings.ContactInfo.Agents,
	)
	return agent, label, ok, nil
}

// EnsureDefault seed document settings mặc định nếu database chưa có.
// Gọi khi khởi động (init.data); không ghi đè settings admin đã chỉnh.
func (s *SettingsService) EnsureDefault(ctx context.Context) error {
	exists, err := s.DocumentExists(ctx, bson.M{"_id": models.SettingsID})
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	def := models.DefaultSettings()
	input := &settingsdto.SettingsReplaceInput{
		ContactInfo:  def.ContactInfo,
		SiteSettings: def.SiteSettings,
	}
	_, err = s.Replace(ctx, input)
	return err
}
