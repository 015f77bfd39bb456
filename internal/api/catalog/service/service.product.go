// Package catalogsvc chứa service quản lý catalog sản phẩm và cache danh sách.
package catalogsvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/base/service"
	catalogdto "github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/dto"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/models"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/common"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
)

// ProductService là cấu trúc chứa các phương thức liên quan đến sản phẩm.
// Mọi đường ghi (create/update/delete/điều chỉnh tồn kho) đều invalidate
// cache danh sách một cách đồng bộ trước khi trả về.
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[models.Product]
	cache *ProductListCache
}

// NewProductService tạo mới ProductService.
// TTL cache lấy từ cấu hình (PRODUCT_CACHE_TTL_SEC), mặc định 5 phút.
func NewProductService() (*ProductService, error) {
	productCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	ttl := DefaultCacheTTL
	if global.ServerConfig != nil && global.ServerConfig.ProductCacheTTLSec > 0 {
		ttl = time.Duration(global.ServerConfig.ProductCacheTTLSec) * time.Second
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Product](productCollection),
		cache:                NewProductListCache(ttl),
	}, nil
}

var (
	productServiceInstance *ProductService
	productServiceOnce     sync.Once
	productServiceErr      error
)

// GetProductService trả về instance duy nhất của ProductService (singleton pattern).
// Cache danh sách chỉ có MỘT slot cho toàn hệ thống, nên mọi nơi ghi sản phẩm
// (handler catalog, đường trừ tồn kho của đơn hàng) phải dùng chung instance này
// để invalidation chạm đúng slot mà endpoint danh sách đang đọc.
func GetProductService() (*ProductService, error) {
	productServiceOnce.Do(func() {
		productServiceInstance, productServiceErr = NewProductService()
	})
	return productServiceInstance, productServiceErr
}

// Cache trả về cache danh sách sản phẩm (dùng bởi test và các service khác
// cần invalidate sau khi ghi trực tiếp vào collection).
func (s *ProductService) Cache() *ProductListCache {
	return s.cache
}

// ListCached trả về danh sách sản phẩm qua cache: snapshot còn hạn được trả
// ngay không chạm persistence, hết hạn thì đọc full collection theo
// createdAt giảm dần.
func (s *ProductService) ListCached(ctx context.Context) ([]models.Product, error) {
	return s.cache.Get(ctx, func(ctx context.Context) ([]models.Product, error) {
		opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
		return s.BaseServiceMongoImpl.Find(ctx, nil, opts)
	})
}

// Create thêm sản phẩm mới. ProductId để trống thì sinh uuid.
// Invalidate cache đồng bộ sau khi insert thành công.
func (s *ProductService) Create(ctx context.Context, data models.Product) (models.Product, error) {
	if data.ProductId == "" {
		data.ProductId = uuid.NewString()
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, data)
	if err != nil {
		return created, err
	}

	s.cache.Invalidate()
	return created, nil
}

// UpdateByProductId sửa toàn bộ trường nội dung của sản phẩm theo productId.
// Không tìm thấy → ErrNotFound (404). Invalidate cache đồng bộ khi thành công.
func (s *ProductService) UpdateByProductId(ctx context.Context, productId string, input *catalogdto.ProductUpdateInput) (models.Product, error) {
	update := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"name":            input.Name,
			"price":           input.Price,
			"category":        input.Category,
			"description":     input.Description,
			"story":           input.Story,
			"notes":           input.Notes,
			"imageUrl":        input.ImageUrl,
			"overlayImageUrl": input.OverlayImageUrl,
			"rating":          input.Rating,
			"sku":             input.Sku,
			"unitLabel":       input.UnitLabel,
			"stock":           input.Stock,
		},
	}

	updated, err := s.BaseServiceMongoImpl.UpdateOne(ctx, bson.M{"productId": productId}, update, nil)
	if err != nil {
		return updated, err
	}

	s.cache.Invalidate()
	return updated, nil
}

// DeleteByProductId xóa sản phẩm theo productId.
// Xóa lần hai (hoặc xóa productId không tồn tại) trả về cùng một ErrNotFound.
// Invalidate cache đồng bộ khi thành công.
func (s *ProductService) DeleteByProductId(ctx context.Context, productId string) error {
	if err := s.BaseServiceMongoImpl.DeleteOne(ctx, bson.M{"productId": productId}); err != nil {
		return err
	}

	s.cache.Invalidate()
	return nil
}

// AdjustStock cộng delta (âm để trừ) vào tồn kho của sản phẩm.
// Dùng bởi đường tạo đơn hàng; đi qua cùng đường invalidate như các
// mutation khác. Khi trừ, filter yêu cầu đủ tồn kho để stock không âm;
// không match (sản phẩm không tồn tại hoặc thiếu hàng) → ErrNotFound.
func (s *ProductService) AdjustStock(ctx context.Context, productId string, delta int64) error {
	filter := bson.M{"productId": productId}
	if delta < 0 {
		filter["stock"] = bson.M{"$gte": -delta}
	}
	update := bson.M{
		"$inc": bson.M{"stock": delta},
		"$set": bson.M{"updatedAt": time.Now().UnixMilli()},
	}

	result, err := s.Collection().UpdateOne(ctx, filter, update)
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}

	s.cache.Invalidate()
	return nil
}
