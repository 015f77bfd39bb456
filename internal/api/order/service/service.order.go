// Package ordersvc chứa service quản lý đơn hàng.
package ordersvc

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "github.com/syrwx/parfum-djonkoud-sub000/internal/api/base/models"
	basesvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/base/service"
	catalogsvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/service"
	orderdto "github.com/syrwx/parfum-djonkoud-sub000/internal/api/order/dto"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/order/models"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/common"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
)

// OrderService là cấu trúc chứa các phương thức liên quan đến đơn hàng
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[models.Order]
	productService *catalogsvc.ProductService
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	orderCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	productService, err := catalogsvc.GetProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to get product service: %v", err)
	}

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.Order](orderCollection),
		productService:       productService,
	}, nil
}

// Create tạo đơn hàng mới với status mặc định "pending".
// Tổng tiền tính phía server: sum(price*quantity) trừ giảm giá, không âm.
//
// Sau khi insert thành công, trừ tồn kho từng dòng hàng bằng các lệnh ghi
// ĐỘC LẬP, best-effort: không có transaction giữa đơn và tồn kho (giới hạn
// đã biết — crash giữa chừng có thể để tồn kho chưa trừ cho đơn đã đặt);
// dòng nào trừ không được (sản phẩm đã xóa, thiếu hàng) chỉ log, đơn vẫn giữ.
func (s *OrderService) Create(ctx context.Context, input *orderdto.OrderCreateInput) (models.Order, error) {
	items := make([]models.OrderItem, 0, len(input.Items))
	var subtotal int64
	for _, it := range input.Items {
		items = append(items, models.OrderItem{
			ProductId: it.ProductId,
			Name:      it.Name,
			Price:     it.Price,
			Quantity:  it.Quantity,
			ImageUrl:  it.ImageUrl,
			UnitLabel: it.UnitLabel,
		})
		subtotal += it.Price * it.Quantity
	}

	total := subtotal
	var discount *models.Discount
	if input.Discount != nil {
		discount = &models.Discount{Code: input.Discount.Code, Amount: input.Discount.Amount}
		total -= input.Discount.Amount
		if total < 0 {
			total = 0
		}
	}

	order := models.Order{
		CustomerName:  input.CustomerName,
		Phone:         input.Phone,
		Address:       input.Address,
		Items:         items,
		TotalAmount:   total,
		PaymentMethod: input.PaymentMethod,
		Status:        models.StatusPending,
		Instructions:  input.Instructions,
		Discount:      discount,
	}

	created, err := s.BaseServiceMongoImpl.InsertOne(ctx, order)
	if err != nil {
		return created, err
	}

	for _, it := range created.Items {
		if err := s.productService.AdjustStock(ctx, it.ProductId, -it.Quantity); err != nil {
			logrus.WithFields(logrus.Fields{
				"orderId":   created.ID.Hex(),
				"productId": it.ProductId,
				"quantity":  it.Quantity,
				"error":     err.Error(),
			}).Warn("Create: không trừ được tồn kho cho dòng hàng")
		}
	}

	return created, nil
}

// List trả về toàn bộ đơn hàng, mới nhất trước.
func (s *OrderService) List(ctx context.Context) ([]models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.Find(ctx, nil, opts)
}

// ListPaginated trả về đơn hàng theo trang (mới nhất trước), dùng cho
// back-office khi danh sách đã lớn.
func (s *OrderService) ListPaginated(ctx context.Context, page, limit int64) (*basemodels.PaginateResult[models.Order], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.BaseServiceMongoImpl.FindWithPagination(ctx, nil, page, limit, opts)
}

// UpdateStatus chuyển trạng thái đơn theo máy trạng thái.
// Chuyển không hợp lệ → lỗi BIZ (400); đơn không tồn tại → ErrNotFound.
func (s *OrderService) UpdateStatus(ctx context.Context, id primitive.ObjectID, newStatus string) (models.Order, error) {
	order, err := s.BaseServiceMongoImpl.FindOneById(ctx, id)
	if err != nil {
		return models.Order{}, err
	}

	if !models.CanTransition(order.Status, newStatus) {
		return models.Order{}, common.NewError(
			common.ErrCodeBusinessState,
			fmt.Sprintf("Không thể chuyển đơn từ %q sang %q", order.Status, newStatus),
			common.StatusBadRequest,
			nil,
		)
	}

	return s.BaseServiceMongoImpl.UpdateById(ctx, id, &basesvc.UpdateData{
		Set: map[string]interface{}{"status": newStatus},
	})
}
