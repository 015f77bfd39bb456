package orderhdl

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "github.com/syrwx/parfum-djonkoud-sub000/internal/api/base/handler"
	orderdto "github.com/syrwx/parfum-djonkoud-sub000/internal/api/order/dto"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/order/models"
	ordersvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/order/service"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/common"
)

// OrderHandler xử lý các yêu cầu liên quan đến đơn hàng
type OrderHandler struct {
	*basehdl.BaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderStatusUpdateInput]
	OrderService *ordersvc.OrderService
}

// NewOrderHandler khởi tạo OrderHandler mới
func NewOrderHandler() (*OrderHandler, error) {
	service, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}
	hdl := &OrderHandler{OrderService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Order, orderdto.OrderCreateInput, orderdto.OrderStatusUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleCreate xử lý POST /api/orders (public, checkout từ storefront).
func (h *OrderHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input orderdto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		created, err := h.OrderService.Create(c.Context(), &input)
		h.HandleResponseWithStatus(c, common.StatusCreated, created, err)
		return nil
	})
}

// HandleList xử lý GET /api/orders (admin).
// Mặc định trả toàn bộ đơn, mới nhất trước; truyền ?page=&limit= để phân trang.
func (h *OrderHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		if pageStr := c.Query("page"); pageStr != "" {
			page, err := strconv.ParseInt(pageStr, 10, 64)
			if err != nil || page < 1 {
				h.HandleResponse(c, nil, common.ErrInvalidInput)
				return nil
			}
			limit, err := strconv.ParseInt(c.Query("limit", "20"), 10, 64)
			if err != nil || limit < 1 {
				h.HandleResponse(c, nil, common.ErrInvalidInput)
				return nil
			}

			result, err := h.OrderService.ListPaginated(c.Context(), page, limit)
			h.HandleResponse(c, result, err)
			return nil
		}

		orders, err := h.OrderService.List(c.Context())
		h.HandleResponse(c, orders, err)
		return nil
	})
}

// HandleUpdateStatus xử lý PUT /api/orders/:id/status (admin).
func (h *OrderHandler) HandleUpdateStatus(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		idStr := c.Params("id")
		if !primitive.IsValidObjectID(idStr) {
			h.HandleResponse(c, nil, common.NewError(
				common.ErrCodeValidationFormat,
				fmt.Sprintf("ID %q không đúng định dạng ObjectID", idStr),
				common.StatusBadRequest,
				nil,
			))
			return nil
		}
		id, _ := primitive.ObjectIDFromHex(idStr)

		var input orderdto.OrderStatusUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.OrderService.UpdateStatus(c.Context(), id, input.Status)
		h.HandleResponse(c, updated, err)
		return nil
	})
}
