package cataloghdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "github.com/syrwx/parfum-djonkoud-sub000/internal/api/base/handler"
	catalogdto "github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/dto"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/models"
	catalogsvc "github.com/syrwx/parfum-djonkoud-sub000/internal/api/catalog/service"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/common"
)

// ProductHandler xử lý các yêu cầu liên quan đến sản phẩm
type ProductHandler struct {
	*basehdl.BaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
}

// NewProductHandler khởi tạo ProductHandler mới
func NewProductHandler() (*ProductHandler, error) {
	service, err := catalogsvc.GetProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}
	hdl := &ProductHandler{ProductService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[models.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](service.BaseServiceMongoImpl)
	return hdl, nil
}

// HandleList xử lý GET /api/products (public, qua cache).
func (h *ProductHandler) HandleList(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		data, err := h.ProductService.ListCached(c.Context())
		h.HandleResponse(c, data, err)
		return nil
	})
}

// HandleCreate xử lý POST /api/products (admin).
func (h *ProductHandler) HandleCreate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input catalogdto.ProductCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		product := models.Product{
			ProductId:       input.ProductId,
			Name:            input.Name,
			Price:           input.Price,
			Category:        input.Category,
			Description:     input.Description,
			Story:           input.Story,
			Notes:           input.Notes,
			ImageUrl:        input.ImageUrl,
			OverlayImageUrl: input.OverlayImageUrl,
			Rating:          input.Rating,
			Sku:             input.Sku,
			UnitLabel:       input.UnitLabel,
			Stock:           input.Stock,
		}

		created, err := h.ProductService.Create(c.Context(), product)
		h.HandleResponseWithStatus(c, common.StatusCreated, created, err)
		return nil
	})
}

// HandleUpdate xử lý PUT /api/products/:id (admin). :id là productId.
func (h *ProductHandler) HandleUpdate(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productId := c.Params("id")
		if productId == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		var input catalogdto.ProductUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}

		updated, err := h.ProductService.UpdateByProductId(c.Context(), productId, &input)
		h.HandleResponse(c, updated, err)
		return nil
	})
}

// HandleDelete xử lý DELETE /api/products/:id (admin). :id là productId.
// Xóa productId không tồn tại (kể cả xóa lần hai) trả về 404.
func (h *ProductHandler) HandleDelete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		productId := c.Params("id")
		if productId == "" {
			h.HandleResponse(c, nil, common.ErrRequiredField)
			return nil
		}

		err := h.ProductService.DeleteByProductId(c.Context(), productId)
		h.HandleResponse(c, nil, err)
		return nil
	})
}
