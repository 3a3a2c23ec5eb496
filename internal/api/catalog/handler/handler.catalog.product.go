// Package cataloghdl chứa HTTP handler cho domain catalog (Product, Category).
package cataloghdl

import (
	"fmt"

	catalogdto "shop_admin/internal/api/catalog/dto"
	catalogmodels "shop_admin/internal/api/catalog/models"
	catalogsvc "shop_admin/internal/api/catalog/service"
	basehdl "shop_admin/internal/api/base/handler"
	"shop_admin/internal/common"

	"github.com/gofiber/fiber/v3"
)

// ProductHandler xử lý các request liên quan đến sản phẩm
type ProductHandler struct {
	basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	productService *catalogsvc.ProductService
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](productService)
	return &ProductHandler{
		BaseHandler:    *baseHandler,
		productService: productService,
	}, nil
}

// HandleLowStock trả về các sản phẩm sắp hết hàng
func (h *ProductHandler) HandleLowStock(c fiber.Ctx) error {
	products, err := h.productService.FindLowStock(c.Context())
	h.HandleResponse(c, products, err)
	return nil
}

// HandleSearch tìm sản phẩm theo tên
func (h *ProductHandler) HandleSearch(c fiber.Ctx) error {
	keyword := c.Query("q")
	if keyword == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số q", common.StatusBadRequest, nil))
		return nil
	}
	products, err := h.productService.SearchByName(c.Context(), keyword)
	h.HandleResponse(c, products, err)
	return nil
}
