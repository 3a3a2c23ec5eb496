package cataloghdl

import (
	"fmt"

	catalogdto "shop_admin/internal/api/catalog/dto"
	catalogmodels "shop_admin/internal/api/catalog/models"
	catalogsvc "shop_admin/internal/api/catalog/service"
	basehdl "shop_admin/internal/api/base/handler"
)

// CategoryHandler xử lý các request liên quan đến danh mục sản phẩm
type CategoryHandler struct {
	basehdl.BaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	categoryService, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](categoryService)
	return &CategoryHandler{
		BaseHandler: *baseHandler,
	}, nil
}
