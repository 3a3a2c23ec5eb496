package catalogsvc

import (
	"fmt"

	catalogmodels "shop_admin/internal/api/catalog/models"
	basesvc "shop_admin/internal/api/base/service"
	"shop_admin/internal/common"
	"shop_admin/internal/global"
)

// CategoryService là service quản lý danh mục sản phẩm (CRUD).
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](collection),
	}, nil
}
