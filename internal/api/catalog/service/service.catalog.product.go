// Package catalogsvc chứa service data access cho domain catalog (Product, Category).
package catalogsvc

import (
	"context"
	"fmt"

	catalogmodels "shop_admin/internal/api/catalog/models"
	basesvc "shop_admin/internal/api/base/service"
	"shop_admin/internal/common"
	"shop_admin/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ProductService là service quản lý sản phẩm (CRUD + truy vấn tồn kho).
type ProductService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Product]
}

// NewProductService tạo mới ProductService
func NewProductService() (*ProductService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Products)
	if !exist {
		return nil, fmt.Errorf("failed to get products collection: %v", common.ErrNotFound)
	}

	return &ProductService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Product](collection),
	}, nil
}

// FindLowStock trả về các sản phẩm có tồn kho dưới ngưỡng cấu hình.
func (s *ProductService) FindLowStock(ctx context.Context) ([]catalogmodels.Product, error) {
	threshold := global.ServerConfig.LowStockThreshold
	filter := bson.M{"quantity": bson.M{"$lt": threshold}}
	opts := options.Find().SetSort(bson.D{{Key: "quantity", Value: 1}})
	return s.BaseServiceMongoImpl.Find(ctx, filter, opts)
}

// SearchByName tìm sản phẩm theo tên (regex, không phân biệt hoa thường).
func (s *ProductService) SearchByName(ctx context.Context, keyword string) ([]catalogmodels.Product, error) {
	filter := bson.M{"name": bson.M{"$regex": keyword, "$options": "i"}}
	return s.BaseServiceMongoImpl.Find(ctx, filter, nil)
}
