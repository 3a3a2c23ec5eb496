// Package ordersvc chứa service data access cho domain order.
package ordersvc

import (
	"context"
	"fmt"
	"math"

	basesvc "shop_admin/internal/api/base/service"
	orderdto "shop_admin/internal/api/order/dto"
	ordermodels "shop_admin/internal/api/order/models"
	"shop_admin/internal/common"
	"shop_admin/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TaxRate là thuế suất áp dụng trên tổng tiền hàng của đơn.
const TaxRate = 0.05

// OrderService là service quản lý đơn hàng.
type OrderService struct {
	*basesvc.BaseServiceMongoImpl[ordermodels.Order]
}

// NewOrderService tạo mới OrderService
func NewOrderService() (*OrderService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Orders)
	if !exist {
		return nil, fmt.Errorf("failed to get orders collection: %v", common.ErrNotFound)
	}

	return &OrderService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[ordermodels.Order](collection),
	}, nil
}

// round2 làm tròn số tiền về 2 chữ số thập phân.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// mapCartItems chuyển cart items từ DTO sang model.
func mapCartItems(items []orderdto.CartItemInput) []ordermodels.CartItem {
	cartItems := make([]ordermodels.CartItem, 0, len(items))
	for _, item := range items {
		cartItems = append(cartItems, ordermodels.CartItem{
			ProductName:  item.ProductName,
			ProductPrice: item.ProductPrice,
			Quantity:     item.Quantity,
		})
	}
	return cartItems
}

// CreateOrder tạo đơn hàng mới, tính thuế 5% trên tổng tiền hàng.
func (s *OrderService) CreateOrder(ctx context.Context, input *orderdto.OrderCreateInput) (ordermodels.Order, error) {
	order := ordermodels.Order{
		OrderID:      input.OrderID,
		CustomerName: input.CustomerName,
		Email:        input.Email,
		OrderDate:    input.OrderDate,
		OrderStatus:  input.OrderStatus,
		CartItems:    mapCartItems(input.CartItems),
	}

	subtotal := order.Subtotal()
	order.Tax = round2(subtotal * TaxRate)
	order.Total = round2(subtotal + order.Tax)

	return s.BaseServiceMongoImpl.InsertOne(ctx, order)
}

// UpdateOrder cập nhật đơn hàng. Nếu cart items thay đổi, tính lại thuế và tổng tiền.
func (s *OrderService) UpdateOrder(ctx context.Context, id primitive.ObjectID, input *orderdto.OrderUpdateInput) (ordermodels.Order, error) {
	set := map[string]interface{}{}
	if input.CustomerName != "" {
		set["customerName"] = input.CustomerName
	}
	if input.Email != "" {
		set["email"] = input.Email
	}
	if input.OrderDate != "" {
		set["orderDate"] = input.OrderDate
	}
	if input.OrderStatus != "" {
		set["orderStatus"] = input.OrderStatus
	}
	if input.TrackingNumber != "" {
		set["trackingNumber"] = input.TrackingNumber
	}
	if input.Carrier != "" {
		set["carrier"] = input.Carrier
	}
	if input.CartItems != nil {
		cartItems := mapCartItems(input.CartItems)
		order := ordermodels.Order{CartItems: cartItems}
		subtotal := order.Subtotal()
		tax := round2(subtotal * TaxRate)
		set["cartItems"] = cartItems
		set["tax"] = tax
		set["total"] = round2(subtotal + tax)
	}

	if len(set) == 0 {
		return s.BaseServiceMongoImpl.FindOneById(ctx, id)
	}

	updateData := &basesvc.UpdateData{Set: set}
	return s.BaseServiceMongoImpl.UpdateById(ctx, id, updateData)
}

// Search tìm đơn hàng theo mã đơn hoặc tên khách hàng (regex, không phân biệt hoa thường).
func (s *OrderService) Search(ctx context.Context, keyword string) ([]ordermodels.Order, error) {
	filter := bson.M{
		"$or": []bson.M{
			{"orderId": bson.M{"$regex": keyword, "$options": "i"}},
			{"customerName": bson.M{"$regex": keyword, "$options": "i"}},
		},
	}
	return s.BaseServiceMongoImpl.Find(ctx, filter, nil)
}

// FindPending trả về các đơn hàng đang chờ xử lý (dùng cho notification feed).
func (s *OrderService) FindPending(ctx context.Context) ([]ordermodels.Order, error) {
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{"orderStatus": "pending"}, nil)
}
