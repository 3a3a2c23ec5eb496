// Package models - model đơn hàng (Order) thuộc domain order.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CartItem là một dòng hàng trong giỏ của đơn hàng.
type CartItem struct {
	ProductName  string  `json:"productName" bson:"productName"`
	ProductPrice float64 `json:"productPrice" bson:"productPrice"`
	Quantity     int     `json:"quantity" bson:"quantity"`
}

// Order định nghĩa mô hình đơn hàng.
// OrderDate giữ nguyên dạng chuỗi ISO-8601 như dữ liệu cửa hàng gửi lên;
// engine phân tích chuỗi này khi tính thống kê.
type Order struct {
	ID             primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	OrderID        string             `json:"orderId" bson:"orderId" index:"unique"`
	CustomerName   string             `json:"customerName" bson:"customerName" index:"single"`
	Email          string             `json:"email,omitempty" bson:"email,omitempty"`
	OrderDate      string             `json:"orderDate" bson:"orderDate"`
	OrderStatus    string             `json:"orderStatus" bson:"orderStatus" index:"single"`
	CartItems      []CartItem         `json:"cartItems" bson:"cartItems"`
	TrackingNumber string             `json:"trackingNumber,omitempty" bson:"trackingNumber,omitempty"`
	Carrier        string             `json:"carrier,omitempty" bson:"carrier,omitempty"`
	Tax            float64            `json:"tax" bson:"tax"`
	Total          float64            `json:"total" bson:"total"`
	CreatedAt      int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt      int64              `json:"updatedAt" bson:"updatedAt"`
}

// Subtotal tính tổng tiền hàng trước thuế.
func (o *Order) Subtotal() float64 {
	var sum float64
	for _, item := range o.CartItems {
		sum += item.ProductPrice * float64(item.Quantity)
	}
	return sum
}
