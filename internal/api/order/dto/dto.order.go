// Package orderdto chứa DTO cho domain order.
package orderdto

// CartItemInput là một dòng hàng trong input tạo đơn.
type CartItemInput struct {
	ProductName  string  `json:"productName" validate:"required"`
	ProductPrice float64 `json:"productPrice" validate:"gte=0"`
	Quantity     int     `json:"quantity" validate:"gte=0"`
}

// OrderCreateInput là input để tạo đơn hàng.
// Tax và Total do service tính (5% trên tổng tiền hàng), client không gửi lên.
type OrderCreateInput struct {
	OrderID      string          `json:"orderId" validate:"required"`
	CustomerName string          `json:"customerName" validate:"required"`
	Email        string          `json:"email,omitempty" validate:"omitempty,email"`
	OrderDate    string          `json:"orderDate" validate:"required"`
	OrderStatus  string          `json:"orderStatus" validate:"required,oneof=completed pending canceled"`
	CartItems    []CartItemInput `json:"cartItems"`
}

// OrderUpdateInput là input để cập nhật đơn hàng.
type OrderUpdateInput struct {
	CustomerName   string          `json:"customerName,omitempty"`
	Email          string          `json:"email,omitempty" validate:"omitempty,email"`
	OrderDate      string          `json:"orderDate,omitempty"`
	OrderStatus    string          `json:"orderStatus,omitempty" validate:"omitempty,oneof=completed pending canceled"`
	CartItems      []CartItemInput `json:"cartItems,omitempty"`
	TrackingNumber string          `json:"trackingNumber,omitempty"`
	Carrier        string          `json:"carrier,omitempty"`
}
