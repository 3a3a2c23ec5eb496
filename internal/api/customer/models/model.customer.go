// Package models - model khách hàng (Customer) thuộc domain customer.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer định nghĩa mô hình khách hàng.
// OrderReference chứa danh sách _id của các đơn hàng thuộc về khách hàng này.
type Customer struct {
	ID              primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	FullName        string               `json:"fullName" bson:"fullName" index:"single"`
	Email           string               `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	ContactNumber   string               `json:"contactNumber,omitempty" bson:"contactNumber,omitempty"`
	DeliveryAddress string               `json:"deliveryAddress,omitempty" bson:"deliveryAddress,omitempty"`
	OrderReference  []primitive.ObjectID `json:"orderReference" bson:"orderReference"`
	CreatedAt       int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt       int64                `json:"updatedAt" bson:"updatedAt"`
}
