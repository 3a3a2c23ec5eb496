// Package models - model đánh dấu thông báo đã đọc (NotificationRead) thuộc domain notification.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationRead đánh dấu một item trong notification feed đã được một user đọc.
// Thay thế cơ chế localStorage phía client: trạng thái đã đọc lưu server-side
// nên đồng bộ giữa các thiết bị của cùng một user.
type NotificationRead struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId" index:"compound:userId_itemType_itemId_unique"`
	ItemType  string             `json:"itemType" bson:"itemType" index:"compound:userId_itemType_itemId_unique"`
	ItemID    string             `json:"itemId" bson:"itemId" index:"compound:userId_itemType_itemId_unique"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
