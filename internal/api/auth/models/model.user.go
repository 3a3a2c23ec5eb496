// Package models - model người dùng (User) thuộc domain auth.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User định nghĩa mô hình người dùng quản trị.
// Password lưu dạng "<salt_hex>$<hash_hex>" (SHA-256 + salt).
// Token chứa token xác thực mới nhất của người dùng, được cập nhật mỗi lần login.
type User struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty" index:"unique,sparse"`
	Password    string             `json:"-" bson:"password,omitempty"`
	FirebaseUID string             `json:"firebaseUid,omitempty" bson:"firebaseUid,omitempty" index:"unique,sparse"`
	AvatarURL   string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty"`
	Token       string             `json:"token" bson:"token"`
	IsBlock     bool               `json:"-" bson:"isBlock"`
	BlockNote   string             `json:"-" bson:"blockNote"`
	IsSystem    bool               `json:"isSystem,omitempty" bson:"isSystem,omitempty"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
