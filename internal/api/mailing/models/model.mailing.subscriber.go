// Package models - model người đăng ký nhận tin (Subscriber) thuộc domain mailing.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber là một địa chỉ email trong danh sách nhận bản tin.
type Subscriber struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email,omitempty" index:"unique,sparse"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
