package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FAQ là câu hỏi thường gặp hiển thị trên trang cửa hàng.
type FAQ struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Question  string             `json:"question" bson:"question"`
	Answer    string             `json:"answer" bson:"answer"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
