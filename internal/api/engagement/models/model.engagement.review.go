package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Review là đánh giá sản phẩm của khách hàng.
type Review struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Rating    int                `json:"rating" bson:"rating"`
	Review    string             `json:"review,omitempty" bson:"review,omitempty"`
	Reviewer  string             `json:"reviewer,omitempty" bson:"reviewer,omitempty"`
	ProductID primitive.ObjectID `json:"productId,omitempty" bson:"productId,omitempty" index:"single"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
