// Package models - model tương tác khách hàng (Feedback, Review, FAQ) thuộc domain engagement.
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Feedback là phản hồi của khách hàng về một đơn hàng hoặc dịch vụ.
type Feedback struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email,omitempty" bson:"email,omitempty"`
	OrderID      string             `json:"orderId,omitempty" bson:"orderId,omitempty" index:"single"`
	Rating       int                `json:"rating" bson:"rating"`
	FeedbackType string             `json:"feedbackType,omitempty" bson:"feedbackType,omitempty"`
	Comments     string             `json:"comments,omitempty" bson:"comments,omitempty"`
	Date         string             `json:"date,omitempty" bson:"date,omitempty"`
	CreatedAt    int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt    int64              `json:"updatedAt" bson:"updatedAt"`
}
