// Package engagementdto chứa DTO cho domain engagement (Feedback, Review, FAQ).
package engagementdto

// FeedbackCreateInput là input để tạo phản hồi.
type FeedbackCreateInput struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email,omitempty" validate:"omitempty,email"`
	OrderID      string `json:"orderId,omitempty"`
	Rating       int    `json:"rating" validate:"gte=0,lte=5"`
	FeedbackType string `json:"feedbackType,omitempty"`
	Comments     string `json:"comments,omitempty" validate:"omitempty,no_xss"`
	Date         string `json:"date,omitempty"`
}

// FeedbackUpdateInput là input để cập nhật phản hồi.
type FeedbackUpdateInput struct {
	Rating       int    `json:"rating,omitempty" validate:"omitempty,gte=0,lte=5"`
	FeedbackType string `json:"feedbackType,omitempty"`
	Comments     string `json:"comments,omitempty" validate:"omitempty,no_xss"`
}

// ReviewCreateInput là input để tạo đánh giá sản phẩm.
type ReviewCreateInput struct {
	Rating    int    `json:"rating" validate:"required,gte=1,lte=5"`
	Review    string `json:"review,omitempty"`
	Reviewer  string `json:"reviewer,omitempty"`
	ProductID string `json:"productId,omitempty" validate:"omitempty,exists=products" transform:"str_objectid,optional"`
}

// ReviewUpdateInput là input để cập nhật đánh giá sản phẩm.
type ReviewUpdateInput struct {
	Rating int    `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Review string `json:"review,omitempty"`
}

// FAQCreateInput là input để tạo câu hỏi thường gặp.
type FAQCreateInput struct {
	Question string `json:"question" validate:"required,min=10,max=200"`
	Answer   string `json:"answer" validate:"required,min=20"`
}

// FAQUpdateInput là input để cập nhật câu hỏi thường gặp.
type FAQUpdateInput struct {
	Question string `json:"question,omitempty" validate:"omitempty,min=10,max=200"`
	Answer   string `json:"answer,omitempty" validate:"omitempty,min=20"`
}
