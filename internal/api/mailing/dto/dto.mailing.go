// Package mailingdto chứa DTO cho domain mailing.
package mailingdto

// SubscriberCreateInput là input để đăng ký nhận tin.
type SubscriberCreateInput struct {
	Email string `json:"email" validate:"required,email"`
}

// SubscriberUpdateInput là input để cập nhật người đăng ký.
type SubscriberUpdateInput struct {
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// SendThankYouInput là input để gửi email cảm ơn cho một người đăng ký.
type SendThankYouInput struct {
	Email string `json:"email" validate:"required,email"`
}

// BroadcastInput là input để gửi bản tin cho toàn bộ danh sách.
type BroadcastInput struct {
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}
