// Package engagementhdl chứa HTTP handler cho domain engagement.
package engagementhdl

import (
	"fmt"

	basehdl "shop_admin/internal/api/base/handler"
	engagementdto "shop_admin/internal/api/engagement/dto"
	engagementmodels "shop_admin/internal/api/engagement/models"
	engagementsvc "shop_admin/internal/api/engagement/service"
)

// FeedbackHandler xử lý các request liên quan đến phản hồi khách hàng
type FeedbackHandler struct {
	basehdl.BaseHandler[engagementmodels.Feedback, engagementdto.FeedbackCreateInput, engagementdto.FeedbackUpdateInput]
}

// NewFeedbackHandler tạo mới FeedbackHandler
func NewFeedbackHandler() (*FeedbackHandler, error) {
	feedbackService, err := engagementsvc.NewFeedbackService()
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[engagementmodels.Feedback, engagementdto.FeedbackCreateInput, engagementdto.FeedbackUpdateInput](feedbackService)
	return &FeedbackHandler{
		BaseHandler: *baseHandler,
	}, nil
}

// ReviewHandler xử lý các request liên quan đến đánh giá sản phẩm
type ReviewHandler struct {
	basehdl.BaseHandler[engagementmodels.Review, engagementdto.ReviewCreateInput, engagementdto.ReviewUpdateInput]
}

// NewReviewHandler tạo mới ReviewHandler
func NewReviewHandler() (*ReviewHandler, error) {
	reviewService, err := engagementsvc.NewReviewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create review service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[engagementmodels.Review, engagementdto.ReviewCreateInput, engagementdto.ReviewUpdateInput](reviewService)
	return &ReviewHandler{
		BaseHandler: *baseHandler,
	}, nil
}

// FAQHandler xử lý các request liên quan đến câu hỏi thường gặp
type FAQHandler struct {
	basehdl.BaseHandler[engagementmodels.FAQ, engagementdto.FAQCreateInput, engagementdto.FAQUpdateInput]
}

// NewFAQHandler tạo mới FAQHandler
func NewFAQHandler() (*FAQHandler, error) {
	faqService, err := engagementsvc.NewFAQService()
	if err != nil {
		return nil, fmt.Errorf("failed to create FAQ service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[engagementmodels.FAQ, engagementdto.FAQCreateInput, engagementdto.FAQUpdateInput](faqService)
	return &FAQHandler{
		BaseHandler: *baseHandler,
	}, nil
}
