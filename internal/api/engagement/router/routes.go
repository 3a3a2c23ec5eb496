// Package router đăng ký các route thuộc domain engagement: Feedback, Review, FAQ (CRUD).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	engagementhdl "shop_admin/internal/api/engagement/handler"
	apirouter "shop_admin/internal/api/router"
)

// Register đăng ký tất cả route engagement lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	feedbackHandler, err := engagementhdl.NewFeedbackHandler()
	if err != nil {
		return fmt.Errorf("create feedback handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/feedback", feedbackHandler, apirouter.ReadWriteConfig)

	reviewHandler, err := engagementhdl.NewReviewHandler()
	if err != nil {
		return fmt.Errorf("create review handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/review", reviewHandler, apirouter.ReadWriteConfig)

	faqHandler, err := engagementhdl.NewFAQHandler()
	if err != nil {
		return fmt.Errorf("create FAQ handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/faq", faqHandler, apirouter.ReadWriteConfig)
	return nil
}
