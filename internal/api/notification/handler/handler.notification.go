// Package notificationhdl chứa HTTP handler cho domain notification.
package notificationhdl

import (
	"fmt"

	basehdl "shop_admin/internal/api/base/handler"
	notificationdto "shop_admin/internal/api/notification/dto"
	notificationsvc "shop_admin/internal/api/notification/service"
	"shop_admin/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationHandler xử lý các request liên quan đến notification feed
type NotificationHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	notificationService *notificationsvc.NotificationService
}

// NewNotificationHandler tạo mới NotificationHandler
func NewNotificationHandler() (*NotificationHandler, error) {
	notificationService, err := notificationsvc.NewNotificationService()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification service: %v", err)
	}
	return &NotificationHandler{
		BaseHandler:         &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		notificationService: notificationService,
	}, nil
}

// currentUserID lấy ObjectID của user đang đăng nhập từ context.
func currentUserID(c fiber.Ctx) (primitive.ObjectID, error) {
	userID := c.Locals("user_id")
	if userID == nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeAuth, "User not authenticated", common.StatusUnauthorized, nil)
	}
	objID, err := primitive.ObjectIDFromHex(userID.(string))
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, "Invalid user ID", common.StatusBadRequest, err)
	}
	return objID, nil
}

// HandleFeed trả về notification feed cho user đang đăng nhập
func (h *NotificationHandler) HandleFeed(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	feed, err := h.notificationService.BuildFeed(c.Context(), userID)
	h.HandleResponse(c, feed, err)
	return nil
}

// HandleMarkRead đánh dấu một item trong feed đã đọc
func (h *NotificationHandler) HandleMarkRead(c fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	var input notificationdto.MarkReadInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	err = h.notificationService.MarkRead(c.Context(), userID, input.ItemType, input.ItemID)
	h.HandleResponse(c, nil, err)
	return nil
}
