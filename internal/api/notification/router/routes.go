// Package router đăng ký các route thuộc domain notification.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"shop_admin/internal/api/middleware"
	notificationhdl "shop_admin/internal/api/notification/handler"
	apirouter "shop_admin/internal/api/router"
)

// Register đăng ký tất cả route notification lên v1.
// Feed gắn với trạng thái đã đọc của từng user nên mọi route đều yêu cầu đăng nhập.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	notificationHandler, err := notificationhdl.NewNotificationHandler()
	if err != nil {
		return fmt.Errorf("create notification handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "GET", "/feed", []fiber.Handler{authMiddleware}, notificationHandler.HandleFeed)
	apirouter.RegisterRouteWithMiddleware(v1, "/notifications", "POST", "/mark-read", []fiber.Handler{authMiddleware}, notificationHandler.HandleMarkRead)
	return nil
}
