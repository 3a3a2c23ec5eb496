// Package router đăng ký các route thuộc domain mailing.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	mailinghdl "shop_admin/internal/api/mailing/handler"
	"shop_admin/internal/api/middleware"
	apirouter "shop_admin/internal/api/router"
)

// Register đăng ký tất cả route mailing lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	subscriberHandler, err := mailinghdl.NewSubscriberHandler()
	if err != nil {
		return fmt.Errorf("create subscriber handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/subscriber", subscriberHandler, apirouter.ReadWriteConfig)

	mailerHandler, err := mailinghdl.NewMailerHandler()
	if err != nil {
		return fmt.Errorf("create mailer handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/mailing", "POST", "/send-thank-you", []fiber.Handler{authMiddleware}, mailerHandler.HandleSendThankYou)
	apirouter.RegisterRouteWithMiddleware(v1, "/mailing", "POST", "/broadcast", []fiber.Handler{authMiddleware}, mailerHandler.HandleBroadcast)
	return nil
}
