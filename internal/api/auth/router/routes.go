// Package router đăng ký các route thuộc domain auth: System, Auth, User.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	authhdl "shop_admin/internal/api/auth/handler"
	basehdl "shop_admin/internal/api/base/handler"
	"shop_admin/internal/api/middleware"
	apirouter "shop_admin/internal/api/router"
)

// Register đăng ký tất cả route auth (system, auth, user) lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	if err := registerSystemRoutes(v1); err != nil {
		return err
	}
	if err := registerAuthRoutes(v1, r); err != nil {
		return err
	}
	return nil
}

func registerSystemRoutes(router fiber.Router) error {
	systemHandler, err := basehdl.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %w", err)
	}
	router.Get("/system/health", systemHandler.HandleHealth)
	return nil
}

func registerAuthRoutes(router fiber.Router, r *apirouter.Router) error {
	userHandler, err := authhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	// Route public: login và register không cần token
	router.Post("/auth/login", userHandler.HandleLogin)
	router.Post("/auth/firebase", userHandler.HandleLoginWithFirebase)
	router.Post("/auth/register", userHandler.HandleRegister)

	authOnlyMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "GET", "/me", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "POST", "/logout", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(router, "/auth", "PUT", "/change-password", []fiber.Handler{authOnlyMiddleware}, userHandler.HandleChangePassword)

	// Danh sách người dùng quản trị: chứa email nên yêu cầu đăng nhập thay vì mở như các collection khác
	apirouter.RegisterRouteWithMiddleware(router, "/user", "GET", "/find-with-pagination", []fiber.Handler{authOnlyMiddleware}, userHandler.FindWithPagination)
	apirouter.RegisterRouteWithMiddleware(router, "/user", "GET", "/count", []fiber.Handler{authOnlyMiddleware}, userHandler.CountDocuments)
	return nil
}
