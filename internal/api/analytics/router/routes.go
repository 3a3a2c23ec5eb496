// Package router đăng ký các route thống kê bán hàng.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "shop_admin/internal/api/analytics/handler"
	apirouter "shop_admin/internal/api/router"
)

// Register đăng ký tất cả route analytics lên v1.
// Thống kê là dữ liệu đọc, theo quy ước chung các route đọc được mở.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	analyticsHandler, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("create analytics handler: %w", err)
	}
	v1.Get("/analytics/products", analyticsHandler.HandleProductSales)
	v1.Get("/analytics/orders", analyticsHandler.HandleOrderSales)
	v1.Get("/analytics/customers", analyticsHandler.HandleCustomerSales)
	v1.Get("/analytics/dashboard", analyticsHandler.HandleDashboard)
	return nil
}
