// Package router đăng ký các route thuộc domain customer.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	customerhdl "shop_admin/internal/api/customer/handler"
	"shop_admin/internal/api/middleware"
	apirouter "shop_admin/internal/api/router"
)

// customerCRUDConfig tắt các operation ghi đi qua transform generic
// (order reference cần convert hex string sang ObjectID ở service).
var customerCRUDConfig = apirouter.CRUDConfig{
	InsOne: true,
	Find:   true, FindOne: true, FindById: true,
	FindIds: true, Paginate: true,
	UpdById: true,
	DelOne:  true, DelMany: true, DelById: true,
	FindDel: true,
	Count:   true, Distinct: true, Exists: true,
}

// Register đăng ký tất cả route customer lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	customerHandler, err := customerhdl.NewCustomerHandler()
	if err != nil {
		return fmt.Errorf("create customer handler: %w", err)
	}
	authMiddleware := middleware.AuthMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/customer", "POST", "/add-order/:id/:orderId", []fiber.Handler{authMiddleware}, customerHandler.HandleAddOrder)
	r.RegisterCRUDRoutes(v1, "/customer", customerHandler, customerCRUDConfig)
	return nil
}
