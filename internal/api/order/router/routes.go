// Package router đăng ký các route thuộc domain order.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	orderhdl "shop_admin/internal/api/order/handler"
	apirouter "shop_admin/internal/api/router"
)

// orderCRUDConfig tắt các operation ghi hàng loạt và upsert:
// chúng đi qua transform generic nên không tính lại thuế khi cart thay đổi.
var orderCRUDConfig = apirouter.CRUDConfig{
	InsOne: true,
	Find:   true, FindOne: true, FindById: true,
	FindIds: true, Paginate: true,
	UpdById: true,
	DelOne:  true, DelMany: true, DelById: true,
	FindDel: true,
	Count:   true, Distinct: true, Exists: true,
}

// Register đăng ký tất cả route order lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	orderHandler, err := orderhdl.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("create order handler: %w", err)
	}
	v1.Get("/order/search", orderHandler.HandleSearch)
	r.RegisterCRUDRoutes(v1, "/order", orderHandler, orderCRUDConfig)
	return nil
}
