// Package router đăng ký các route thuộc domain catalog: Product, Category (CRUD).
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "shop_admin/internal/api/catalog/handler"
	apirouter "shop_admin/internal/api/router"
)

// Register đăng ký tất cả route catalog lên v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	productHandler, err := cataloghdl.NewProductHandler()
	if err != nil {
		return fmt.Errorf("create product handler: %w", err)
	}
	v1.Get("/product/low-stock", productHandler.HandleLowStock)
	v1.Get("/product/search", productHandler.HandleSearch)
	r.RegisterCRUDRoutes(v1, "/product", productHandler, apirouter.ReadWriteConfig)

	categoryHandler, err := cataloghdl.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("create category handler: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/category", categoryHandler, apirouter.ReadWriteConfig)
	return nil
}
