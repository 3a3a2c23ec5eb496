// Package analyticshdl chứa HTTP handler cho các endpoint thống kê bán hàng.
package analyticshdl

import (
	"fmt"

	analyticssvc "shop_admin/internal/api/analytics/service"
	basehdl "shop_admin/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// AnalyticsHandler xử lý các request thống kê sản phẩm / đơn hàng / khách hàng
type AnalyticsHandler struct {
	*basehdl.BaseHandler[interface{}, interface{}, interface{}]
	analyticsService *analyticssvc.AnalyticsService
}

// NewAnalyticsHandler tạo mới AnalyticsHandler
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	analyticsService, err := analyticssvc.NewAnalyticsService()
	if err != nil {
		return nil, fmt.Errorf("failed to create analytics service: %v", err)
	}
	return &AnalyticsHandler{
		BaseHandler:      &basehdl.BaseHandler[interface{}, interface{}, interface{}]{},
		analyticsService: analyticsService,
	}, nil
}

// HandleProductSales trả thống kê bán theo sản phẩm
func (h *AnalyticsHandler) HandleProductSales(c fiber.Ctx) error {
	summary, err := h.analyticsService.ProductSales(c.Context())
	h.HandleResponse(c, summary, err)
	return nil
}

// HandleOrderSales trả thống kê theo đơn hàng
func (h *AnalyticsHandler) HandleOrderSales(c fiber.Ctx) error {
	summary, err := h.analyticsService.OrderSales(c.Context())
	h.HandleResponse(c, summary, err)
	return nil
}

// HandleCustomerSales trả thống kê theo khách hàng
func (h *AnalyticsHandler) HandleCustomerSales(c fiber.Ctx) error {
	summary, err := h.analyticsService.CustomerSales(c.Context())
	h.HandleResponse(c, summary, err)
	return nil
}

// HandleDashboard trả cả ba thống kê cho trang tổng quan
func (h *AnalyticsHandler) HandleDashboard(c fiber.Ctx) error {
	summary, err := h.analyticsService.Dashboard(c.Context())
	h.HandleResponse(c, summary, err)
	return nil
}
