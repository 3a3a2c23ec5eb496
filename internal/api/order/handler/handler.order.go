// Package orderhdl chứa HTTP handler cho domain order.
package orderhdl

import (
	"fmt"

	basehdl "shop_admin/internal/api/base/handler"
	orderdto "shop_admin/internal/api/order/dto"
	ordermodels "shop_admin/internal/api/order/models"
	ordersvc "shop_admin/internal/api/order/service"
	"shop_admin/internal/common"
	"shop_admin/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderHandler xử lý các request liên quan đến đơn hàng.
// InsertOne và UpdateById được override vì cart items và thuế
// phải do service tính, không đi qua transform generic.
type OrderHandler struct {
	basehdl.BaseHandler[ordermodels.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput]
	orderService *ordersvc.OrderService
}

// NewOrderHandler tạo mới OrderHandler
func NewOrderHandler() (*OrderHandler, error) {
	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, fmt.Errorf("failed to create order service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[ordermodels.Order, orderdto.OrderCreateInput, orderdto.OrderUpdateInput](orderService)
	return &OrderHandler{
		BaseHandler:  *baseHandler,
		orderService: orderService,
	}, nil
}

// InsertOne tạo đơn hàng mới (override: tính thuế ở service)
func (h *OrderHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input orderdto.OrderCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		order, err := h.orderService.CreateOrder(c.Context(), &input)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// UpdateById cập nhật đơn hàng theo ID (override: tính lại thuế khi cart thay đổi)
func (h *OrderHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		var input orderdto.OrderUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		order, err := h.orderService.UpdateOrder(c.Context(), utility.String2ObjectID(id), &input)
		h.HandleResponse(c, order, err)
		return nil
	})
}

// HandleSearch tìm đơn hàng theo mã đơn hoặc tên khách hàng
func (h *OrderHandler) HandleSearch(c fiber.Ctx) error {
	keyword := c.Query("q")
	if keyword == "" {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu tham số q", common.StatusBadRequest, nil))
		return nil
	}
	orders, err := h.orderService.Search(c.Context(), keyword)
	h.HandleResponse(c, orders, err)
	return nil
}
