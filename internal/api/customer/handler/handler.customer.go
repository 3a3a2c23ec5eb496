// Package customerhdl chứa HTTP handler cho domain customer.
package customerhdl

import (
	"fmt"

	basehdl "shop_admin/internal/api/base/handler"
	customerdto "shop_admin/internal/api/customer/dto"
	customermodels "shop_admin/internal/api/customer/models"
	customersvc "shop_admin/internal/api/customer/service"
	"shop_admin/internal/common"
	"shop_admin/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerHandler xử lý các request liên quan đến khách hàng.
// InsertOne và UpdateById được override để convert order reference
// từ hex string sang ObjectID ở service.
type CustomerHandler struct {
	basehdl.BaseHandler[customermodels.Customer, customerdto.CustomerCreateInput, customerdto.CustomerUpdateInput]
	customerService *customersvc.CustomerService
}

// NewCustomerHandler tạo mới CustomerHandler
func NewCustomerHandler() (*CustomerHandler, error) {
	customerService, err := customersvc.NewCustomerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create customer service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[customermodels.Customer, customerdto.CustomerCreateInput, customerdto.CustomerUpdateInput](customerService)
	return &CustomerHandler{
		BaseHandler:     *baseHandler,
		customerService: customerService,
	}, nil
}

// InsertOne tạo khách hàng mới (override)
func (h *CustomerHandler) InsertOne(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input customerdto.CustomerCreateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		customer, err := h.customerService.CreateCustomer(c.Context(), &input)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// UpdateById cập nhật khách hàng theo ID (override)
func (h *CustomerHandler) UpdateById(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id := h.GetIDFromContext(c)
		if !primitive.IsValidObjectID(id) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		var input customerdto.CustomerUpdateInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		customer, err := h.customerService.UpdateCustomer(c.Context(), utility.String2ObjectID(id), &input)
		h.HandleResponse(c, customer, err)
		return nil
	})
}

// HandleAddOrder gắn thêm một đơn hàng vào khách hàng
func (h *CustomerHandler) HandleAddOrder(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		customerID := c.Params("id")
		orderID := c.Params("orderId")
		if !primitive.IsValidObjectID(customerID) || !primitive.IsValidObjectID(orderID) {
			h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationFormat, "ID không hợp lệ", common.StatusBadRequest, nil))
			return nil
		}
		customer, err := h.customerService.AddOrderReference(c.Context(), utility.String2ObjectID(customerID), utility.String2ObjectID(orderID))
		h.HandleResponse(c, customer, err)
		return nil
	})
}
