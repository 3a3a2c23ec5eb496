// Package mailinghdl chứa HTTP handler cho domain mailing.
package mailinghdl

import (
	"fmt"

	basehdl "shop_admin/internal/api/base/handler"
	mailingdto "shop_admin/internal/api/mailing/dto"
	mailingmodels "shop_admin/internal/api/mailing/models"
	mailingsvc "shop_admin/internal/api/mailing/service"

	"github.com/gofiber/fiber/v3"
)

// SubscriberHandler xử lý các request liên quan đến danh sách đăng ký nhận tin
type SubscriberHandler struct {
	basehdl.BaseHandler[mailingmodels.Subscriber, mailingdto.SubscriberCreateInput, mailingdto.SubscriberUpdateInput]
}

// NewSubscriberHandler tạo mới SubscriberHandler
func NewSubscriberHandler() (*SubscriberHandler, error) {
	subscriberService, err := mailingsvc.NewSubscriberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriber service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[mailingmodels.Subscriber, mailingdto.SubscriberCreateInput, mailingdto.SubscriberUpdateInput](subscriberService)
	return &SubscriberHandler{
		BaseHandler: *baseHandler,
	}, nil
}

// MailerHandler xử lý các request gửi email
type MailerHandler struct {
	basehdl.BaseHandler[mailingmodels.Subscriber, mailingdto.SubscriberCreateInput, mailingdto.SubscriberUpdateInput]
	mailerService *mailingsvc.MailerService
}

// NewMailerHandler tạo mới MailerHandler
func NewMailerHandler() (*MailerHandler, error) {
	mailerService, err := mailingsvc.NewMailerService()
	if err != nil {
		return nil, fmt.Errorf("failed to create mailer service: %v", err)
	}
	subscriberService, err := mailingsvc.NewSubscriberService()
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriber service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[mailingmodels.Subscriber, mailingdto.SubscriberCreateInput, mailingdto.SubscriberUpdateInput](subscriberService)
	return &MailerHandler{
		BaseHandler:   *baseHandler,
		mailerService: mailerService,
	}, nil
}

// HandleSendThankYou gửi email cảm ơn cho một người đăng ký
func (h *MailerHandler) HandleSendThankYou(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input mailingdto.SendThankYouInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		err := h.mailerService.SendThankYou(c.Context(), input.Email)
		h.HandleResponse(c, nil, err)
		return nil
	})
}

// HandleBroadcast gửi bản tin cho toàn bộ danh sách đăng ký
func (h *MailerHandler) HandleBroadcast(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		var input mailingdto.BroadcastInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		if err := h.ValidateInput(&input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
		result, err := h.mailerService.Broadcast(c.Context(), input.Subject, input.Body)
		h.HandleResponse(c, result, err)
		return nil
	})
}
