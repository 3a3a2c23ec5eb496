// Package mailingsvc chứa service cho domain mailing: danh sách đăng ký và gửi email qua SMTP.
package mailingsvc

import (
	"context"
	"errors"
	"fmt"

	basesvc "shop_admin/internal/api/base/service"
	mailingmodels "shop_admin/internal/api/mailing/models"
	"shop_admin/internal/common"
	"shop_admin/internal/global"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"gopkg.in/gomail.v2"
)

// BroadcastResult là kết quả gửi bản tin hàng loạt.
// Lỗi gửi từng người nhận được gom lại, không làm fail cả đợt gửi.
type BroadcastResult struct {
	Total  int               `json:"total"`
	Sent   int               `json:"sent"`
	Failed map[string]string `json:"failed"`
}

// SubscriberService là service quản lý danh sách đăng ký nhận tin.
type SubscriberService struct {
	*basesvc.BaseServiceMongoImpl[mailingmodels.Subscriber]
}

// NewSubscriberService tạo mới SubscriberService
func NewSubscriberService() (*SubscriberService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Subscribers)
	if !exist {
		return nil, fmt.Errorf("failed to get subscribers collection: %v", common.ErrNotFound)
	}

	return &SubscriberService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[mailingmodels.Subscriber](collection),
	}, nil
}

// MailerService gửi email qua SMTP cho danh sách đăng ký.
type MailerService struct {
	subscriberService *SubscriberService
	dialer            *gomail.Dialer
	from              string
}

// NewMailerService tạo mới MailerService với cấu hình SMTP từ server config.
func NewMailerService() (*MailerService, error) {
	subscriberService, err := NewSubscriberService()
	if err != nil {
		return nil, err
	}

	cfg := global.ServerConfig
	if cfg.SMTP_Host == "" {
		return nil, common.NewError(common.ErrCodeInternalServer, "Chưa cấu hình SMTP host", common.StatusInternalServerError, nil)
	}

	return &MailerService{
		subscriberService: subscriberService,
		dialer:            gomail.NewDialer(cfg.SMTP_Host, cfg.SMTP_Port, cfg.SMTP_User, cfg.SMTP_Password),
		from:              cfg.SMTP_From,
	}, nil
}

// send gửi một email HTML tới một người nhận.
func (s *MailerService) send(recipient string, subject string, htmlBody string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", htmlBody)

	return s.dialer.DialAndSend(msg)
}

// SendThankYou gửi email cảm ơn cho một người đăng ký.
// Người nhận phải có trong danh sách đăng ký.
func (s *MailerService) SendThankYou(ctx context.Context, email string) error {
	_, err := s.subscriberService.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.NewError(common.ErrCodeBusinessOperation, "Email chưa đăng ký nhận tin", common.StatusNotFound, nil)
		}
		return err
	}

	storeName := global.ServerConfig.StoreName
	body := fmt.Sprintf(`<p>Cảm ơn bạn đã đăng ký nhận bản tin của %s!</p>
<p>Chúng tôi sẽ gửi cho bạn những cập nhật và ưu đãi mới nhất.</p>`, storeName)
	if err := s.send(email, fmt.Sprintf("Cảm ơn bạn đã đăng ký %s", storeName), body); err != nil {
		logrus.WithFields(logrus.Fields{"recipient": email, "error": err.Error()}).Error("SendThankYou: Lỗi gửi email")
		return common.NewError(common.ErrCodeDeliveryEmail, "Không thể gửi email", common.StatusBadGateway, err)
	}

	logrus.WithFields(logrus.Fields{"recipient": email}).Info("SendThankYou: Đã gửi email cảm ơn")
	return nil
}

// Broadcast gửi bản tin cho toàn bộ danh sách đăng ký.
// Lỗi gửi từng người nhận được gom vào kết quả, không dừng đợt gửi.
func (s *MailerService) Broadcast(ctx context.Context, subject string, body string) (*BroadcastResult, error) {
	subscribers, err := s.subscriberService.Find(ctx, bson.M{}, nil)
	if err != nil {
		return nil, err
	}

	result := &BroadcastResult{
		Total:  len(subscribers),
		Failed: make(map[string]string),
	}

	// Footer chung dẫn về cửa hàng
	body += fmt.Sprintf(`<hr><p><a href="%s">%s</a></p>`, global.ServerConfig.FrontendURL, global.ServerConfig.StoreName)

	for _, subscriber := range subscribers {
		if subscriber.Email == "" {
			continue
		}
		if sendErr := s.send(subscriber.Email, subject, body); sendErr != nil {
			logrus.WithFields(logrus.Fields{"recipient": subscriber.Email, "error": sendErr.Error()}).Warn("Broadcast: Lỗi gửi email cho một người nhận")
			result.Failed[subscriber.Email] = sendErr.Error()
			continue
		}
		result.Sent++
	}

	logrus.WithFields(logrus.Fields{"total": result.Total, "sent": result.Sent, "failed": len(result.Failed)}).Info("Broadcast: Hoàn tất đợt gửi bản tin")
	return result, nil
}
