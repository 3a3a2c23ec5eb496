// Package notificationsvc chứa service cho domain notification:
// tổng hợp notification feed và theo dõi trạng thái đã đọc.
package notificationsvc

import (
	"context"
	"fmt"
	"sync"
	"time"

	basesvc "shop_admin/internal/api/base/service"
	engagementsvc "shop_admin/internal/api/engagement/service"
	"shop_admin/internal/api/events"
	notificationmodels "shop_admin/internal/api/notification/models"
	catalogsvc "shop_admin/internal/api/catalog/service"
	ordersvc "shop_admin/internal/api/order/service"
	"shop_admin/internal/common"
	"shop_admin/internal/global"
	"shop_admin/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Số feedback mới nhất đưa vào feed.
const recentFeedbackLimit = 20

// FeedItem là một item trong notification feed, kèm trạng thái đã đọc của user.
type FeedItem struct {
	ItemType string      `json:"itemType"`
	ItemID   string      `json:"itemId"`
	Read     bool        `json:"read"`
	Data     interface{} `json:"data"`
}

// Feed là kết quả tổng hợp notification feed cho một user.
type Feed struct {
	PendingOrders  []FeedItem `json:"pendingOrders"`
	RecentFeedback []FeedItem `json:"recentFeedback"`
	LowStock       []FeedItem `json:"lowStock"`
	UnreadCount    int        `json:"unreadCount"`
}

// feedSources là dữ liệu nguồn của feed, dùng chung cho mọi user nên cache được.
type feedSources struct {
	pendingOrders []FeedItem
	recentFb      []FeedItem
	lowStock      []FeedItem
}

var (
	feedCache          = utility.NewCache(2*time.Minute, 5*time.Minute)
	invalidateInitOnce sync.Once
)

const feedCacheKey = "notification_feed_sources"

// registerCacheInvalidation xóa cache feed khi dữ liệu nguồn thay đổi.
func registerCacheInvalidation() {
	invalidateInitOnce.Do(func() {
		events.OnDataChanged(func(ctx context.Context, e events.DataChangeEvent) {
			switch e.CollectionName {
			case global.ColNames.Orders, global.ColNames.Feedbacks, global.ColNames.Products:
				feedCache.Delete(feedCacheKey)
			}
		})
	})
}

// NotificationService tổng hợp notification feed từ đơn hàng chờ xử lý,
// phản hồi mới và sản phẩm sắp hết hàng.
type NotificationService struct {
	readService     *basesvc.BaseServiceMongoImpl[notificationmodels.NotificationRead]
	orderService    *ordersvc.OrderService
	feedbackService *engagementsvc.FeedbackService
	productService  *catalogsvc.ProductService
}

// NewNotificationService tạo mới NotificationService
func NewNotificationService() (*NotificationService, error) {
	readCollection, exist := global.RegistryCollections.Get(global.ColNames.NotificationReads)
	if !exist {
		return nil, fmt.Errorf("failed to get notification_reads collection: %v", common.ErrNotFound)
	}

	orderService, err := ordersvc.NewOrderService()
	if err != nil {
		return nil, err
	}
	feedbackService, err := engagementsvc.NewFeedbackService()
	if err != nil {
		return nil, err
	}
	productService, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, err
	}

	registerCacheInvalidation()

	return &NotificationService{
		readService:     basesvc.NewBaseServiceMongo[notificationmodels.NotificationRead](readCollection),
		orderService:    orderService,
		feedbackService: feedbackService,
		productService:  productService,
	}, nil
}

// loadSources lấy dữ liệu nguồn của feed, ưu tiên cache.
func (s *NotificationService) loadSources(ctx context.Context) (*feedSources, error) {
	if cached, found := feedCache.Get(feedCacheKey); found {
		return cached.(*feedSources), nil
	}

	pendingOrders, err := s.orderService.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	recentFb, err := s.feedbackService.FindRecent(ctx, recentFeedbackLimit)
	if err != nil {
		return nil, err
	}
	lowStock, err := s.productService.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}

	sources := &feedSources{
		pendingOrders: make([]FeedItem, 0, len(pendingOrders)),
		recentFb:      make([]FeedItem, 0, len(recentFb)),
		lowStock:      make([]FeedItem, 0, len(lowStock)),
	}
	for _, order := range pendingOrders {
		sources.pendingOrders = append(sources.pendingOrders, FeedItem{
			ItemType: "order",
			ItemID:   order.ID.Hex(),
			Data:     order,
		})
	}
	for _, feedback := range recentFb {
		sources.recentFb = append(sources.recentFb, FeedItem{
			ItemType: "feedback",
			ItemID:   feedback.ID.Hex(),
			Data:     feedback,
		})
	}
	for _, product := range lowStock {
		sources.lowStock = append(sources.lowStock, FeedItem{
			ItemType: "low_stock",
			ItemID:   product.ID.Hex(),
			Data:     product,
		})
	}

	feedCache.Set(feedCacheKey, sources)
	return sources, nil
}

// loadReadSet lấy tập các item user đã đọc, key dạng "<itemType>:<itemId>".
func (s *NotificationService) loadReadSet(ctx context.Context, userID primitive.ObjectID) (map[string]bool, error) {
	reads, err := s.readService.Find(ctx, bson.M{"userId": userID}, nil)
	if err != nil {
		return nil, err
	}
	readSet := make(map[string]bool, len(reads))
	for _, read := range reads {
		readSet[read.ItemType+":"+read.ItemID] = true
	}
	return readSet, nil
}

// annotate gắn trạng thái đã đọc cho từng item và đếm số chưa đọc.
func annotate(items []FeedItem, readSet map[string]bool, unread *int) []FeedItem {
	result := make([]FeedItem, len(items))
	for i, item := range items {
		item.Read = readSet[item.ItemType+":"+item.ItemID]
		if !item.Read {
			*unread++
		}
		result[i] = item
	}
	return result
}

// BuildFeed tổng hợp notification feed cho một user.
func (s *NotificationService) BuildFeed(ctx context.Context, userID primitive.ObjectID) (*Feed, error) {
	sources, err := s.loadSources(ctx)
	if err != nil {
		return nil, err
	}
	readSet, err := s.loadReadSet(ctx, userID)
	if err != nil {
		return nil, err
	}

	feed := &Feed{}
	feed.PendingOrders = annotate(sources.pendingOrders, readSet, &feed.UnreadCount)
	feed.RecentFeedback = annotate(sources.recentFb, readSet, &feed.UnreadCount)
	feed.LowStock = annotate(sources.lowStock, readSet, &feed.UnreadCount)
	return feed, nil
}

// MarkRead đánh dấu một item đã đọc cho user. Idempotent nhờ unique index.
func (s *NotificationService) MarkRead(ctx context.Context, userID primitive.ObjectID, itemType string, itemID string) error {
	filter := bson.M{
		"userId":   userID,
		"itemType": itemType,
		"itemId":   itemID,
	}
	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"userId":   userID,
			"itemType": itemType,
			"itemId":   itemID,
		},
	}
	_, err := s.readService.Upsert(ctx, filter, updateData)
	return err
}
