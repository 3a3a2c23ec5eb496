// Package engagementsvc chứa service data access cho domain engagement.
package engagementsvc

import (
	"context"
	"fmt"

	basesvc "shop_admin/internal/api/base/service"
	engagementmodels "shop_admin/internal/api/engagement/models"
	"shop_admin/internal/common"
	"shop_admin/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// FeedbackService là service quản lý phản hồi khách hàng (CRUD).
type FeedbackService struct {
	*basesvc.BaseServiceMongoImpl[engagementmodels.Feedback]
}

// NewFeedbackService tạo mới FeedbackService
func NewFeedbackService() (*FeedbackService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Feedbacks)
	if !exist {
		return nil, fmt.Errorf("failed to get feedbacks collection: %v", common.ErrNotFound)
	}

	return &FeedbackService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[engagementmodels.Feedback](collection),
	}, nil
}

// FindRecent trả về các phản hồi mới nhất (dùng cho notification feed).
func (s *FeedbackService) FindRecent(ctx context.Context, limit int64) ([]engagementmodels.Feedback, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(limit)
	return s.BaseServiceMongoImpl.Find(ctx, bson.M{}, opts)
}

// ReviewService là service quản lý đánh giá sản phẩm (CRUD).
type ReviewService struct {
	*basesvc.BaseServiceMongoImpl[engagementmodels.Review]
}

// NewReviewService tạo mới ReviewService
func NewReviewService() (*ReviewService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.Reviews)
	if !exist {
		return nil, fmt.Errorf("failed to get reviews collection: %v", common.ErrNotFound)
	}

	return &ReviewService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[engagementmodels.Review](collection),
	}, nil
}

// FAQService là service quản lý câu hỏi thường gặp (CRUD).
type FAQService struct {
	*basesvc.BaseServiceMongoImpl[engagementmodels.FAQ]
}

// NewFAQService tạo mới FAQService
func NewFAQService() (*FAQService, error) {
	collection, exist := global.RegistryCollections.Get(global.ColNames.FAQs)
	if !exist {
		return nil, fmt.Errorf("failed to get faqs collection: %v", common.ErrNotFound)
	}

	return &FAQService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[engagementmodels.FAQ](collection),
	}, nil
}
