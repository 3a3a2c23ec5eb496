package main

import (
	"context"
	"errors"

	authmodels "shop_admin/internal/api/auth/models"
	authsvc "shop_admin/internal/api/auth/service"
	basesvc "shop_admin/internal/api/base/service"
	"shop_admin/internal/common"
	"shop_admin/internal/global"
	"shop_admin/internal/logger"
	"shop_admin/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
)

// InitDefaultData seed tài khoản admin mặc định nếu được cấu hình.
// User seed được đánh dấu IsSystem để không bị xóa/sửa qua API thông thường.
func InitDefaultData() {
	log := logger.GetAppLogger()
	log.Info("🔄 [INIT] Starting InitDefaultData...")

	cfg := global.ServerConfig
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Info("ADMIN_EMAIL / ADMIN_PASSWORD chưa cấu hình, bỏ qua seed admin")
		return
	}

	userService, err := authsvc.NewUserService()
	if err != nil {
		log.Fatalf("Failed to initialize user service: %v", err)
	}

	ctx := basesvc.WithSystemDataInsertAllowed(context.Background())

	_, err = userService.FindOne(ctx, bson.M{"email": cfg.AdminEmail}, nil)
	if err == nil {
		log.Info("✅ [INIT] Admin user đã tồn tại, bỏ qua seed")
		return
	}
	if !errors.Is(err, common.ErrNotFound) {
		log.Fatalf("Failed to check admin user: %v", err)
	}

	hashed, err := utility.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("Failed to hash admin password: %v", err)
	}

	admin := authmodels.User{
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: hashed,
		IsSystem: true,
	}
	created, err := userService.InsertOne(ctx, admin)
	if err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	log.Infof("✅ [INIT] Admin user seeded successfully (ID: %s)", created.ID.Hex())
}
