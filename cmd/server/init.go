package main

import (
	"context"

	"shop_admin/config"
	authmodels "shop_admin/internal/api/auth/models"
	catalogmodels "shop_admin/internal/api/catalog/models"
	customermodels "shop_admin/internal/api/customer/models"
	engagementmodels "shop_admin/internal/api/engagement/models"
	mailingmodels "shop_admin/internal/api/mailing/models"
	notificationmodels "shop_admin/internal/api/notification/models"
	ordermodels "shop_admin/internal/api/order/models"
	"shop_admin/internal/database"
	"shop_admin/internal/global"
	"shop_admin/internal/utility"

	"github.com/sirupsen/logrus"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initColNames()         // Khởi tạo tên các collection trong database
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initFirebase()         // Khởi tạo Firebase
}

// Hàm khởi tạo tên các collection trong database
func initColNames() {
	global.ColNames.Users = "users"
	global.ColNames.Products = "products"
	global.ColNames.Categories = "categories"
	global.ColNames.Orders = "orders"
	global.ColNames.Customers = "customers"
	global.ColNames.Feedbacks = "feedbacks"
	global.ColNames.Reviews = "reviews"
	global.ColNames.FAQs = "faqs"
	global.ColNames.Subscribers = "subscribers"
	global.ColNames.NotificationReads = "notification_reads"

	logrus.Info("Initialized collection names") // Ghi log thông báo đã khởi tạo tên các collection
}

// Hàm khởi tạo validator
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo database và các collection nếu chưa có
	dbName := global.ServerConfig.MongoDB_DBName
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session, dbName, allCollectionNames()); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections")

	// Khởi tạo index cho từng collection theo tag `index` trên model
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Users), authmodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Products), catalogmodels.Product{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Categories), catalogmodels.Category{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Orders), ordermodels.Order{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Customers), customermodels.Customer{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Feedbacks), engagementmodels.Feedback{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Reviews), engagementmodels.Review{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.FAQs), engagementmodels.FAQ{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Subscribers), mailingmodels.Subscriber{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.NotificationReads), notificationmodels.NotificationRead{})
}

// allCollectionNames liệt kê tên mọi collection của hệ thống theo global.ColNames.
func allCollectionNames() []string {
	return []string{
		global.ColNames.Users,
		global.ColNames.Products,
		global.ColNames.Categories,
		global.ColNames.Orders,
		global.ColNames.Customers,
		global.ColNames.Feedbacks,
		global.ColNames.Reviews,
		global.ColNames.FAQs,
		global.ColNames.Subscribers,
		global.ColNames.NotificationReads,
	}
}

// initFirebase khởi tạo Firebase Admin SDK
func initFirebase() {
	cfg := global.ServerConfig

	// Firebase là tùy chọn, thiếu config thì chỉ còn đăng nhập email/password
	if cfg.FirebaseProjectID == "" || cfg.FirebaseCredentialsPath == "" {
		logrus.Warn("Firebase config không đầy đủ, bỏ qua khởi tạo Firebase")
		return
	}

	err := utility.InitFirebase(cfg.FirebaseProjectID, cfg.FirebaseCredentialsPath)
	if err != nil {
		logrus.Errorf("Failed to initialize Firebase: %v", err)
		// Không fatal, hệ thống vẫn chạy với đăng nhập email/password
		return
	}

	logrus.Info("Firebase initialized successfully")
}
