package global

import (
	"shop_admin/config"
	"shop_admin/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionNames chứa tên các collection trong MongoDB
type CollectionNames struct {
	Users             string // Tên collection cho người dùng quản trị
	Products          string // Tên collection cho sản phẩm
	Categories        string // Tên collection cho danh mục sản phẩm
	Orders            string // Tên collection cho đơn hàng
	Customers         string // Tên collection cho khách hàng
	Feedbacks         string // Tên collection cho phản hồi của khách
	Reviews           string // Tên collection cho đánh giá sản phẩm
	FAQs              string // Tên collection cho câu hỏi thường gặp
	Subscribers       string // Tên collection cho người đăng ký nhận tin
	NotificationReads string // Tên collection đánh dấu thông báo đã đọc
}

// Các biến toàn cục
var Validate *validator.Validate            // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client           // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration      // Cấu hình của server
var ColNames CollectionNames                // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
