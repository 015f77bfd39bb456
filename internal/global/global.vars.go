package global

import (
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syrwx/parfum-djonkoud-sub000/config"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/registry"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Products   string // Tên collection cho sản phẩm
	Orders     string // Tên collection cho đơn hàng
	AdminUsers string // Tên collection cho bản ghi admin (một bản ghi duy nhất)
	Settings   string // Tên collection singleton cho cấu hình cửa hàng
}

// Các biến toàn cục
var Validate *validator.Validate                                           // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                                          // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration                                     // Cấu hình của server
var MongoDB_ColNames MongoDB_CollectionName = MongoDB_CollectionName{}     // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
