// Package database - Index cho các collection storefront.
package database

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
)

// CreateStorefrontIndexes tạo các index cho products, orders, admin_users.
// Gọi một lần khi khởi động, sau khi đã đăng ký collections.
func CreateStorefrontIndexes(ctx context.Context, db *mongo.Database) error {
	// products: productId unique — định danh sản phẩm ổn định, không trùng
	products := db.Collection(global.MongoDB_ColNames.Products)
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "productId", Value: 1}},
		Options: options.Index().SetName("product_product_id").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// products: createdAt desc — danh sách sản phẩm trả về mới nhất trước
	if _, err := products.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("product_created_at"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: createdAt desc — danh sách đơn hàng mới nhất trước
	orders := db.Collection(global.MongoDB_ColNames.Orders)
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "createdAt", Value: -1}},
		Options: options.Index().SetName("order_created_at"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// orders: status — lọc đơn theo trạng thái trong back-office
	if _, err := orders.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "status", Value: 1}},
		Options: options.Index().SetName("order_status"),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	// admin_users: email unique — một bản ghi admin theo email
	adminUsers := db.Collection(global.MongoDB_ColNames.AdminUsers)
	if _, err := adminUsers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetName("admin_user_email").SetUnique(true),
	}); err != nil && !isIndexExistsError(err) {
		return err
	}

	return nil
}

func isIndexExistsError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "already exists") || strings.Contains(s, "duplicate")
}
