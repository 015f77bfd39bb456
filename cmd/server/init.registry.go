package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/syrwx/parfum-djonkoud-sub000/config"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/database"
	"github.com/syrwx/parfum-djonkoud-sub000/internal/global"
)

func InitRegistry() {

	logrus.Info("Initialized registry") // Ghi log thông báo đã khởi tạo registry

	// Khởi tạo registry và đăng ký database + các collections
	err := InitCollections(global.MongoDB_Session, global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize collections: %v", err)
	}
	logrus.Info("Initialized collection registry")

	// Khởi tạo các index cho các collection storefront, đọc database từ registry
	db, exist := global.RegistryDatabase.Get(global.ServerConfig.MongoDB_DBName)
	if !exist {
		logrus.Fatalf("Database %s not found in registry", global.ServerConfig.MongoDB_DBName)
	}
	if err := database.CreateStorefrontIndexes(context.TODO(), db); err != nil {
		logrus.Fatalf("Failed to create indexes: %v", err)
	}
	logrus.Info("Ensured collection indexes")
}

// InitCollections khởi tạo và đăng ký database cùng các collections MongoDB
func InitCollections(client *mongo.Client, cfg *config.Configuration) error {
	db := client.Database(cfg.MongoDB_DBName)

	// Đăng ký database vào registry để các bước sau (tạo index, worker) tra theo tên
	if _, err := global.RegistryDatabase.Register(cfg.MongoDB_DBName, db); err != nil {
		logrus.Errorf("Failed to register database %s: %v", cfg.MongoDB_DBName, err)
		return err
	}
	logrus.Infof("Database %s registered successfully", cfg.MongoDB_DBName)

	colNames := []string{
		global.MongoDB_ColNames.Products,
		global.MongoDB_ColNames.Orders,
		global.MongoDB_ColNames.AdminUsers,
		global.MongoDB_ColNames.Settings,
	}

	for _, name := range colNames {
		registered, err := global.RegistryCollections.Register(name, db.Collection(name))
		if err != nil {
			logrus.Errorf("Failed to register collection %s: %v", name, err)
			return err
		}

		if registered {
			logrus.Infof("Collection %s registered successfully", name)
		} else {
			logrus.Errorf("Collection %s already registered", name)
		}

	}

	return nil
}
