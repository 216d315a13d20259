package migrations

import (
	"gorm.io/gorm"

	"eshop-back/app/models"
	"eshop-back/pkg/migration"
)

func init() {
	migration.Register("20260815000000_create_users_table", &CreateUsersTable{})
	migration.Register("20260815000001_create_products_table", &CreateProductsTable{})
	migration.Register("20260815000002_create_news_table", &CreateNewsTable{})
	migration.Register("20260815000003_create_orders_table", &CreateOrdersTable{})
	migration.Register("20260815000004_create_order_items_table", &CreateOrderItemsTable{})
}

type CreateUsersTable struct{}

func (m *CreateUsersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{})
}

func (m *CreateUsersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("users")
}

type CreateProductsTable struct{}

func (m *CreateProductsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Product{})
}

func (m *CreateProductsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("products")
}

type CreateNewsTable struct{}

func (m *CreateNewsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.NewsItem{})
}

func (m *CreateNewsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("news")
}

type CreateOrdersTable struct{}

func (m *CreateOrdersTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.Order{})
}

func (m *CreateOrdersTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("orders")
}

type CreateOrderItemsTable struct{}

func (m *CreateOrderItemsTable) Up(db *gorm.DB) error {
	return db.AutoMigrate(&models.OrderItem{})
}

func (m *CreateOrderItemsTable) Down(db *gorm.DB) error {
	return db.Migrator().DropTable("order_items")
}
