package seeders

import (
	"errors"

	"gorm.io/gorm"

	"eshop-back/app/models"
	"eshop-back/config"
	"eshop-back/pkg/auth"
)

func init() {
	Register("admin-user", SeedAdminUser)
}

// SeedAdminUser creates the initial Admin account. Registration always
// yields User-role accounts, so without this seeder there is no way to
// reach the admin surface. Credentials come from ADMIN_EMAIL and
// ADMIN_PASSWORD; the seeder is a no-op when the account already exists.
func SeedAdminUser(db *gorm.DB) error {
	email := config.Get("ADMIN_EMAIL", "admin@eshop.local")
	password := config.Get("ADMIN_PASSWORD", "")
	if password == "" {
		return errors.New("ADMIN_PASSWORD must be set to seed the admin user")
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:         "Administrator",
		Email:        email,
		AccType:      models.AccountTypeAdmin,
		PasswordHash: hash,
	}
	return db.Create(&admin).Error
}
