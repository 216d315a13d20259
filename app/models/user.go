// Package models holds the persisted entities. JSON field names follow the
// storefront's existing contract (accType, nameRec, productId and friends),
// so the React client works against this backend unchanged.
package models

import "time"

// AccountType is the user's role. Serialised as a number: the storefront
// renders 0 as Admin and 1 as User.
type AccountType int

const (
	AccountTypeAdmin AccountType = iota
	AccountTypeUser
)

// Role names as they appear in the JWT role claim.
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// String returns the role-claim form of the account type.
func (t AccountType) String() string {
	if t == AccountTypeAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// User is an account. The password hash and the persisted token never leave
// the server; the exported JSON shape doubles as the admin-list DTO.
type User struct {
	ID      uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name    string      `gorm:"size:255;not null" json:"name"`
	Email   string      `gorm:"uniqueIndex;size:255;not null" json:"email"`
	AccType AccountType `gorm:"not null;default:1" json:"accType"`
	Orders  []Order     `gorm:"constraint:OnDelete:CASCADE" json:"orders"`

	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Token        *string    `gorm:"size:512" json:"-"`
	TokenExpire  *time.Time `json:"-"`
}
