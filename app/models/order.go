package models

// Well-known order states. Status is stored as free text, so any other
// string written through the admin surface is kept as-is.
const (
	OrderStatusPending   = "Pending"
	OrderStatusShipped   = "Shipped"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

// Order is a placed order with its line items. The owning user is never
// serialised; the storefront only ever sees orders through their owner or
// an admin.
type Order struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint        `gorm:"not null;index" json:"userId"`
	Destination *string     `gorm:"size:512" json:"destination"`
	Status      *string     `gorm:"size:100" json:"status"`
	NameRec     *string     `gorm:"size:255" json:"nameRec"`
	SurnameRec  *string     `gorm:"size:255" json:"surnameRec"`
	OrderItems  []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"orderItems"`
	User        *User       `json:"-"`
}

// OrderItem is one product line of an order. Product is populated on reads
// that preload it; quantity is taken from the client verbatim.
type OrderItem struct {
	ID        uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   uint     `gorm:"not null;index" json:"orderId"`
	ProductID uint     `gorm:"not null;index" json:"productId"`
	Quantity  int      `gorm:"not null;default:0" json:"quantity"`
	Order     *Order   `json:"-"`
	Product   *Product `json:"product,omitempty"`
}
