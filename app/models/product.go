package models

// Product is a catalogue entry. Price is the live price; orders reference
// products by id and always read the current value.
type Product struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"size:255;not null;index" json:"name"`
	Description *string     `gorm:"type:text" json:"description"`
	Brand       *string     `gorm:"size:255" json:"brand"`
	Price       float64     `gorm:"not null;default:0" json:"price"`
	OrderItems  []OrderItem `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
