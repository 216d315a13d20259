package models

// NewsItem is a storefront announcement.
type NewsItem struct {
	ID          uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string  `gorm:"size:255;not null" json:"title"`
	Description *string `gorm:"type:text" json:"description"`
	Text        *string `gorm:"type:text" json:"text"`
}

// TableName keeps the table name the storefront's data was created with.
func (NewsItem) TableName() string { return "news" }
