package models

import "time"

// AdvisoryCategory groups advisory articles.
type AdvisoryCategory struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	Icon        string `gorm:"default:'book'" json:"icon"`

	Articles []AdvisoryArticle `gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" json:"-"`
}

// AdvisoryArticle is a piece of advisory content. IsPublished gates all
// public visibility.
type AdvisoryArticle struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UpdatedAt time.Time `json:"updated_at"`

	CategoryID    uint      `gorm:"index;not null" json:"category_id"`
	Title         string    `gorm:"not null" json:"title"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	Excerpt       string    `gorm:"type:text" json:"excerpt"`
	Author        string    `gorm:"default:'Career Advisor'" json:"author"`
	PublishedDate time.Time `gorm:"index;not null" json:"published_date"`
	IsPublished   bool      `gorm:"not null;default:true" json:"is_published"`
	FeaturedImage string    `json:"featured_image,omitempty"`
}
