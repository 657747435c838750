package models

import "time"

// Blog is a single post. BlogContent is stored already sanitized, see
// utils.SanitizeHTML.
type Blog struct {
	ID            uint      `json:"id" gorm:"primarykey"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
	AuthorID      uint      `json:"authorId" gorm:"index;not null"`
	Author        *User     `json:"author,omitempty" gorm:"foreignKey:AuthorID"`
	CategoryID    uint      `json:"categoryId" gorm:"index;not null"`
	Category      *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Title         string    `json:"title" gorm:"type:varchar(255);not null"`
	Slug          string    `json:"slug" gorm:"type:varchar(255);uniqueIndex;not null"`
	BlogContent   string    `json:"blogContent" gorm:"type:text"`
	FeaturedImage string    `json:"featuredImage" gorm:"type:text"`
	Visibility    bool      `json:"visibility" gorm:"default:true"`
}
