package models

import "time"

type Comment struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uint      `json:"userId" gorm:"index;not null"`
	User      *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BlogID    uint      `json:"blogId" gorm:"index;not null"`
	Blog      *Blog     `json:"blog,omitempty" gorm:"foreignKey:BlogID"`
	Comment   string    `json:"comment" gorm:"type:text;not null"`
}
