package models

import "time"

type Subscriber struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	Email     string    `json:"email" gorm:"type:varchar(255);uniqueIndex;not null"`
}
