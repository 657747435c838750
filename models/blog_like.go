package models

import "time"

// BlogLike records one user liking one post; the pair is unique so a like
// can only be toggled, never duplicated.
type BlogLike struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	UserID    uint      `json:"userId" gorm:"uniqueIndex:idx_blog_like_user_blog;not null"`
	BlogID    uint      `json:"blogId" gorm:"uniqueIndex:idx_blog_like_user_blog;not null"`
}
