package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/middleware"
	"github.com/Rightupnext/South-mirror-backend/models"
	"github.com/Rightupnext/South-mirror-backend/utils"
)

type BlogLikeController struct {
	db *gorm.DB
}

func NewBlogLikeController(db *gorm.DB) *BlogLikeController {
	return &BlogLikeController{db: db}
}

// POST /api/blog-like
// Toggles the caller's like on a post and returns the new count.
func (lc *BlogLikeController) DoLike(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		utils.Fail(c, http.StatusForbidden, "Unauthorized")
		return
	}

	var req struct {
		BlogID uint `json:"blogid" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	var existing models.BlogLike
	err := lc.db.Where("user_id = ? AND blog_id = ?", claims.UserID, req.BlogID).First(&existing).Error
	switch {
	case err == nil:
		if err := lc.db.Delete(&existing).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Failed to remove like.")
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		like := models.BlogLike{UserID: claims.UserID, BlogID: req.BlogID}
		if err := lc.db.Create(&like).Error; err != nil && !isUniqueViolation(err) {
			utils.Fail(c, http.StatusInternalServerError, "Failed to add like.")
			return
		}
	default:
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	var count int64
	if err := lc.db.Model(&models.BlogLike{}).Where("blog_id = ?", req.BlogID).Count(&count).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"likecount": count})
}

// GET /api/blog-like/:blogid?userid=
func (lc *BlogLikeController) LikeCount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("blogid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid blog ID.")
		return
	}

	var count int64
	if err := lc.db.Model(&models.BlogLike{}).Where("blog_id = ?", id).Count(&count).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	isLiked := false
	if userID, err := strconv.Atoi(c.Query("userid")); err == nil && userID > 0 {
		var userCount int64
		if err := lc.db.Model(&models.BlogLike{}).Where("blog_id = ? AND user_id = ?", id, userID).Count(&userCount).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		isLiked = userCount > 0
	}

	c.JSON(http.StatusOK, gin.H{"likecount": count, "isUserliked": isLiked})
}
