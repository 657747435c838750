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

type CommentController struct {
	db *gorm.DB
}

func NewCommentController(db *gorm.DB) *CommentController {
	return &CommentController{db: db}
}

// POST /api/comment
func (cc *CommentController) AddComment(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		utils.Fail(c, http.StatusForbidden, "Unauthorized")
		return
	}

	var req struct {
		BlogID  uint   `json:"blogid" binding:"required"`
		Comment string `json:"comment" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	var blogCount int64
	if err := cc.db.Model(&models.Blog{}).Where("id = ?", req.BlogID).Count(&blogCount).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if blogCount == 0 {
		utils.Fail(c, http.StatusNotFound, "Blog not found.")
		return
	}

	comment := models.Comment{
		UserID:  claims.UserID,
		BlogID:  req.BlogID,
		Comment: req.Comment,
	}
	if err := cc.db.Create(&comment).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to add comment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "comment": comment})
}

// GET /api/comment/:blogid
func (cc *CommentController) GetComments(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("blogid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid blog ID.")
		return
	}

	var comments []models.Comment
	err = cc.db.
		Preload("User", selectAuthorFields).
		Where("blog_id = ?", id).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// GET /api/comment/count/:blogid
func (cc *CommentController) CommentCount(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("blogid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid blog ID.")
		return
	}

	var count int64
	if err := cc.db.Model(&models.Comment{}).Where("blog_id = ?", id).Count(&count).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"commentCount": count})
}

// GET /api/comment
func (cc *CommentController) GetAllComments(c *gin.Context) {
	var comments []models.Comment
	err := cc.db.
		Preload("User", selectAuthorFields).
		Preload("Blog", func(db *gorm.DB) *gorm.DB { return db.Select("id", "title", "slug") }).
		Order("created_at desc").
		Find(&comments).Error
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments})
}

// DELETE /api/comment/:commentid
// Users may delete their own comments; admins may delete any.
func (cc *CommentController) DeleteComment(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		utils.Fail(c, http.StatusForbidden, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(c.Param("commentid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid comment ID.")
		return
	}

	var comment models.Comment
	if err := cc.db.First(&comment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Comment not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	if claims.Role != "admin" && comment.UserID != claims.UserID {
		utils.Fail(c, http.StatusForbidden, "Unauthorized")
		return
	}

	if err := cc.db.Delete(&comment).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to delete comment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Comment deleted successfully."})
}
