package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/models"
	"github.com/Rightupnext/South-mirror-backend/utils"
)

type categoryPayload struct {
	Name string `json:"name" binding:"required"`
	Slug string `json:"slug" binding:"required"`
}

type CategoryController struct {
	db *gorm.DB
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{db: db}
}

// isUniqueViolation matches the driver-specific unique constraint errors
// (postgres 23505, sqlite "UNIQUE constraint failed").
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "23505") ||
		strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// POST /api/category/add
func (cc *CategoryController) AddCategory(c *gin.Context) {
	var req categoryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	// Pre-check keeps the friendly message; the unique index is the backstop
	// for concurrent creates racing past it.
	var count int64
	if err := cc.db.Model(&models.Category{}).Where("slug = ?", req.Slug).Count(&count).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if count > 0 {
		utils.Fail(c, http.StatusBadRequest, "Slug already exists. Please choose a different one.")
		return
	}

	category := models.Category{Name: req.Name, Slug: req.Slug}
	if err := cc.db.Create(&category).Error; err != nil {
		if isUniqueViolation(err) {
			utils.Fail(c, http.StatusBadRequest, "Slug already exists. Please choose a different one.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, "Failed to create category.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category added successfully."})
}

// GET /api/category/show/:categoryid
func (cc *CategoryController) ShowCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("categoryid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid category ID.")
		return
	}

	var category models.Category
	if err := cc.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Data not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": category})
}

// PUT /api/category/update/:categoryid
func (cc *CategoryController) UpdateCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("categoryid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid category ID.")
		return
	}

	var req categoryPayload
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	var category models.Category
	if err := cc.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Category not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	category.Name = req.Name
	category.Slug = req.Slug
	if err := cc.db.Save(&category).Error; err != nil {
		if isUniqueViolation(err) {
			utils.Fail(c, http.StatusBadRequest, "Slug already exists. Please choose a different one.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, "Failed to update category.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"message":  "Category updated successfully.",
		"category": category,
	})
}

// DELETE /api/category/delete/:categoryid
// Deleting a category leaves posts that reference it untouched.
func (cc *CategoryController) DeleteCategory(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("categoryid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid category ID.")
		return
	}

	res := cc.db.Delete(&models.Category{}, id)
	if res.Error != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to delete category.")
		return
	}
	if res.RowsAffected == 0 {
		utils.Fail(c, http.StatusNotFound, "Category not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Category deleted successfully."})
}

// GET /api/category/all
func (cc *CategoryController) GetAllCategory(c *gin.Context) {
	var categories []models.Category
	if err := cc.db.Order("name asc").Find(&categories).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"category": categories})
}
