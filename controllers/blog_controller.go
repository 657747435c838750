package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/middleware"
	"github.com/Rightupnext/South-mirror-backend/models"
	"github.com/Rightupnext/South-mirror-backend/services"
	"github.com/Rightupnext/South-mirror-backend/utils"
)

const blogImageFolder = "blog"

// blogPayload is the JSON carried in the "data" field of the multipart body.
type blogPayload struct {
	Author      uint   `json:"author"`
	Category    uint   `json:"category"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	BlogContent string `json:"blogContent"`
}

type BlogController struct {
	db          *gorm.DB
	uploader    services.Uploader
	notifier    *services.Notifier
	frontendURL string
}

func NewBlogController(db *gorm.DB, uploader services.Uploader, notifier *services.Notifier, frontendURL string) *BlogController {
	return &BlogController{db: db, uploader: uploader, notifier: notifier, frontendURL: frontendURL}
}

func selectAuthorFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "avatar", "role")
}

func selectCategoryFields(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "slug")
}

// uniqueBlogSlug keeps the <human-slug>-<random numeric suffix> shape but
// verifies the candidate against existing rows. The unique index on the
// column is the backstop for the remaining race window.
func uniqueBlogSlug(db *gorm.DB, human string, excludeID uint) (string, error) {
	base := slug.Make(human)
	if base == "" {
		base = "post"
	}
	for attempt := 0; attempt < 5; attempt++ {
		candidate := fmt.Sprintf("%s-%d", base, rand.Intn(100000))
		var count int64
		q := db.Model(&models.Blog{}).Where("slug = ?", candidate)
		if excludeID > 0 {
			q = q.Where("id <> ?", excludeID)
		}
		if err := q.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
	return "", errors.New("could not generate a unique slug")
}

// uploadFormFile pushes the named multipart file to media storage. attached
// reports whether a file was present at all.
func (bc *BlogController) uploadFormFile(c *gin.Context, field, folder string) (url string, attached bool, err error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", false, nil
	}
	f, err := fh.Open()
	if err != nil {
		return "", true, err
	}
	defer f.Close()
	url, err = bc.uploader.Upload(c.Request.Context(), f, folder)
	if err != nil {
		return "", true, err
	}
	return url, true, nil
}

// POST /api/blog
func (bc *BlogController) AddBlog(c *gin.Context) {
	var data blogPayload
	if err := json.Unmarshal([]byte(c.PostForm("data")), &data); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	featuredImage := ""
	if url, attached, err := bc.uploadFormFile(c, "file", blogImageFolder); err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	} else if attached {
		featuredImage = url
	}

	var category models.Category
	if err := bc.db.First(&category, data.Category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Category not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	blogSlug, err := uniqueBlogSlug(bc.db, data.Slug, 0)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	blog := models.Blog{
		AuthorID:      data.Author,
		CategoryID:    category.ID,
		Title:         data.Title,
		Slug:          blogSlug,
		FeaturedImage: featuredImage,
		BlogContent:   utils.SanitizeHTML(data.BlogContent),
	}
	if err := bc.db.Create(&blog).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to create blog.")
		return
	}

	liveLink := fmt.Sprintf("%s/blog/%s/%s", bc.frontendURL, category.Slug, blogSlug)

	// The write has committed; a notification failure only hits the log.
	go func(title, link string) {
		if err := bc.notifier.NotifySubscribers(title, link); err != nil {
			utils.LogError(err, "subscriber notification")
		}
	}(blog.Title, liveLink)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Blog added and email sent to subscribers.",
		"blogUrl": liveLink,
	})
}

// GET /api/blog/:slug/edit
// The route shares the :slug position with the public fetch but carries the
// numeric blog id.
func (bc *BlogController) EditBlog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("slug"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid blog ID.")
		return
	}

	var blog models.Blog
	if err := bc.db.Preload("Category", selectCategoryFields).First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Data not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// PUT /api/blog/:blogid
func (bc *BlogController) UpdateBlog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("blogid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid blog ID.")
		return
	}

	var data blogPayload
	if err := json.Unmarshal([]byte(c.PostForm("data")), &data); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	var blog models.Blog
	if err := bc.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Blog not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	blog.CategoryID = data.Category
	blog.Title = data.Title
	blog.Slug = slug.Make(data.Slug)
	blog.BlogContent = utils.SanitizeHTML(data.BlogContent)

	if url, attached, err := bc.uploadFormFile(c, "file", blogImageFolder); err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	} else if attached {
		blog.FeaturedImage = url
	}

	if err := bc.db.Save(&blog).Error; err != nil {
		if isUniqueViolation(err) {
			utils.Fail(c, http.StatusBadRequest, "Slug already exists. Please choose a different one.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, "Failed to update blog.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog updated successfully."})
}

// DELETE /api/blog/:blogid
// Idempotent by design: deleting an id that no longer exists still succeeds.
func (bc *BlogController) DeleteBlog(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("blogid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid blog ID.")
		return
	}

	if err := bc.db.Delete(&models.Blog{}, id).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to delete blog.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Blog Deleted successfully."})
}

// GET /api/blog
// Admins see every post, everyone else only their own.
func (bc *BlogController) ShowAllBlog(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		utils.Fail(c, http.StatusForbidden, "Unauthorized")
		return
	}

	q := bc.db.
		Preload("Author", selectAuthorFields).
		Preload("Category", selectCategoryFields).
		Order("created_at desc")
	if claims.Role != "admin" {
		q = q.Where("author_id = ?", claims.UserID)
	}

	var blogs []models.Blog
	if err := q.Find(&blogs).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blogs})
}

// GET /api/blog/:slug
func (bc *BlogController) GetBlog(c *gin.Context) {
	var blog models.Blog
	err := bc.db.
		Preload("Author", selectAuthorFields).
		Preload("Category", selectCategoryFields).
		Where("slug = ?", c.Param("slug")).
		First(&blog).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Data not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// GET /api/blog/related/:category/:blog
func (bc *BlogController) GetRelatedBlog(c *gin.Context) {
	var category models.Category
	if err := bc.db.Where("slug = ?", c.Param("category")).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Category data not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	var related []models.Blog
	err := bc.db.
		Where("category_id = ? AND slug <> ?", category.ID, c.Param("blog")).
		Order("created_at desc").
		Find(&related).Error
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"relatedBlog": related})
}

// GET /api/blog/category/:category
func (bc *BlogController) GetBlogByCategory(c *gin.Context) {
	var category models.Category
	if err := bc.db.Where("slug = ?", c.Param("category")).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Category data not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	var blogs []models.Blog
	err := bc.db.
		Preload("Author", selectAuthorFields).
		Preload("Category", selectCategoryFields).
		Where("category_id = ?", category.ID).
		Order("created_at desc").
		Find(&blogs).Error
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blogs, "categoryData": category})
}

// GET /api/blog/search?q=
// Case-insensitive substring match on the title only.
func (bc *BlogController) Search(c *gin.Context) {
	pattern := "%" + strings.ToLower(strings.TrimSpace(c.Query("q"))) + "%"

	var blogs []models.Blog
	err := bc.db.
		Preload("Author", selectAuthorFields).
		Preload("Category", selectCategoryFields).
		Where("LOWER(title) LIKE ?", pattern).
		Find(&blogs).Error
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"blog": blogs})
}

// PATCH /api/blog/:blogid/visibility
func (bc *BlogController) ToggleVisibility(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("blogid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid blog ID.")
		return
	}

	var blog models.Blog
	if err := bc.db.First(&blog, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Blog not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	blog.Visibility = !blog.Visibility
	if err := bc.db.Model(&blog).Update("visibility", blog.Visibility).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to update visibility.")
		return
	}

	state := "hidden"
	if blog.Visibility {
		state = "visible"
	}
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"message":    fmt.Sprintf("Blog visibility updated to %s.", state),
		"visibility": blog.Visibility,
	})
}
