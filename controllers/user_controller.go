package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/middleware"
	"github.com/Rightupnext/South-mirror-backend/models"
	"github.com/Rightupnext/South-mirror-backend/services"
	"github.com/Rightupnext/South-mirror-backend/utils"
)

const avatarFolder = "avatars"

type UserController struct {
	db       *gorm.DB
	uploader services.Uploader
}

func NewUserController(db *gorm.DB, uploader services.Uploader) *UserController {
	return &UserController{db: db, uploader: uploader}
}

// GET /api/user/:userid
func (uc *UserController) GetUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid user ID.")
		return
	}

	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "User not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// PUT /api/user/:userid
// Multipart: "data" JSON plus an optional "file" avatar. Users may only
// update themselves; admins may update anyone.
func (uc *UserController) UpdateUser(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		utils.Fail(c, http.StatusForbidden, "Unauthorized")
		return
	}

	id, err := strconv.Atoi(c.Param("userid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid user ID.")
		return
	}
	if claims.Role != "admin" && claims.UserID != uint(id) {
		utils.Fail(c, http.StatusForbidden, "Unauthorized")
		return
	}

	var data struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Bio      string `json:"bio"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal([]byte(c.PostForm("data")), &data); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	var user models.User
	if err := uc.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "User not found.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	user.Name = data.Name
	user.Email = strings.ToLower(strings.TrimSpace(data.Email))
	user.Bio = data.Bio
	if data.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		user.Password = string(hash)
	}

	if fh, err := c.FormFile("file"); err == nil {
		f, err := fh.Open()
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		url, err := uc.uploader.Upload(c.Request.Context(), f, avatarFolder)
		f.Close()
		if err != nil {
			utils.Fail(c, http.StatusInternalServerError, err.Error())
			return
		}
		user.Avatar = url
	}

	if err := uc.db.Save(&user).Error; err != nil {
		if isUniqueViolation(err) {
			utils.Fail(c, http.StatusBadRequest, "Email already in use.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, "Failed to update user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User updated successfully.", "user": user})
}

// GET /api/user
func (uc *UserController) GetAllUsers(c *gin.Context) {
	var users []models.User
	if err := uc.db.Order("created_at desc").Find(&users).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "users": users})
}

// DELETE /api/user/:userid
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userid"))
	if err != nil || id <= 0 {
		utils.Fail(c, http.StatusBadRequest, "Invalid user ID.")
		return
	}

	if err := uc.db.Delete(&models.User{}, id).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Failed to delete user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully."})
}
