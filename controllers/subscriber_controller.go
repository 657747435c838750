package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/models"
	"github.com/Rightupnext/South-mirror-backend/utils"
)

type SubscriberController struct {
	db *gorm.DB
}

func NewSubscriberController(db *gorm.DB) *SubscriberController {
	return &SubscriberController{db: db}
}

// POST /api/subscribe
// Registration is idempotent from the client's point of view: a duplicate
// email answers 400, it never creates a second row.
func (sc *SubscriberController) Subscribe(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "A valid email is required.")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := sc.db.Model(&models.Subscriber{}).Where("email = ?", email).Count(&count).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, "Error subscribing.")
		return
	}
	if count > 0 {
		utils.Fail(c, http.StatusBadRequest, "Already subscribed")
		return
	}

	subscriber := models.Subscriber{Email: email}
	if err := sc.db.Create(&subscriber).Error; err != nil {
		if isUniqueViolation(err) {
			utils.Fail(c, http.StatusBadRequest, "Already subscribed")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, "Error subscribing.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "Subscribed successfully"})
}
