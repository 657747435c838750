package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"

	"github.com/Rightupnext/South-mirror-backend/config"
	"github.com/Rightupnext/South-mirror-backend/middleware"
	"github.com/Rightupnext/South-mirror-backend/models"
	"github.com/Rightupnext/South-mirror-backend/utils"
)

const (
	authCookieMaxAge = int(72 * time.Hour / time.Second)
	oauthStateCookie = "oauth_state"
	googleUserInfo   = "https://www.googleapis.com/oauth2/v2/userinfo"
)

type AuthController struct {
	db    *gorm.DB
	rdb   *redis.Client
	cfg   *config.Config
	oauth *oauth2.Config
}

func NewAuthController(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *AuthController {
	var oauthCfg *oauth2.Config
	if cfg.GoogleClientID != "" {
		oauthCfg = &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleSecret,
			RedirectURL:  cfg.GoogleRedirect,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
			},
			Endpoint: google.Endpoint,
		}
	}
	return &AuthController{db: db, rdb: rdb, cfg: cfg, oauth: oauthCfg}
}

func (ac *AuthController) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.AccessTokenCookie, token, authCookieMaxAge, "/", "", true, true)
}

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := ac.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if count > 0 {
		utils.Fail(c, http.StatusBadRequest, "User already registered.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	user := models.User{Name: req.Name, Email: email, Password: string(hash), Role: "user"}
	if err := ac.db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			utils.Fail(c, http.StatusBadRequest, "User already registered.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, "Registration failed.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Registration successful."})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Fail(c, http.StatusBadRequest, "Invalid request payload.")
		return
	}

	var user models.User
	err := ac.db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Fail(c, http.StatusNotFound, "Invalid login credentials.")
			return
		}
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		utils.Fail(c, http.StatusNotFound, "Invalid login credentials.")
		return
	}

	token, err := utils.GenerateJWT(user, ac.cfg.JWTSecret)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ac.setAuthCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful.", "user": user})
}

// GET /api/auth/google
func (ac *AuthController) GoogleLogin(c *gin.Context) {
	if ac.oauth == nil {
		utils.Fail(c, http.StatusInternalServerError, "Google sign-in is not configured.")
		return
	}
	state := uuid.NewString()
	c.SetCookie(oauthStateCookie, state, 600, "/", "", true, true)
	c.Redirect(http.StatusTemporaryRedirect, ac.oauth.AuthCodeURL(state))
}

// GET /api/auth/google/callback
func (ac *AuthController) GoogleCallback(c *gin.Context) {
	if ac.oauth == nil {
		utils.Fail(c, http.StatusInternalServerError, "Google sign-in is not configured.")
		return
	}
	state, err := c.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != c.Query("state") {
		utils.Fail(c, http.StatusForbidden, "Invalid OAuth state.")
		return
	}

	tok, err := ac.oauth.Exchange(c.Request.Context(), c.Query("code"))
	if err != nil {
		utils.Fail(c, http.StatusForbidden, "Code exchange failed.")
		return
	}

	resp, err := ac.oauth.Client(c.Request.Context(), tok).Get(googleUserInfo)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	defer resp.Body.Close()

	var info struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		utils.Fail(c, http.StatusInternalServerError, "Failed to read Google profile.")
		return
	}

	var user models.User
	err = ac.db.Where("email = ?", strings.ToLower(info.Email)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// First sign-in: create the account with an unguessable password.
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
		if hashErr != nil {
			utils.Fail(c, http.StatusInternalServerError, hashErr.Error())
			return
		}
		user = models.User{
			Name:     info.Name,
			Email:    strings.ToLower(info.Email),
			Password: string(hash),
			Avatar:   info.Picture,
			Role:     "user",
		}
		if err := ac.db.Create(&user).Error; err != nil {
			utils.Fail(c, http.StatusInternalServerError, "Registration failed.")
			return
		}
	} else if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}

	token, err := utils.GenerateJWT(user, ac.cfg.JWTSecret)
	if err != nil {
		utils.Fail(c, http.StatusInternalServerError, err.Error())
		return
	}
	ac.setAuthCookie(c, token)

	c.Redirect(http.StatusTemporaryRedirect, ac.cfg.FrontendURL)
}

// GET /api/auth/logout
// Revokes the current token by blacklisting it until its natural expiry.
func (ac *AuthController) Logout(c *gin.Context) {
	token, err := c.Cookie(middleware.AccessTokenCookie)
	if err == nil && token != "" && ac.rdb != nil {
		if claims, parseErr := utils.ParseJWT(token, ac.cfg.JWTSecret); parseErr == nil {
			ttl := time.Until(time.Unix(claims.ExpiresAt, 0))
			if ttl > 0 {
				if err := ac.rdb.Set(c.Request.Context(), "blacklist:"+token, "1", ttl).Err(); err != nil {
					utils.LogError(err, "token blacklist")
				}
			}
		}
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Logout successful."})
}
