package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rightupnext/South-mirror-backend/config"
	"github.com/Rightupnext/South-mirror-backend/database"
	"github.com/Rightupnext/South-mirror-backend/middleware"
	"github.com/Rightupnext/South-mirror-backend/models"
	"github.com/Rightupnext/South-mirror-backend/routes"
	"github.com/Rightupnext/South-mirror-backend/utils"
)

const testSecret = "test-secret"

type stubMailer struct {
	mu   sync.Mutex
	sent [][]string
}

func (m *stubMailer) Send(to []string, subject, htmlBody string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, to)
	return nil
}

func (m *stubMailer) sendCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sent)
}

type stubUploader struct{}

func (stubUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	return "https://media.example.com/" + folder + "/test.jpg", nil
}

// newTestServer wires the full router against a per-test in-memory database.
func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB, *stubMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	assert.NoError(t, err)
	assert.NoError(t, database.Migrate(db))

	cfg := &config.Config{
		JWTSecret:   testSecret,
		FrontendURL: "http://localhost:5173",
	}
	mailer := &stubMailer{}
	r := routes.SetupRouter(cfg, db, nil, mailer, stubUploader{})
	return r, db, mailer
}

func createUser(t *testing.T, db *gorm.DB, name, email, role string) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	assert.NoError(t, err)
	user := models.User{Name: name, Email: email, Password: string(hash), Role: role}
	assert.NoError(t, db.Create(&user).Error)
	return user
}

func authCookie(t *testing.T, user models.User) *http.Cookie {
	t.Helper()
	token, err := utils.GenerateJWT(user, testSecret)
	assert.NoError(t, err)
	return &http.Cookie{Name: middleware.AccessTokenCookie, Value: token}
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req, _ := http.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doMultipart sends the "data" JSON field the blog and user endpoints expect.
func doMultipart(t *testing.T, r *gin.Engine, method, path string, data interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	b, err := json.Marshal(data)
	assert.NoError(t, err)

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	assert.NoError(t, writer.WriteField("data", string(b)))
	assert.NoError(t, writer.Close())

	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func createCategory(t *testing.T, db *gorm.DB, name, slugStr string) models.Category {
	t.Helper()
	category := models.Category{Name: name, Slug: slugStr}
	assert.NoError(t, db.Create(&category).Error)
	return category
}

func createBlog(t *testing.T, db *gorm.DB, author models.User, category models.Category, title, slugStr string) models.Blog {
	t.Helper()
	blog := models.Blog{
		AuthorID:    author.ID,
		CategoryID:  category.ID,
		Title:       title,
		Slug:        slugStr,
		BlogContent: "<p>content</p>",
		Visibility:  true,
	}
	assert.NoError(t, db.Create(&blog).Error)
	return blog
}
