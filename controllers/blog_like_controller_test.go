package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDoLikeToggles(t *testing.T) {
	r, db, _ := newTestServer(t)
	author := createUser(t, db, "Author", "author@example.com", "user")
	category := createCategory(t, db, "Tech", "tech")
	blog := createBlog(t, db, author, category, "Post", "post-1")
	cookie := authCookie(t, author)

	body := map[string]interface{}{"blogid": blog.ID}
	w := doJSON(t, r, "POST", "/api/blog-like", body, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likecount":1`)

	w = doJSON(t, r, "POST", "/api/blog-like", body, cookie)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likecount":0`)
}

func TestLikeCountReportsUserState(t *testing.T) {
	r, db, _ := newTestServer(t)
	author := createUser(t, db, "Author", "author@example.com", "user")
	fan := createUser(t, db, "Fan", "fan@example.com", "user")
	category := createCategory(t, db, "Tech", "tech")
	blog := createBlog(t, db, author, category, "Post", "post-1")

	body := map[string]interface{}{"blogid": blog.ID}
	w := doJSON(t, r, "POST", "/api/blog-like", body, authCookie(t, fan))
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, "GET", "/api/blog-like/"+itoa(blog.ID)+"?userid="+itoa(fan.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"likecount":1`)
	assert.Contains(t, w.Body.String(), `"isUserliked":true`)

	w = doJSON(t, r, "GET", "/api/blog-like/"+itoa(blog.ID)+"?userid="+itoa(author.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"isUserliked":false`)
}
