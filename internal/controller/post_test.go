package controller_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khanhnnhnvn/pythonvietnam/internal/database"
	"github.com/khanhnnhnvn/pythonvietnam/internal/model"
	"github.com/khanhnnhnvn/pythonvietnam/internal/testutil"
)

func validPostPayload() map[string]interface{} {
	return map[string]interface{}{
		"slug":        "a-new-post-about-generics",
		"title":       "A New Post About Generics",
		"author":      "Administrator",
		"category":    "Engineering",
		"description": "Why generics changed how we write container code.",
		"image_url":   "https://picsum.photos/seed/generics/600/400",
		"content":     "Generics landed in Go 1.18 and reshaped a lot of the container and iterator code we maintain day to day.",
	}
}

func TestCreatePost_roundTripBySlug(t *testing.T) {
	env := newTestEnv(t)
	admin := sessionCookie(t, database.AdminUser)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/posts", validPostPayload(), admin)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = testutil.MakeJSONRequest(t, env.router, http.MethodGet, "/api/v1/posts/a-new-post-about-generics", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got model.BlogPost
	testutil.DecodeJSON(t, w, &got)
	assert.Equal(t, "A New Post About Generics", got.Title)
	assert.Equal(t, "a-new-post-about-generics", got.Slug)
}

func TestCreatePost_rejectsNonAdmin(t *testing.T) {
	env := newTestEnv(t)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/posts", validPostPayload())
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/posts", validPostPayload(), sessionCookie(t, database.PlainUser))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/posts", validPostPayload(), sessionCookie(t, database.EmployerUser1))
	assert.Equal(t, http.StatusForbidden, w.Code)

	var count int64
	require.NoError(t, env.db.DB.Model(&model.BlogPost{}).Where("slug = ?", "a-new-post-about-generics").Count(&count).Error)
	assert.Zero(t, count, "rejected requests must not create rows")
}

func TestCreatePost_validation(t *testing.T) {
	env := newTestEnv(t)
	admin := sessionCookie(t, database.AdminUser)

	payload := validPostPayload()
	payload["slug"] = "UPPER-Case-Slug"
	w := testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/posts", payload, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload = validPostPayload()
	payload["content"] = "too short"
	w = testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/posts", payload, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreatePost_duplicateSlugConflicts(t *testing.T) {
	env := newTestEnv(t)
	admin := sessionCookie(t, database.AdminUser)

	payload := validPostPayload()
	payload["slug"] = "welcome-to-python-vietnam" // seeded
	w := testutil.MakeJSONRequest(t, env.router, http.MethodPost, "/api/v1/posts", payload, admin)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUpdatePost(t *testing.T) {
	env := newTestEnv(t)
	admin := sessionCookie(t, database.AdminUser)

	var post model.BlogPost
	require.NoError(t, env.db.DB.First(&post, "slug = ?", "welcome-to-python-vietnam").Error)

	payload := validPostPayload()
	payload["slug"] = "welcome-to-python-vietnam"
	payload["title"] = "Welcome, Updated Edition"
	w := testutil.MakeJSONRequest(t, env.router, http.MethodPut, fmt.Sprintf("/api/v1/posts/%d", post.ID), payload, admin)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got model.BlogPost
	require.NoError(t, env.db.DB.First(&got, post.ID).Error)
	assert.Equal(t, "Welcome, Updated Edition", got.Title)
}

func TestDeletePost(t *testing.T) {
	env := newTestEnv(t)
	admin := sessionCookie(t, database.AdminUser)

	var post model.BlogPost
	require.NoError(t, env.db.DB.First(&post, "slug = ?", "asyncio-in-production").Error)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", post.ID), nil, admin)
	require.Equal(t, http.StatusOK, w.Code)

	w = testutil.MakeJSONRequest(t, env.router, http.MethodGet, "/api/v1/posts/asyncio-in-production", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = testutil.MakeJSONRequest(t, env.router, http.MethodDelete, fmt.Sprintf("/api/v1/posts/%d", post.ID), nil, admin)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPost_unknownSlug(t *testing.T) {
	env := newTestEnv(t)

	w := testutil.MakeJSONRequest(t, env.router, http.MethodGet, "/api/v1/posts/no-such-post", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
