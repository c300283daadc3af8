package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpupo63/portfolio-site-backend/models"
)

func newBlogRouter(store *fakeBlogPostStore) *chi.Mux {
	h := newBlogPostHandler(store)
	r := chi.NewRouter()
	r.Get("/blogs", h.listBlogPosts())
	r.Get("/blogs/{idOrSlug}", h.getBlogPost())
	r.Post("/blogs", h.createBlogPost())
	r.Put("/blogs/{blogPostID}", h.updateBlogPost())
	r.Delete("/blogs/{blogPostID}", h.deleteBlogPost())
	return r
}

func TestListBlogsPublishedFilterExcludesDrafts(t *testing.T) {
	store := newFakeBlogPostStore()
	router := newBlogRouter(store)

	require.NoError(t, store.Add(context.Background(), &models.BlogPost{Slug: "live", Title: "Live", Published: true, CreatedAt: time.Now()}))
	require.NoError(t, store.Add(context.Background(), &models.BlogPost{Slug: "draft", Title: "Draft", Published: false, CreatedAt: time.Now()}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs?published=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []models.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.NotEmpty(t, posts)
	for _, post := range posts {
		assert.True(t, post.Published)
	}
}

func TestListBlogsWithoutFilterIncludesDrafts(t *testing.T) {
	store := newFakeBlogPostStore()
	router := newBlogRouter(store)

	require.NoError(t, store.Add(context.Background(), &models.BlogPost{Slug: "live", Title: "Live", Published: true, CreatedAt: time.Now()}))
	require.NoError(t, store.Add(context.Background(), &models.BlogPost{Slug: "draft", Title: "Draft", Published: false, CreatedAt: time.Now()}))

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/blogs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var posts []models.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	assert.Len(t, posts, 2)
}

func TestCreateBlogPostDerivesSlug(t *testing.T) {
	store := newFakeBlogPostStore()
	router := newBlogRouter(store)

	body := `{"title":"  multiple   spaces ","content":"<p>hi</p>","author":"me"}`
	req := httptest.NewRequest(http.MethodPost, "/blogs", bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created models.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "-multiple-spaces-", created.Slug)
}

func TestGetBlogPostBySlugAndByKeyReturnSameDocument(t *testing.T) {
	store := newFakeBlogPostStore()
	router := newBlogRouter(store)

	post := &models.BlogPost{Slug: "first-post", Title: "First Post", Published: true, CreatedAt: time.Now()}
	require.NoError(t, store.Add(context.Background(), post))

	bySlug := httptest.NewRecorder()
	router.ServeHTTP(bySlug, httptest.NewRequest(http.MethodGet, "/blogs/first-post", nil))
	require.Equal(t, http.StatusOK, bySlug.Code)

	byKey := httptest.NewRecorder()
	router.ServeHTTP(byKey, httptest.NewRequest(http.MethodGet, "/blogs/"+post.ID.String(), nil))
	require.Equal(t, http.StatusOK, byKey.Code)

	assert.JSONEq(t, bySlug.Body.String(), byKey.Body.String())
}

func TestUpdateBlogPostPatchIsWhitelisted(t *testing.T) {
	store := newFakeBlogPostStore()
	router := newBlogRouter(store)

	post := &models.BlogPost{Slug: "keep", Title: "Keep", Content: "original", Author: "me", CreatedAt: time.Now()}
	require.NoError(t, store.Add(context.Background(), post))

	// _id in the payload must not move the document to a different key.
	body := `{"content":"updated","_id":"00000000-0000-0000-0000-000000000001"}`
	req := httptest.NewRequest(http.MethodPut, "/blogs/"+post.ID.String(), bytes.NewBufferString(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated models.BlogPost
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, post.ID, updated.ID)
	assert.Equal(t, "updated", updated.Content)
	assert.Equal(t, "Keep", updated.Title)
	assert.Equal(t, "keep", updated.Slug)
}

func TestDeleteBlogPostNotFound(t *testing.T) {
	router := newBlogRouter(newFakeBlogPostStore())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/blogs/00000000-0000-0000-0000-000000000009", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
