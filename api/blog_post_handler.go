package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type blogPostStore interface {
	FindAll(ctx context.Context, publishedOnly bool) ([]*models.BlogPost, error)
	FindByKey(ctx context.Context, key uuid.UUID) (*models.BlogPost, error)
	FindBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	Add(ctx context.Context, post *models.BlogPost) error
	Update(ctx context.Context, post *models.BlogPost) error
	Delete(ctx context.Context, key uuid.UUID) (int64, error)
}

type blogPostHandler struct {
	responder Responder
	logger    zerolog.Logger
	posts     blogPostStore
}

func newBlogPostHandler(posts blogPostStore) blogPostHandler {
	logger := log.With().Str("handlerName", "blogPostHandler").Logger()

	return blogPostHandler{
		responder: NewResponder(logger),
		logger:    logger,
		posts:     posts,
	}
}

// listBlogPosts returns all posts, newest first. ?published=true excludes drafts.
func (h blogPostHandler) listBlogPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publishedOnly := r.URL.Query().Get("published") == "true"

		posts, err := h.posts.FindAll(r.Context(), publishedOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog posts", err))
			return
		}

		if posts == nil {
			posts = []*models.BlogPost{}
		}

		h.responder.WriteJSON(w, posts)
	}
}

// getBlogPost resolves {idOrSlug} as a database key first, falling back to a
// slug lookup.
func (h blogPostHandler) getBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idOrSlug := chi.URLParam(r, "idOrSlug")
		if idOrSlug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing blog post identifier"))
			return
		}

		var post *models.BlogPost
		var err error

		if key, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
			post, err = h.posts.FindByKey(r.Context(), key)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
				return
			}
		}

		if post == nil {
			post, err = h.posts.FindBySlug(r.Context(), idOrSlug)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
				return
			}
		}

		if post == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createBlogPost stores a new post, deriving the slug from the title when the
// payload does not carry one.
func (h blogPostHandler) createBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var post models.BlogPost
		if err := json.NewDecoder(r.Body).Decode(&post); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("blog post", err))
			return
		}

		if post.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		if post.Slug == "" {
			post.Slug = models.Slugify(post.Title)
		}

		post.ID = uuid.Nil

		now := time.Now().UTC()
		post.CreatedAt = now
		post.UpdatedAt = now

		if err := h.posts.Add(r.Context(), &post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "blog post", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, post)
	}
}

// updateBlogPost applies a whitelisted partial update keyed by the database id.
func (h blogPostHandler) updateBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := uuid.Parse(chi.URLParam(r, "blogPostID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		existing, err := h.posts.FindByKey(r.Context(), key)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "blog post", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}

		var patch models.BlogPostPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode blog post patch body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("blog post", err))
			return
		}

		patch.Apply(existing)
		existing.UpdatedAt = time.Now().UTC()

		if err := h.posts.Update(r.Context(), existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "blog post", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteBlogPost removes a post by its database key.
func (h blogPostHandler) deleteBlogPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := uuid.Parse(chi.URLParam(r, "blogPostID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid blogPostID"))
			return
		}

		deleted, err := h.posts.Delete(r.Context(), key)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "blog post", err))
			return
		}
		if deleted == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Blog post not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
