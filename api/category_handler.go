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

type categoryStore interface {
	FindAll(ctx context.Context) ([]*models.Category, error)
	FindByKey(ctx context.Context, key uuid.UUID) (*models.Category, error)
	FindBySlug(ctx context.Context, slug string) (*models.Category, error)
	Add(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, key uuid.UUID) (int64, error)
}

// projectCounter is the slice of the project store the category handler needs
// to enforce the in-use check on delete.
type projectCounter interface {
	CountByCategory(ctx context.Context, category string) (int64, error)
}

type categoryHandler struct {
	responder  Responder
	logger     zerolog.Logger
	categories categoryStore
	projects   projectCounter
}

func newCategoryHandler(categories categoryStore, projects projectCounter) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		categories: categories,
		projects:   projects,
	}
}

// listCategories returns all categories ordered by name.
func (h categoryHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categories.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}

		if categories == nil {
			categories = []*models.Category{}
		}

		h.responder.WriteJSON(w, categories)
	}
}

// createCategory stores a new category, deriving the slug from the name when
// the payload does not carry one. Duplicate slug or name is rejected; the
// check and the insert share one transaction inside the store.
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var category models.Category
		if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode category request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("category", err))
			return
		}

		if category.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}

		if category.Slug == "" {
			category.Slug = models.Slugify(category.Name)
		}

		category.ID = uuid.Nil

		now := time.Now().UTC()
		category.CreatedAt = now
		category.UpdatedAt = now

		if err := h.categories.Add(r.Context(), &category); err != nil {
			if errs.IsAlreadyExists(err) {
				h.responder.WriteError(w, errs.NewBadRequestError("Category already exists"))
				return
			}
			h.responder.WriteError(w, wrapDatabaseError("create", "category", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, category)
	}
}

// deleteCategory refuses to remove a category while any project still
// references its slug, reporting the blocking project count.
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idOrSlug := chi.URLParam(r, "idOrSlug")
		if idOrSlug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing category identifier"))
			return
		}

		var category *models.Category
		var err error

		if key, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
			category, err = h.categories.FindByKey(r.Context(), key)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "category", err))
				return
			}
		}

		if category == nil {
			category, err = h.categories.FindBySlug(r.Context(), idOrSlug)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "category", err))
				return
			}
		}

		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Category not found"))
			return
		}

		projectCount, err := h.projects.CountByCategory(r.Context(), category.Slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count projects for", "category", err))
			return
		}

		if projectCount > 0 {
			h.responder.WriteJSONStatus(w, http.StatusBadRequest, map[string]any{
				"error":        "Cannot delete category that is in use by projects",
				"projectCount": projectCount,
			})
			return
		}

		if admin, err := ctxGetAdminUser(r.Context()); err == nil {
			h.logger.Info().Str("admin", admin).Str("category", category.Slug).Msg("deleting category")
		}

		deleted, err := h.categories.Delete(r.Context(), category.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "category", err))
			return
		}
		if deleted == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Category not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
