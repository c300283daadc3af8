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

type projectStore interface {
	FindAll(ctx context.Context, featuredOnly bool) ([]*models.Project, error)
	FindByKey(ctx context.Context, key uuid.UUID) (*models.Project, error)
	FindBySlug(ctx context.Context, slug string) (*models.Project, error)
	Add(ctx context.Context, project *models.Project) error
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, key uuid.UUID) (int64, error)
}

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  projectStore
}

func newProjectHandler(projects projectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// listProjects returns all projects, newest first. ?featured=true narrows the
// list to featured projects only.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		featuredOnly := r.URL.Query().Get("featured") == "true"

		projects, err := h.projects.FindAll(r.Context(), featuredOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		if projects == nil {
			projects = []*models.Project{}
		}

		h.responder.WriteJSON(w, projects)
	}
}

// getProject resolves {idOrSlug} as a database key first, falling back to a
// slug lookup, so both forms return the same document.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		idOrSlug := chi.URLParam(r, "idOrSlug")
		if idOrSlug == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing project identifier"))
			return
		}

		var project *models.Project
		var err error

		if key, parseErr := uuid.Parse(idOrSlug); parseErr == nil {
			project, err = h.projects.FindByKey(r.Context(), key)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
				return
			}
		}

		if project == nil {
			project, err = h.projects.FindBySlug(r.Context(), idOrSlug)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
				return
			}
		}

		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject stores a new project, deriving the slug from the title when
// the payload does not carry one.
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var project models.Project
		if err := json.NewDecoder(r.Body).Decode(&project); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if project.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		if project.Description == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("description"))
			return
		}

		if project.Slug == "" {
			project.Slug = models.Slugify(project.Title)
		}

		// Key assignment belongs to the store, never the client.
		project.ID = uuid.Nil

		now := time.Now().UTC()
		project.CreatedAt = now
		project.UpdatedAt = now

		if err := h.projects.Add(r.Context(), &project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, project)
	}
}

// updateProject applies a whitelisted partial update keyed by the database id.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projects.FindByKey(r.Context(), key)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if existing == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		var patch models.ProjectPatch
		if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project patch body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		patch.Apply(existing)
		existing.UpdatedAt = time.Now().UTC()

		if err := h.projects.Update(r.Context(), existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, existing)
	}
}

// deleteProject removes a project by its database key.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		deleted, err := h.projects.Delete(r.Context(), key)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}
		if deleted == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("Project not found"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
