package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/portfolio-site-backend/errs"
	"github.com/rpupo63/portfolio-site-backend/models"
)

type resumeStore interface {
	Latest(ctx context.Context) (*models.Resume, error)
	Replace(ctx context.Context, resume *models.Resume) error
	DeleteAll(ctx context.Context) (int64, error)
}

type resumeHandler struct {
	responder Responder
	logger    zerolog.Logger
	resumes   resumeStore
}

func newResumeHandler(resumes resumeStore) resumeHandler {
	logger := log.With().Str("handlerName", "resumeHandler").Logger()

	return resumeHandler{
		responder: NewResponder(logger),
		logger:    logger,
		resumes:   resumes,
	}
}

// download streams the most recently uploaded resume with attachment headers.
func (h resumeHandler) download() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resume, err := h.resumes.Latest(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "resume", err))
			return
		}
		if resume == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("No resume found"))
			return
		}

		w.Header().Set("Content-Type", resume.ContentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resume.Filename))
		w.Header().Set("Content-Length", strconv.Itoa(len(resume.Data)))

		if _, err := w.Write(resume.Data); err != nil {
			h.logger.Error().Err(err).Msg("error streaming resume")
		}
	}
}

// upload validates the multipart file and replaces any prior resume. Nothing
// is written or replaced when validation fails.
func (h resumeHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Headroom over the file limit for multipart framing.
		r.Body = http.MaxBytesReader(w, r.Body, models.MaxResumeSize+1<<20)

		file, header, err := r.FormFile("file")
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.responder.WriteError(w, errs.NewBadRequestError("File size exceeds 5MB limit"))
				return
			}
			h.responder.WriteError(w, errs.NewBadRequestError("No file uploaded"))
			return
		}
		defer file.Close()

		if header.Header.Get("Content-Type") != models.ResumeContentType {
			h.responder.WriteError(w, errs.NewBadRequestError("Only PDF files are allowed"))
			return
		}

		if header.Size > models.MaxResumeSize {
			h.responder.WriteError(w, errs.NewBadRequestError("File size exceeds 5MB limit"))
			return
		}

		data, err := io.ReadAll(file)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("failed to read uploaded file"))
			return
		}

		resume := models.Resume{
			Filename:    header.Filename,
			ContentType: models.ResumeContentType,
			Data:        data,
			UploadedAt:  time.Now().UTC(),
		}

		if err := h.resumes.Replace(r.Context(), &resume); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("replace", "resume", err))
			return
		}

		if admin, err := ctxGetAdminUser(r.Context()); err == nil {
			h.logger.Info().Str("admin", admin).Str("filename", resume.Filename).Msg("resume replaced")
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":  true,
			"filename": resume.Filename,
		})
	}
}

// remove deletes every stored resume record.
func (h resumeHandler) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		deleted, err := h.resumes.DeleteAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "resume", err))
			return
		}
		if deleted == 0 {
			h.responder.WriteError(w, errs.NewNotFoundError("No resume found"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{"success": true})
	}
}
