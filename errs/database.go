package errs

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrAlreadyExists = errors.New("already exists")
	ErrDatabaseQuery = errors.New("database query failed")
)

// NewDatabaseError wraps a storage failure. Duplicate-key violations mean a
// uniqueness invariant (project slug, blog slug, category name) was hit at
// the index level and surface as a 400 like every other business-rule
// violation; everything else is a generic query failure. The cause is kept
// for server-side logging only and never reaches the response body.
func NewDatabaseError(operation, entity string, cause error) *ApiErr {
	details := fmt.Sprintf("Failed to %s %s", operation, entity)

	if cause != nil && strings.Contains(cause.Error(), "duplicate key") {
		return &ApiErr{
			StatusCode: http.StatusBadRequest,
			err:        fmt.Errorf("%s %w", entity, ErrAlreadyExists),
			Details:    details,
			Cause:      cause,
		}
	}

	return &ApiErr{
		StatusCode: http.StatusInternalServerError,
		err:        ErrDatabaseQuery,
		Details:    details,
		Cause:      cause,
	}
}
