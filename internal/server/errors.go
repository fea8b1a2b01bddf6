package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/talentdesk/internal/recruitment"
)

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid username or password"
}

// ErrBadRequest indicates a request body or query that could not be read.
type ErrBadRequest struct {
	Message string
}

func (e *ErrBadRequest) Error() string {
	return e.Message
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		validation    *recruitment.ValidationError
		notFound      *recruitment.NotFoundError
		invariant     *recruitment.InvariantError
		badRequest    *ErrBadRequest
		invalidCreds  *ErrInvalidCredentials
		fieldFailures validator.ValidationErrors
	)

	switch {
	case errors.As(err, &validation), errors.As(err, &badRequest), errors.As(err, &fieldFailures):
		return http.StatusBadRequest
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &invariant):
		return http.StatusConflict
	case errors.As(err, &invalidCreds):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// serviceError writes err with its mapped status. Internal errors are logged
// and hidden from the client.
func (s *Server) serviceError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		s.errorResponse(w, status, "internal error")
		return
	}
	s.errorResponse(w, status, errorMessage(err))
}

// errorMessage renders validator failures the way the services do.
func errorMessage(err error) string {
	var fieldFailures validator.ValidationErrors
	if errors.As(err, &fieldFailures) && len(fieldFailures) > 0 {
		fe := fieldFailures[0]
		return fmt.Sprintf("validation error: %s - %s", fe.Field(), fe.Tag())
	}
	return err.Error()
}
