package api

import (
	"errors"
	"net/http"

	"github.com/phrazzld/catalog-api/internal/api/shared"
	"github.com/phrazzld/catalog-api/internal/domain"
	"github.com/phrazzld/catalog-api/internal/service"
)

// MapErrorToStatusCode maps service and domain errors to HTTP status codes.
// Anything it does not recognize is a 500.
func MapErrorToStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Validation errors, including an unknown category on product update
	case errors.Is(err, domain.ErrValidation):
		return http.StatusUnprocessableEntity

	// Conflict errors
	case errors.Is(err, service.ErrCategoryNameTaken),
		errors.Is(err, service.ErrCategoryInUse):
		return http.StatusConflict

	// Not found errors
	case errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrCategoryRefNotFound):
		return http.StatusNotFound

	default:
		return http.StatusInternalServerError
	}
}

// GetErrorMessage returns the client-facing message for err. Unclassified
// errors are reported with their own text.
func GetErrorMessage(err error) string {
	if err == nil {
		return domain.MsgUnexpectedFailure
	}

	var validationErr *domain.ValidationError
	var takenErr *service.CategoryNameTakenError

	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message

	case errors.As(err, &takenErr):
		return takenErr.Error()

	case errors.Is(err, service.ErrCategoryInUse):
		return domain.MsgCategoryStillInUse

	case errors.Is(err, service.ErrCategoryNotFound):
		return domain.MsgCategoryNotFound

	case errors.Is(err, service.ErrProductNotFound):
		return domain.MsgProductNotFound

	case errors.Is(err, service.ErrCategoryRefNotFound):
		return domain.MsgCategoryIDNotFound

	default:
		return err.Error()
	}
}

// HandleAPIError writes the error response for err and logs it.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error) {
	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetErrorMessage(err), err)
}
