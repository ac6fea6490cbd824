package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"cleaning_coop/internal/domain/entities"
	"cleaning_coop/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errInvalidID      = pkg.NewDomainErrorSimple("INVALID_ID", "Invalid id", http.StatusBadRequest)
)

// mapError turns domain error kinds into HTTP errors.
func mapError(err error) *pkg.AppError {
	var te *entities.TransitionError
	switch {
	case errors.As(err, &te):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status transition not allowed", err, http.StatusConflict).
			WithDetails(map[string]any{"entity": te.Entity, "id": te.ID, "from": te.From, "to": te.To})
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Status transition not allowed", err, http.StatusConflict)
	case errors.Is(err, entities.ErrAlreadyAssigned):
		return pkg.NewDomainError("ALREADY_ASSIGNED", "Request already has an active assignment", err, http.StatusConflict)
	case errors.Is(err, entities.ErrIneligible):
		return pkg.NewDomainError("COMPANY_INELIGIBLE", "Company is not eligible for this request", err, http.StatusUnprocessableEntity)
	case errors.Is(err, entities.ErrInvalidVatConfiguration):
		return pkg.NewDomainError("INVALID_VAT_CONFIGURATION", "VAT rate must be 0 or 0.10", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidInput):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Resource not found", err, http.StatusNotFound)
	case errors.Is(err, entities.ErrDependencyUnavailable):
		return pkg.NewDomainError("DEPENDENCY_UNAVAILABLE", "A backing service is unavailable", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeAppError(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// pathID reads a positive integer path parameter, writing 400 otherwise.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		writeAppError(c, errInvalidID.WithDetails(map[string]any{name: c.Param(name)}))
		return 0, false
	}
	return id, true
}

// bindJSON binds the body into dst, writing 400 on failure.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		writeAppError(c, errInvalidPayload.WithDetails(map[string]any{"reason": err.Error()}))
		return false
	}
	return true
}
