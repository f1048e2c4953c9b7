package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"alcyxob/fitness-coach/internal/autosave"
	"alcyxob/fitness-coach/internal/service"
	"alcyxob/fitness-coach/internal/storage"
)

var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrClientNotFound, http.StatusNotFound},
	{service.ErrProgramNotFound, http.StatusNotFound},
	{service.ErrWorkoutNotFound, http.StatusNotFound},
	{service.ErrAssignmentNotFound, http.StatusNotFound},
	{service.ErrExerciseNotFound, http.StatusNotFound},
	{service.ErrWorkoutLogNotFound, http.StatusNotFound},

	{service.ErrClientNotRole, http.StatusForbidden},
	{service.ErrClientNotManaged, http.StatusForbidden},
	{service.ErrNotAClient, http.StatusForbidden},
	{service.ErrProgramAccessDenied, http.StatusForbidden},
	{service.ErrAssignmentAccessDenied, http.StatusForbidden},
	{service.ErrExerciseAccessDenied, http.StatusForbidden},
	{service.ErrWorkoutLogAccessDenied, http.StatusForbidden},

	{service.ErrUserAlreadyExists, http.StatusConflict},
	{service.ErrClientAlreadyAssigned, http.StatusConflict},
	{service.ErrWorkoutLogFinished, http.StatusConflict},

	{service.ErrWorkoutNotScheduled, http.StatusUnprocessableEntity},
	{service.ErrFutureCompletion, http.StatusUnprocessableEntity},

	{service.ErrValidationFailed, http.StatusBadRequest},
	{service.ErrInvalidFinisher, http.StatusBadRequest},
	{service.ErrInvalidDateRange, http.StatusBadRequest},
	{service.ErrInvalidTimeZone, http.StatusBadRequest},
	{service.ErrUploadMetadataMissing, http.StatusBadRequest},
	{service.ErrUploadConfirmationFailed, http.StatusBadRequest},
	{storage.ErrUnsupportedFileType, http.StatusBadRequest},

	{service.ErrAuthenticationFailed, http.StatusUnauthorized},

	{autosave.ErrClosed, http.StatusServiceUnavailable},
}

// respondError maps a service error onto an HTTP status. Unknown errors are
// logged and reported as a generic 500 with fallback as the message.
func respondError(c *gin.Context, err error, fallback string) {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			abortWithError(c, e.status, err.Error())
			return
		}
	}
	log.Errorf("%s %s: %s", c.Request.Method, c.FullPath(), err)
	abortWithError(c, http.StatusInternalServerError, fallback)
}
