package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/service"
)

type ClientHandler struct {
	clientService   service.ClientService
	scheduleService service.ScheduleService
}

func NewClientHandler(clientService service.ClientService, scheduleService service.ScheduleService) *ClientHandler {
	return &ClientHandler{
		clientService:   clientService,
		scheduleService: scheduleService,
	}
}

// --- DTOs ---

type CompleteWorkoutRequest struct {
	// Date the workout was scheduled for, YYYY-MM-DD. Defaults to today.
	Date string `json:"date"`
}

type StartWorkoutLogRequest struct {
	WorkoutID string `json:"workoutId" binding:"required"`
	Date      string `json:"date"`
}

type SaveSetsRequest struct {
	Sets []domain.SetLog `json:"sets" binding:"required"`
}

type UploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type ConfirmPhotoRequest struct {
	ObjectKey   string `json:"objectKey" binding:"required"`
	ContentType string `json:"contentType" binding:"required"`
	TakenOn     string `json:"takenOn"`
	Notes       string `json:"notes"`
}

// === Schedule ===

// GetSchedule godoc
// @Summary The caller's derived training schedule
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ScheduleView
// @Router /client/schedule [get]
func (h *ClientHandler) GetSchedule(c *gin.Context) {
	clientID, ok := callerID(c)
	if !ok {
		return
	}

	view, err := h.scheduleService.GetSchedule(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err, "Failed to build schedule.")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetCalendar godoc
// @Summary The caller's calendar with per-day status
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param month query string false "Whole month (YYYY-MM)"
// @Success 200 {object} service.CalendarView
// @Failure 400 {object} gin.H "Invalid range"
// @Router /client/calendar [get]
func (h *ClientHandler) GetCalendar(c *gin.Context) {
	clientID, ok := callerID(c)
	if !ok {
		return
	}
	from, to, ok := calendarRange(c, func(ctx context.Context) (time.Time, error) {
		return h.scheduleService.Today(ctx, clientID)
	})
	if !ok {
		return
	}

	view, err := h.scheduleService.GetCalendar(c.Request.Context(), clientID, from, to)
	if err != nil {
		respondError(c, err, "Failed to build calendar.")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetStreak godoc
// @Summary The caller's current and longest streak
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {object} schedule.Streak
// @Router /client/streak [get]
func (h *ClientHandler) GetStreak(c *gin.Context) {
	clientID, ok := callerID(c)
	if !ok {
		return
	}

	streak, err := h.scheduleService.GetStreak(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err, "Failed to compute streak.")
		return
	}
	c.JSON(http.StatusOK, streak)
}

// === Completions and workout logs ===

// CompleteWorkout godoc
// @Summary Mark a scheduled workout as done
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Param body body CompleteWorkoutRequest false "Scheduled date"
// @Success 201 {object} domain.WorkoutCompletion
// @Failure 422 {object} gin.H "Workout is not scheduled on that date, or the date is in the future"
// @Router /client/workouts/{workoutId}/complete [post]
func (h *ClientHandler) CompleteWorkout(c *gin.Context) {
	var req CompleteWorkoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
			return
		}
	}
	clientID, ok := callerID(c)
	if !ok {
		return
	}
	workoutID, ok := pathID(c, "workoutId")
	if !ok {
		return
	}
	date, ok := optionalDate(c, "date", req.Date)
	if !ok {
		return
	}

	completion, err := h.clientService.CompleteWorkout(c.Request.Context(), clientID, workoutID, date)
	if err != nil {
		respondError(c, err, "Failed to record completion.")
		return
	}
	c.JSON(http.StatusCreated, completion)
}

// StartWorkoutLog godoc
// @Summary Start logging a scheduled workout
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body StartWorkoutLogRequest true "Workout and date"
// @Success 201 {object} domain.WorkoutLog
// @Router /client/workout-logs [post]
func (h *ClientHandler) StartWorkoutLog(c *gin.Context) {
	var req StartWorkoutLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clientID, ok := callerID(c)
	if !ok {
		return
	}
	workoutID, err := primitive.ObjectIDFromHex(req.WorkoutID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid workoutId format.")
		return
	}
	date, ok := optionalDate(c, "date", req.Date)
	if !ok {
		return
	}

	wl, err := h.clientService.StartWorkoutLog(c.Request.Context(), clientID, workoutID, date)
	if err != nil {
		respondError(c, err, "Failed to start workout log.")
		return
	}
	c.JSON(http.StatusCreated, wl)
}

// SaveDraftSets godoc
// @Summary Auto-save the sets logged so far
// @Description The write is debounced; the latest body wins.
// @Tags Client
// @Accept json
// @Security BearerAuth
// @Param logId path string true "Workout log ID"
// @Param body body SaveSetsRequest true "Sets"
// @Success 202
// @Router /client/workout-logs/{logId}/sets [put]
func (h *ClientHandler) SaveDraftSets(c *gin.Context) {
	var req SaveSetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clientID, ok := callerID(c)
	if !ok {
		return
	}
	logID, ok := pathID(c, "logId")
	if !ok {
		return
	}

	if err := h.clientService.SaveDraftSets(c.Request.Context(), clientID, logID, req.Sets); err != nil {
		respondError(c, err, "Failed to save sets.")
		return
	}
	c.Status(http.StatusAccepted)
}

// FinishWorkoutLog godoc
// @Summary Finish a workout log and record the completion
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Param logId path string true "Workout log ID"
// @Success 200 {object} domain.WorkoutLog
// @Failure 409 {object} gin.H "Already finished"
// @Router /client/workout-logs/{logId}/finish [post]
func (h *ClientHandler) FinishWorkoutLog(c *gin.Context) {
	clientID, ok := callerID(c)
	if !ok {
		return
	}
	logID, ok := pathID(c, "logId")
	if !ok {
		return
	}

	wl, err := h.clientService.FinishWorkoutLog(c.Request.Context(), clientID, logID)
	if err != nil {
		respondError(c, err, "Failed to finish workout log.")
		return
	}
	c.JSON(http.StatusOK, wl)
}

// === Progress photos ===

// RequestPhotoUploadURL godoc
// @Summary Get a presigned URL for uploading a progress photo
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UploadURLRequest true "Content type"
// @Success 200 {object} service.UploadURLResponse
// @Failure 400 {object} gin.H "Unsupported file type"
// @Router /client/progress-photos/upload-url [post]
func (h *ClientHandler) RequestPhotoUploadURL(c *gin.Context) {
	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clientID, ok := callerID(c)
	if !ok {
		return
	}

	resp, err := h.clientService.RequestPhotoUploadURL(c.Request.Context(), clientID, req.ContentType)
	if err != nil {
		respondError(c, err, "Failed to generate upload URL.")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ConfirmPhotoUpload godoc
// @Summary Confirm a finished progress photo upload
// @Tags Client
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ConfirmPhotoRequest true "Uploaded object"
// @Success 201 {object} domain.ProgressPhoto
// @Router /client/progress-photos/confirm [post]
func (h *ClientHandler) ConfirmPhotoUpload(c *gin.Context) {
	var req ConfirmPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	clientID, ok := callerID(c)
	if !ok {
		return
	}
	takenOn, ok := optionalDate(c, "takenOn", req.TakenOn)
	if !ok {
		return
	}

	photo, err := h.clientService.ConfirmPhotoUpload(c.Request.Context(), clientID, service.ConfirmPhotoInput{
		ObjectKey:   req.ObjectKey,
		ContentType: req.ContentType,
		TakenOn:     takenOn,
		Notes:       req.Notes,
	})
	if err != nil {
		respondError(c, err, "Failed to confirm upload.")
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// GetProgressPhotos godoc
// @Summary List the caller's progress photos with download URLs
// @Tags Client
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.ProgressPhoto
// @Router /client/progress-photos [get]
func (h *ClientHandler) GetProgressPhotos(c *gin.Context) {
	clientID, ok := callerID(c)
	if !ok {
		return
	}

	photos, err := h.clientService.GetProgressPhotos(c.Request.Context(), clientID)
	if err != nil {
		respondError(c, err, "Failed to retrieve progress photos.")
		return
	}
	if photos == nil {
		photos = []domain.ProgressPhoto{}
	}
	c.JSON(http.StatusOK, photos)
}
