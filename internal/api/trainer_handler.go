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

type TrainerHandler struct {
	trainerService  service.TrainerService
	scheduleService service.ScheduleService
}

func NewTrainerHandler(trainerService service.TrainerService, scheduleService service.ScheduleService) *TrainerHandler {
	return &TrainerHandler{
		trainerService:  trainerService,
		scheduleService: scheduleService,
	}
}

// --- DTOs ---

type AddClientRequest struct {
	ClientEmail string `json:"clientEmail" binding:"required,email"`
}

type ProgramRequest struct {
	Name          string `json:"name" binding:"required"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	DurationWeeks *int   `json:"durationWeeks" binding:"omitempty,min=1"`
}

type WorkoutRequest struct {
	Name            string                   `json:"name" binding:"required"`
	Notes           string                   `json:"notes"`
	DayOfWeek       *int                     `json:"dayOfWeek" binding:"omitempty,min=0,max=6"`
	WeekNumber      *int                     `json:"weekNumber" binding:"omitempty,min=1"`
	ParentWorkoutID string                   `json:"parentWorkoutId"`
	OrderIndex      int                      `json:"orderIndex"`
	Exercises       []domain.WorkoutExercise `json:"exercises"`
}

type AssignProgramRequest struct {
	ProgramID     string `json:"programId" binding:"required"`
	StartDate     string `json:"startDate" binding:"required"` // YYYY-MM-DD
	EndDate       string `json:"endDate"`
	PhaseName     string `json:"phaseName"`
	DurationWeeks *int   `json:"durationWeeks" binding:"omitempty,min=1"`
	ReplaceActive bool   `json:"replaceActive"`
}

func (r WorkoutRequest) input(c *gin.Context) (service.WorkoutInput, bool) {
	in := service.WorkoutInput{
		Name:       r.Name,
		Notes:      r.Notes,
		DayOfWeek:  r.DayOfWeek,
		WeekNumber: r.WeekNumber,
		OrderIndex: r.OrderIndex,
		Exercises:  r.Exercises,
	}
	if r.ParentWorkoutID != "" {
		parentID, err := primitive.ObjectIDFromHex(r.ParentWorkoutID)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid parentWorkoutId format.")
			return in, false
		}
		in.ParentWorkoutID = &parentID
	}
	return in, true
}

// === Clients ===

// AddClientByEmail godoc
// @Summary Add a client to the trainer's roster by email
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientRequest body AddClientRequest true "Client's email"
// @Success 200 {object} UserResponse "Client successfully added/associated"
// @Failure 403 {object} gin.H "User is not a client"
// @Failure 404 {object} gin.H "Client not found"
// @Failure 409 {object} gin.H "Client already has a trainer"
// @Router /trainer/clients [post]
func (h *TrainerHandler) AddClientByEmail(c *gin.Context) {
	var req AddClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := callerID(c)
	if !ok {
		return
	}

	client, err := h.trainerService.AddClientByEmail(c.Request.Context(), trainerID, req.ClientEmail)
	if err != nil {
		respondError(c, err, "Failed to add client.")
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(client))
}

// GetManagedClients godoc
// @Summary Get the trainer's managed clients
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} UserResponse "List of managed clients"
// @Router /trainer/clients [get]
func (h *TrainerHandler) GetManagedClients(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}

	clients, err := h.trainerService.GetManagedClients(c.Request.Context(), trainerID)
	if err != nil {
		respondError(c, err, "Failed to retrieve managed clients.")
		return
	}
	c.JSON(http.StatusOK, MapUsersToResponse(clients))
}

// === Programs ===

// CreateProgram godoc
// @Summary Create a program template
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param program body ProgramRequest true "Program details"
// @Success 201 {object} domain.Program
// @Router /trainer/programs [post]
func (h *TrainerHandler) CreateProgram(c *gin.Context) {
	var req ProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := callerID(c)
	if !ok {
		return
	}

	program, err := h.trainerService.CreateProgram(c.Request.Context(), trainerID, service.ProgramInput{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		DurationWeeks: req.DurationWeeks,
	})
	if err != nil {
		respondError(c, err, "Failed to create program.")
		return
	}
	c.JSON(http.StatusCreated, program)
}

// GetPrograms godoc
// @Summary List the trainer's programs
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Program
// @Router /trainer/programs [get]
func (h *TrainerHandler) GetPrograms(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}

	programs, err := h.trainerService.GetPrograms(c.Request.Context(), trainerID)
	if err != nil {
		respondError(c, err, "Failed to retrieve programs.")
		return
	}
	if programs == nil {
		programs = []domain.Program{}
	}
	c.JSON(http.StatusOK, programs)
}

// GetProgram godoc
// @Summary Get a program with its workouts
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Success 200 {object} domain.ProgramWithWorkouts
// @Failure 404 {object} gin.H "Program not found"
// @Router /trainer/programs/{programId} [get]
func (h *TrainerHandler) GetProgram(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}

	program, err := h.trainerService.GetProgram(c.Request.Context(), trainerID, programID)
	if err != nil {
		respondError(c, err, "Failed to retrieve program.")
		return
	}
	if program.Workouts == nil {
		program.Workouts = []domain.ProgramWorkout{}
	}
	c.JSON(http.StatusOK, program)
}

// GetProgramWorkouts godoc
// @Summary List the workouts of a program
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Success 200 {array} domain.ProgramWorkout
// @Router /trainer/programs/{programId}/workouts [get]
func (h *TrainerHandler) GetProgramWorkouts(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}

	program, err := h.trainerService.GetProgram(c.Request.Context(), trainerID, programID)
	if err != nil {
		respondError(c, err, "Failed to retrieve workouts.")
		return
	}
	workouts := program.Workouts
	if workouts == nil {
		workouts = []domain.ProgramWorkout{}
	}
	c.JSON(http.StatusOK, workouts)
}

// === Workouts ===

// AddWorkout godoc
// @Summary Add a workout (or finisher) to a program
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param programId path string true "Program ID"
// @Param workout body WorkoutRequest true "Workout details"
// @Success 201 {object} domain.ProgramWorkout
// @Failure 400 {object} gin.H "Invalid day, week or finisher parent"
// @Router /trainer/programs/{programId}/workouts [post]
func (h *TrainerHandler) AddWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	programID, ok := pathID(c, "programId")
	if !ok {
		return
	}
	in, ok := req.input(c)
	if !ok {
		return
	}

	workout, err := h.trainerService.AddWorkout(c.Request.Context(), trainerID, programID, in)
	if err != nil {
		respondError(c, err, "Failed to add workout.")
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// UpdateWorkout godoc
// @Summary Replace a program workout
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Param workout body WorkoutRequest true "Workout details"
// @Success 200 {object} domain.ProgramWorkout
// @Router /trainer/workouts/{workoutId} [put]
func (h *TrainerHandler) UpdateWorkout(c *gin.Context) {
	var req WorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	workoutID, ok := pathID(c, "workoutId")
	if !ok {
		return
	}
	in, ok := req.input(c)
	if !ok {
		return
	}

	workout, err := h.trainerService.UpdateWorkout(c.Request.Context(), trainerID, workoutID, in)
	if err != nil {
		respondError(c, err, "Failed to update workout.")
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout godoc
// @Summary Delete a program workout and its finishers
// @Tags Trainer
// @Security BearerAuth
// @Param workoutId path string true "Workout ID"
// @Success 204
// @Router /trainer/workouts/{workoutId} [delete]
func (h *TrainerHandler) DeleteWorkout(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	workoutID, ok := pathID(c, "workoutId")
	if !ok {
		return
	}

	if err := h.trainerService.DeleteWorkout(c.Request.Context(), trainerID, workoutID); err != nil {
		respondError(c, err, "Failed to delete workout.")
		return
	}
	c.Status(http.StatusNoContent)
}

// === Assignments ===

// AssignProgram godoc
// @Summary Assign a program to a managed client
// @Tags Trainer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param assignment body AssignProgramRequest true "Assignment details"
// @Success 201 {object} domain.ClientProgram
// @Failure 403 {object} gin.H "Client not managed by this trainer"
// @Router /trainer/clients/{clientId}/programs [post]
func (h *TrainerHandler) AssignProgram(c *gin.Context) {
	var req AssignProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}
	programID, err := primitive.ObjectIDFromHex(req.ProgramID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid programId format.")
		return
	}
	start, ok := optionalDate(c, "startDate", req.StartDate)
	if !ok {
		return
	}
	end, ok := optionalDate(c, "endDate", req.EndDate)
	if !ok {
		return
	}

	in := service.AssignProgramInput{
		ProgramID:     programID,
		StartDate:     start,
		PhaseName:     req.PhaseName,
		DurationWeeks: req.DurationWeeks,
		ReplaceActive: req.ReplaceActive,
	}
	if !end.IsZero() {
		in.EndDate = &end
	}

	cp, err := h.trainerService.AssignProgram(c.Request.Context(), trainerID, clientID, in)
	if err != nil {
		respondError(c, err, "Failed to assign program.")
		return
	}
	c.JSON(http.StatusCreated, cp)
}

// GetClientPrograms godoc
// @Summary List a managed client's program assignments
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {array} domain.ClientProgram
// @Router /trainer/clients/{clientId}/programs [get]
func (h *TrainerHandler) GetClientPrograms(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}

	cps, err := h.trainerService.GetClientPrograms(c.Request.Context(), trainerID, clientID)
	if err != nil {
		respondError(c, err, "Failed to retrieve client programs.")
		return
	}
	if cps == nil {
		cps = []domain.ClientProgram{}
	}
	c.JSON(http.StatusOK, cps)
}

// DeactivateAssignment godoc
// @Summary Deactivate a client's program assignment
// @Tags Trainer
// @Security BearerAuth
// @Param clientProgramId path string true "Client program ID"
// @Success 204
// @Router /trainer/client-programs/{clientProgramId}/deactivate [post]
func (h *TrainerHandler) DeactivateAssignment(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	cpID, ok := pathID(c, "clientProgramId")
	if !ok {
		return
	}

	if err := h.trainerService.DeactivateAssignment(c.Request.Context(), trainerID, cpID); err != nil {
		respondError(c, err, "Failed to deactivate program.")
		return
	}
	c.Status(http.StatusNoContent)
}

// === Client schedule views ===

// GetClientSchedule godoc
// @Summary A managed client's derived schedule
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Success 200 {object} service.ScheduleView
// @Router /trainer/clients/{clientId}/schedule [get]
func (h *TrainerHandler) GetClientSchedule(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}

	view, err := h.trainerService.GetClientSchedule(c.Request.Context(), trainerID, clientID)
	if err != nil {
		respondError(c, err, "Failed to build schedule.")
		return
	}
	c.JSON(http.StatusOK, view)
}

// GetClientCalendar godoc
// @Summary A managed client's calendar with per-day status
// @Tags Trainer
// @Produce json
// @Security BearerAuth
// @Param clientId path string true "Client ID"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param month query string false "Whole month (YYYY-MM)"
// @Success 200 {object} service.CalendarView
// @Router /trainer/clients/{clientId}/calendar [get]
func (h *TrainerHandler) GetClientCalendar(c *gin.Context) {
	trainerID, ok := callerID(c)
	if !ok {
		return
	}
	clientID, ok := pathID(c, "clientId")
	if !ok {
		return
	}
	from, to, ok := calendarRange(c, func(ctx context.Context) (time.Time, error) {
		return h.scheduleService.Today(ctx, clientID)
	})
	if !ok {
		return
	}

	view, err := h.trainerService.GetClientCalendar(c.Request.Context(), trainerID, clientID, from, to)
	if err != nil {
		respondError(c, err, "Failed to build calendar.")
		return
	}
	c.JSON(http.StatusOK, view)
}
