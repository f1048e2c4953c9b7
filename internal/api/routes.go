package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alcyxob/fitness-coach/internal/domain"
	"alcyxob/fitness-coach/internal/metrics"
	"alcyxob/fitness-coach/internal/service"
)

// RouteOptions carries the optional cross-cutting pieces of the router.
type RouteOptions struct {
	Metrics  *metrics.Manager
	Gatherer prometheus.Gatherer
	// RateLimiter guards the auth endpoints when set.
	RateLimiter   RequestRateLimiter
	AuthPerMinute int
}

func SetupRoutes(
	router *gin.Engine,
	authService service.AuthService,
	trainerService service.TrainerService,
	clientService service.ClientService,
	exerciseService service.ExerciseService,
	scheduleService service.ScheduleService,
	opts RouteOptions,
) {
	authHandler := NewAuthHandler(authService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	trainerHandler := NewTrainerHandler(trainerService, scheduleService)
	clientHandler := NewClientHandler(clientService, scheduleService)

	if opts.Metrics != nil {
		router.Use(RequestMetrics(opts.Metrics))
	}

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	if opts.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{})))
	}

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		if opts.RateLimiter != nil && opts.AuthPerMinute > 0 {
			authGroup.Use(RateLimit(opts.RateLimiter, opts.AuthPerMinute, opts.Metrics))
		}
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(authService))
	{
		protected.GET("/me", authHandler.Me)

		exerciseGroup := protected.Group("/exercises")
		exerciseGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			exerciseGroup.POST("", exerciseHandler.CreateExercise)
			exerciseGroup.GET("", exerciseHandler.GetTrainerExercises)
			exerciseGroup.GET("/:exerciseId", exerciseHandler.GetExercise)
			exerciseGroup.PUT("/:exerciseId", exerciseHandler.UpdateExercise)
			exerciseGroup.DELETE("/:exerciseId", exerciseHandler.DeleteExercise)
		}

		trainerGroup := protected.Group("/trainer")
		trainerGroup.Use(RoleMiddleware(domain.RoleTrainer))
		{
			trainerGroup.POST("/clients", trainerHandler.AddClientByEmail)
			trainerGroup.GET("/clients", trainerHandler.GetManagedClients)

			trainerGroup.POST("/programs", trainerHandler.CreateProgram)
			trainerGroup.GET("/programs", trainerHandler.GetPrograms)
			trainerGroup.GET("/programs/:programId", trainerHandler.GetProgram)
			trainerGroup.POST("/programs/:programId/workouts", trainerHandler.AddWorkout)
			trainerGroup.GET("/programs/:programId/workouts", trainerHandler.GetProgramWorkouts)

			trainerGroup.PUT("/workouts/:workoutId", trainerHandler.UpdateWorkout)
			trainerGroup.DELETE("/workouts/:workoutId", trainerHandler.DeleteWorkout)

			trainerGroup.POST("/clients/:clientId/programs", trainerHandler.AssignProgram)
			trainerGroup.GET("/clients/:clientId/programs", trainerHandler.GetClientPrograms)
			trainerGroup.POST("/client-programs/:clientProgramId/deactivate", trainerHandler.DeactivateAssignment)

			trainerGroup.GET("/clients/:clientId/schedule", trainerHandler.GetClientSchedule)
			trainerGroup.GET("/clients/:clientId/calendar", trainerHandler.GetClientCalendar)
		}

		clientGroup := protected.Group("/client")
		clientGroup.Use(RoleMiddleware(domain.RoleClient))
		{
			clientGroup.GET("/schedule", clientHandler.GetSchedule)
			clientGroup.GET("/calendar", clientHandler.GetCalendar)
			clientGroup.GET("/streak", clientHandler.GetStreak)

			clientGroup.POST("/workouts/:workoutId/complete", clientHandler.CompleteWorkout)

			clientGroup.POST("/workout-logs", clientHandler.StartWorkoutLog)
			clientGroup.PUT("/workout-logs/:logId/sets", clientHandler.SaveDraftSets)
			clientGroup.POST("/workout-logs/:logId/finish", clientHandler.FinishWorkoutLog)

			clientGroup.POST("/progress-photos/upload-url", clientHandler.RequestPhotoUploadURL)
			clientGroup.POST("/progress-photos/confirm", clientHandler.ConfirmPhotoUpload)
			clientGroup.GET("/progress-photos", clientHandler.GetProgressPhotos)
		}
	}
}
