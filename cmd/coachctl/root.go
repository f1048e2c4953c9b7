package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"alcyxob/fitness-coach/internal/cache"
	"alcyxob/fitness-coach/internal/config"
	"alcyxob/fitness-coach/internal/logging"
	"alcyxob/fitness-coach/internal/metrics"
	mongorepo "alcyxob/fitness-coach/internal/repository/mongo"
	"alcyxob/fitness-coach/internal/service"
)

var (
	configPath string

	cfg      config.Config
	dbClient *mongo.Client
	appDB    *mongo.Database
)

var rootCmd = &cobra.Command{
	Use:   "coachctl",
	Short: "Operator tools for the fitness coach backend",
	Long: `coachctl talks directly to the fitness coach database.

EXAMPLES:

  coachctl indexes                              # Create or update indexes
  coachctl seed --clients 3 --weeks 4           # Demo trainer, program and clients
  coachctl calendar jo@example.com --month 2024-03

Configuration is read the same way as the server: config.yaml in --config
plus environment variables (DATABASE_URI, SCHEDULE_TIMEZONE, ...).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logging.Setup(logging.SetupParams{Level: cfg.Log.Level, ToStdout: true})

		dbClient, err = mongorepo.ConnectDB(cmd.Context(), cfg.Database.URI)
		if err != nil {
			return fmt.Errorf("connect mongo: %w", err)
		}
		appDB = dbClient.Database(cfg.Database.Name)
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbClient != nil {
			return mongorepo.DisconnectDB(dbClient)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "directory containing config.yaml")
}

// services builds the service layer over appDB the same way the server does.
type services struct {
	auth     service.AuthService
	exercise service.ExerciseService
	trainer  service.TrainerService
	schedule service.ScheduleService
}

func newServices(withAuth bool) (*services, error) {
	location, err := cfg.Schedule.Location()
	if err != nil {
		return nil, err
	}

	userRepo := mongorepo.NewMongoUserRepository(appDB)
	exerciseRepo := mongorepo.NewMongoExerciseRepository(appDB)
	programRepo := mongorepo.NewMongoProgramRepository(appDB)
	workoutRepo := mongorepo.NewMongoProgramWorkoutRepository(appDB)
	clientProgramRepo := mongorepo.NewMongoClientProgramRepository(appDB)
	completionRepo := mongorepo.NewMongoCompletionRepository(appDB)

	metricsManager := metrics.NewManager("fitness_coach", "coachctl", prometheus.NewRegistry())
	clock := service.SystemClock{}

	s := &services{exercise: service.NewExerciseService(exerciseRepo)}
	s.schedule = service.NewScheduleService(
		userRepo, clientProgramRepo, programRepo, workoutRepo, completionRepo,
		cache.NewScheduleCache(1, cfg.Schedule.CacheTTL, metricsManager), clock,
		service.ScheduleOptions{
			CompletionLookbackDays: cfg.Schedule.CompletionLookbackDays,
			CycleWeeks:             cfg.Schedule.CycleWeeks,
			Location:               location,
		},
	)
	s.trainer = service.NewTrainerService(userRepo, exerciseRepo, programRepo, workoutRepo, clientProgramRepo, s.schedule)

	if withAuth {
		s.auth, err = service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration, clock)
		if err != nil {
			return nil, fmt.Errorf("auth service (is jwt.secret set?): %w", err)
		}
	}
	return s, nil
}

// lookupClient accepts a client's email or hex ID.
func lookupClient(ctx context.Context, emailOrID string) (primitive.ObjectID, error) {
	if id, err := primitive.ObjectIDFromHex(emailOrID); err == nil {
		return id, nil
	}
	user, err := mongorepo.NewMongoUserRepository(appDB).GetByEmail(ctx, emailOrID)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("find client %q: %w", emailOrID, err)
	}
	return user.ID, nil
}
